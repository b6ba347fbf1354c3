package duscan

// UniqueID identifies the underlying storage object a directory entry points
// to. Two entries sharing a UniqueID are hard links to the same on-disk data
// and must be counted only once per scan.
//
// Extraction is platform-dependent; uniqueID reports false where the metadata
// source has no stable (device, inode) concept, in which case the entry is
// always counted.
type UniqueID struct {
	// Device is the ID of the device containing the entry.
	Device uint64
	// Inode is the entry's inode number on that device.
	Inode uint64
}
