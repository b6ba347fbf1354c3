package duscan

import "io/fs"

// FilesizeType selects how a single entry contributes to a scan total.
type FilesizeType int

const (
	// DiskUsage counts the storage actually allocated on the device.
	DiskUsage FilesizeType = iota
	// ApparentSize counts the logical byte length reported by metadata.
	ApparentSize
)

// Size returns the entry's contribution in bytes. It is a pure function of
// already-retrieved metadata and performs no additional I/O.
func (t FilesizeType) Size(info fs.FileInfo) uint64 {
	if t == DiskUsage {
		return allocatedSize(info)
	}

	return apparentSize(info)
}

func apparentSize(info fs.FileInfo) uint64 {
	size := info.Size()
	if size < 0 {
		return 0
	}

	return uint64(size)
}
