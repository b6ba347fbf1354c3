//go:build windows

package duscan

import "io/fs"

// Windows metadata exposes no block counts, so disk usage degrades to the
// apparent size.
func allocatedSize(info fs.FileInfo) uint64 {
	return apparentSize(info)
}

// uniqueID always reports absent here: without a stable (device, inode) pair
// every entry is counted.
func uniqueID(_ fs.FileInfo) (UniqueID, bool) {
	return UniqueID{}, false
}
