//go:build !windows

package duscan

import (
	"io/fs"
	"syscall"
)

// allocatedSize returns the storage allocated for the entry. st_blocks is in
// 512-byte units regardless of the filesystem block size.
func allocatedSize(info fs.FileInfo) uint64 {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return apparentSize(info)
	}

	if st.Blocks < 0 {
		return 0
	}

	return uint64(st.Blocks) * 512
}

// uniqueID extracts the (device, inode) pair used for hard-link deduplication.
// The second return is false when the metadata source does not expose one.
func uniqueID(info fs.FileInfo) (UniqueID, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return UniqueID{}, false
	}

	return UniqueID{Device: uint64(st.Dev), Inode: uint64(st.Ino)}, true
}
