package duscan

import "fmt"

// ErrorKind classifies the non-fatal per-entry failures a scan can encounter.
type ErrorKind int

const (
	// ErrNoMetadata means a path could not be stat'ed (permission denied,
	// vanished between listing and stat, dangling reference). The entry's
	// size is not counted and it is not recursed into.
	ErrNoMetadata ErrorKind = iota
	// ErrReadDir means a directory's children could not be listed. The
	// directory entry itself is still counted; its subtree is not explored,
	// so the reported total understates the true size.
	ErrReadDir
)

// Error describes one failed entry. Errors never abort a scan; they are
// collected and reported alongside the totals.
type Error struct {
	Kind ErrorKind
	Path string
}

func (e Error) Error() string {
	switch e.Kind {
	case ErrReadDir:
		return fmt.Sprintf("could not read contents of directory '%s'", e.Path)
	default:
		return fmt.Sprintf("could not retrieve metadata for path '%s'", e.Path)
	}
}

// msgKind tags the variants of the producer-to-aggregator stream.
type msgKind uint8

const (
	msgSizeEntry msgKind = iota
	msgError
	msgFinishedRoot
)

// message is one element of the stream feeding the aggregator. A flat struct
// with a kind tag keeps the hot path free of interface allocations.
type message struct {
	kind  msgKind
	id    UniqueID
	hasID bool
	root  string
	size  uint64
	err   Error
}
