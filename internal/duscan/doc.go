// Package duscan computes aggregate disk usage for filesystem entry points.
//
// A scan traverses every root in parallel over a bounded worker pool, emits
// one message per visited entry onto an unbounded stream, and aggregates the
// stream on a single goroutine. Hard-linked data is counted once per scan via
// a (device, inode) seen-set. Per-entry failures are collected as values and
// never abort a scan.
package duscan
