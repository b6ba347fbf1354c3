package duscan

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// DefaultNumThreads is the worker count used when the caller does not
// override it. Three workers per core keeps the I/O scheduler saturated on
// cold-cache scans while the synchronization overhead stays acceptable on
// warm ones.
func DefaultNumThreads() int {
	return 3 * runtime.NumCPU()
}

// Walk scans a set of root paths in parallel and aggregates their sizes.
type Walk struct {
	roots        []string
	numThreads   int
	filesizeType FilesizeType
}

// New creates a scan over the given roots. numThreads <= 0 selects
// DefaultNumThreads().
func New(roots []string, numThreads int, filesizeType FilesizeType) *Walk {
	if numThreads <= 0 {
		numThreads = DefaultNumThreads()
	}

	return &Walk{
		roots:        roots,
		numThreads:   numThreads,
		filesizeType: filesizeType,
	}
}

// Run scans to completion and returns the batch result. The only error it can
// return is a failure to start the worker pool; per-entry failures end up in
// Result.Errors.
func (w *Walk) Run() (Result, error) {
	return w.RunWithCallbacks(Callbacks{})
}

// RunWithCallbacks scans to completion, streaming events through cb along the
// way, and returns the same result Run would. Callbacks fire on the calling
// goroutine, never concurrently.
func (w *Walk) RunWithCallbacks(cb Callbacks) (Result, error) {
	pool, err := ants.NewPool(w.numThreads, ants.WithNonblocking(true))
	if err != nil {
		return Result{}, fmt.Errorf("starting worker pool: %w", err)
	}
	defer pool.Release()

	q := newQueue()
	go w.traverse(pool, q)

	return w.collect(q, cb), nil
}

// traverse walks every root concurrently and closes the stream once the last
// root has finished.
func (w *Walk) traverse(pool *ants.Pool, q *queue) {
	var roots sync.WaitGroup

	for _, root := range w.roots {
		roots.Add(1)

		go func(root string) {
			defer roots.Done()

			// Per-root join tree: every dispatched entry, however deep,
			// registers here before it can run. Wait returns only after the
			// whole subtree has been visited, which is what makes the
			// finished-root message final.
			var subtree sync.WaitGroup

			subtree.Add(1)
			w.dispatch(pool, &subtree, q, root, root)
			subtree.Wait()

			q.in <- message{kind: msgFinishedRoot, root: root}
		}(root)
	}

	roots.Wait()
	close(q.in)
}

// dispatch hands one entry to the pool, falling back to running it on the
// calling goroutine when no worker is idle. The fallback keeps recursion from
// deadlocking: a parent waiting out a full pool would otherwise hold the very
// worker its children need.
func (w *Walk) dispatch(pool *ants.Pool, subtree *sync.WaitGroup, q *queue, path, root string) {
	visit := func() { w.visit(pool, subtree, q, path, root) }

	if err := pool.Submit(visit); err != nil {
		visit()
	}
}

// visit processes a single entry: emit its size contribution, then recurse
// into children. Metadata is read exactly once, via lstat, so symlinks
// contribute their own size and are never followed.
func (w *Walk) visit(pool *ants.Pool, subtree *sync.WaitGroup, q *queue, path, root string) {
	defer subtree.Done()

	info, err := os.Lstat(path)
	if err != nil {
		q.in <- message{kind: msgError, err: Error{Kind: ErrNoMetadata, Path: path}}

		return
	}

	id, hasID := uniqueID(info)
	q.in <- message{
		kind:  msgSizeEntry,
		id:    id,
		hasID: hasID,
		root:  root,
		size:  w.filesizeType.Size(info),
	}

	if !info.IsDir() {
		return
	}

	children, err := os.ReadDir(path)
	if err != nil {
		// The directory entry itself was already counted; its subtree is
		// simply not explored.
		q.in <- message{kind: msgError, err: Error{Kind: ErrReadDir, Path: path}}

		return
	}

	for _, child := range children {
		subtree.Add(1)
		w.dispatch(pool, subtree, q, filepath.Join(path, child.Name()), root)
	}
}
