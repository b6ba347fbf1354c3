package duscan

import "sort"

// RootSize is the final total for one requested root path.
type RootSize struct {
	Path string
	Size uint64
}

// Result is the outcome of one scan: per-root totals in finish order and
// every per-entry error encountered, in arrival order.
type Result struct {
	Sizes  []RootSize
	Errors []Error
}

// Total returns the sum of all per-root totals.
func (r Result) Total() uint64 {
	var total uint64
	for _, s := range r.Sizes {
		total += s.Size
	}

	return total
}

// SortBySize orders the per-root totals ascending by size.
func (r Result) SortBySize() {
	sort.Slice(r.Sizes, func(i, j int) bool {
		return r.Sizes[i].Size < r.Sizes[j].Size
	})
}

// Callbacks streams scan events to a presentation layer as the aggregator
// processes them.
type Callbacks struct {
	// OnRoot fires exactly once per root, when its subtree has been fully
	// traversed and its total is final. Roots finish in any order.
	OnRoot func(root string, size uint64)
	// OnError fires for every per-entry error as it arrives.
	OnError func(err Error)
}

// collect is the single consumer of the message stream. It owns the seen-ID
// set and the running totals, so aggregation needs no locking at all.
func (w *Walk) collect(q *queue, cb Callbacks) Result {
	seen := make(map[UniqueID]struct{})
	totals := make(map[string]uint64)

	var (
		finished []string
		errs     []Error
	)

	for msg := range q.out {
		switch msg.kind {
		case msgSizeEntry:
			if msg.hasID {
				if _, dup := seen[msg.id]; dup {
					// Hard link to data already counted, possibly under
					// another root. First occurrence wins.
					continue
				}
				seen[msg.id] = struct{}{}
			}
			totals[msg.root] += msg.size
		case msgError:
			errs = append(errs, msg.err)
			if cb.OnError != nil {
				cb.OnError(msg.err)
			}
		case msgFinishedRoot:
			// No further size entries for this root can arrive: its finished
			// message is sent only after the subtree join returned.
			finished = append(finished, msg.root)
			if cb.OnRoot != nil {
				cb.OnRoot(msg.root, totals[msg.root])
			}
		}
	}

	sizes := make([]RootSize, 0, len(finished))
	for _, root := range finished {
		sizes = append(sizes, RootSize{Path: root, Size: totals[root]})
	}

	return Result{Sizes: sizes, Errors: errs}
}
