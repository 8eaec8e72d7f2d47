// The priority fringe: a min-heap of (vertex, tentative distance) entries
// with a deterministic tie order.
//
// Entries are ordered by distance, then by insertion sequence, then by
// vertex ID. The sequence number guarantees FIFO-ish stability among
// equal-distance entries: container/heap gives no ordering promises for
// equal elements, and here a distance tie is exactly the "is this an
// equal-length alternative path" decision, so it must not depend on heap
// internals. (A max-heap over negated distances would work equally well;
// container/heap is comparator-driven, so real distances with a min-order
// Less are the less error-prone encoding.)
//
// Duplicate entries for one vertex are expected: every equal-distance merge
// pushes again. The search tolerates them by skipping entries whose vertex
// is already finalized; the fringe itself never deduplicates.

package dijkstra

import "cmp"

// fringeItem holds one fringe entry. seq is assigned at push time and is
// monotonically increasing within a single search.
type fringeItem[T cmp.Ordered] struct {
	node T
	seq  int
	dist float64
}

// fringe is a min-heap of fringeItem implementing heap.Interface.
type fringe[T cmp.Ordered] []fringeItem[T]

// Len returns the number of entries in the fringe.
func (f fringe[T]) Len() int { return len(f) }

// Less orders by distance asc, then insertion sequence asc, then vertex ID asc.
func (f fringe[T]) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	if f[i].seq != f[j].seq {
		return f[i].seq < f[j].seq
	}

	return f[i].node < f[j].node
}

// Swap swaps two entries.
func (f fringe[T]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push.
func (f *fringe[T]) Push(x any) { *f = append(*f, x.(fringeItem[T])) }

// Pop removes and returns the last entry; called by heap.Pop.
func (f *fringe[T]) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
