// The path accumulator: per-vertex sets of every currently-known
// minimal-length path, grown by extend (strict improvement) and merge
// (equal-distance alternative).
//
// Invariant: once a vertex is finalized, every path stored for it has total
// weight equal to its finalized distance; paths are never partial.

package dijkstra

import "cmp"

// pathTable maps a vertex to all currently-known minimal paths reaching it.
type pathTable[T cmp.Ordered] map[T][][]T

// seed installs the one-element path set for a source vertex.
func (p pathTable[T]) seed(source T) {
	p[source] = [][]T{{source}}
}

// extend is called when u is discovered for the first time, or re-discovered
// at a strictly better tentative distance. It clones every path stored for
// via, appends u to each, and installs that set as u's path set, replacing
// any prior set. Replacement only ever happens before u is finalized.
func (p pathTable[T]) extend(u, via T) {
	p[u] = p.appended(u, via)
}

// merge is called when u is re-reached at a distance exactly equal to its
// best tentative distance: an alternative optimal path. The extended via
// paths are appended to u's existing set rather than replacing it; this is
// how multiple tied shortest paths accumulate.
func (p pathTable[T]) merge(u, via T) {
	p[u] = append(p[u], p.appended(u, via)...)
}

// appended returns fresh copies of via's paths, each with u appended.
// Copies are required: stored paths must never share backing arrays, or a
// later append through one alias would corrupt another.
func (p pathTable[T]) appended(u, via T) [][]T {
	viaPaths := p[via]
	out := make([][]T, 0, len(viaPaths))
	for _, path := range viaPaths {
		next := make([]T, 0, len(path)+1)
		next = append(next, path...)
		next = append(next, u)
		out = append(out, next)
	}

	return out
}
