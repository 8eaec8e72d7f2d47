// Neighborhood APIs: NeighborIDs and SuccessorIDs.
//
// Adjacency policy:
//   - Directed edges are stored only under their From endpoint, so the
//     adjacency map already encodes "outgoing".
//   - Undirected edges are mirrored under both endpoints at insertion time.
//
// Determinism:
//   - Both queries return unique IDs sorted ascending by T's total order.

package core

import "slices"

// NeighborIDs returns the unique set of vertex IDs adjacent to id,
// sorted ascending. For an undirected graph these are the neighbors of id;
// for a directed graph only targets of outgoing edges are adjacent,
// which makes NeighborIDs and SuccessorIDs coincide.
//
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(d log d) for d adjacent vertices.
func (g *Graph[T]) NeighborIDs(id T) ([]T, error) {
	return g.adjacentIDs(id)
}

// SuccessorIDs returns the unique set of vertex IDs reachable from id by a
// single outgoing edge, sorted ascending. Intended for directed graphs;
// on an undirected graph it degrades to NeighborIDs because every incident
// edge is traversable in both directions.
//
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(d log d) for d adjacent vertices.
func (g *Graph[T]) SuccessorIDs(id T) ([]T, error) {
	return g.adjacentIDs(id)
}

// adjacentIDs collects the sorted keys of id's adjacency buckets.
// Lock order matches mutators (muVert, then muEdgeAdj) so a vertex cannot
// disappear between validation and the adjacency snapshot.
func (g *Graph[T]) adjacentIDs(id T) ([]T, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	out := make([]T, 0, len(g.adjacency[id]))
	for to, bucket := range g.adjacency[id] {
		if len(bucket) > 0 {
			out = append(out, to)
		}
	}
	g.muEdgeAdj.RUnlock()

	slices.Sort(out)

	return out, nil
}
