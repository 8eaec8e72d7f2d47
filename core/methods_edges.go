// Edge lifecycle and queries: AddEdge, RemoveEdge, HasEdge, Edges, EdgeCount,
// EdgeWeight, EdgeWeights, AllEdgesWeighted. Also: nextID().
//
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - EdgeWeights() returns weights sorted ascending.
//   - nextID() is monotonic and stable ("e" + decimal).

package core

import (
	"cmp"
	"slices"
	"strconv"
)

// nextID generates the next unique textual edge ID.
// Caller must hold muEdgeAdj.
func (g *Graph[T]) nextID() string {
	g.nextEdgeID++

	return "e" + strconv.FormatUint(g.nextEdgeID, 10)
}

// AddEdge creates a new edge from → to with the given weight and returns
// its generated ID. Both endpoints are created if missing.
//
// Constraints:
//   - If Weighted()==false and weight != 0, returns ErrBadWeight.
//   - If Looped()==false and from == to, returns ErrLoopNotAllowed.
//   - If Multigraph()==false and (from, to) already has an edge,
//     returns ErrMultiEdgeNotAllowed.
//
// In a weighted graph, pass NoWeight to record an edge without an explicit
// weight (such a graph fails AllEdgesWeighted until the weight is supplied).
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddEdge(from, to T, weight float64) (string, error) {
	// Policy validation before any mutation.
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// Ensure endpoints exist.
	g.AddVertex(from)
	g.AddVertex(to)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// Multi-edge existence check. Mirrored adjacency makes this catch the
	// reverse orientation of an undirected edge as well.
	if !g.allowMulti {
		if bucket := g.adjacency[from][to]; len(bucket) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	eid := g.nextID()
	e := &Edge[T]{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}

	g.edges[eid] = e
	g.ensureAdjacency(from, to)
	g.adjacency[from][to][eid] = struct{}{}

	// Mirror undirected edges so both endpoints see the adjacency.
	if !e.Directed && from != to {
		g.ensureAdjacency(to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID and its adjacency entries
// (including the mirror of an undirected edge).
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1)
func (g *Graph[T]) RemoveEdge(id string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}

	delete(g.edges, id)
	g.dropAdjacency(e.From, e.To, id)
	if !e.Directed && e.From != e.To {
		g.dropAdjacency(e.To, e.From, id)
	}

	return nil
}

// HasEdge reports whether at least one edge exists from u to v
// (or incident to both, for undirected edges).
// Complexity: O(1)
func (g *Graph[T]) HasEdge(u, v T) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[u][v]) > 0
}

// Edges returns all edges sorted by Edge.ID ascending.
// Returned pointers reference live catalog edges; treat them as read-only.
// Complexity: O(E log E)
func (g *Graph[T]) Edges() []*Edge[T] {
	g.muEdgeAdj.RLock()
	out := make([]*Edge[T], 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()

	slices.SortFunc(out, func(a, b *Edge[T]) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return out
}

// EdgeCount returns the number of edges in the graph.
// Complexity: O(1)
func (g *Graph[T]) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// EdgeWeight returns the weight of the single u → v edge.
// Intended for non-multigraphs; in a multigraph use EdgeWeights.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1)
func (g *Graph[T]) EdgeWeight(u, v T) (float64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid := range g.adjacency[u][v] {
		return g.edges[eid].Weight, nil
	}

	return 0, ErrEdgeNotFound
}

// EdgeWeights returns the weights of all parallel u → v edges,
// sorted ascending. Returns ErrEdgeNotFound if no edge exists.
// Complexity: O(k log k) for k parallel edges.
func (g *Graph[T]) EdgeWeights(u, v T) ([]float64, error) {
	g.muEdgeAdj.RLock()
	bucket := g.adjacency[u][v]
	out := make([]float64, 0, len(bucket))
	for eid := range bucket {
		out = append(out, g.edges[eid].Weight)
	}
	g.muEdgeAdj.RUnlock()

	if len(out) == 0 {
		return nil, ErrEdgeNotFound
	}
	slices.Sort(out)

	return out, nil
}

// AllEdgesWeighted reports whether the graph is weighted and every stored
// edge carries an explicit weight (none was added with NoWeight).
// Complexity: O(E)
func (g *Graph[T]) AllEdgesWeighted() bool {
	if !g.weighted {
		return false
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for _, e := range g.edges {
		if !e.HasWeight() {
			return false
		}
	}

	return true
}

// ensureAdjacency creates the nested adjacency buckets for (from, to).
// Caller must hold muEdgeAdj.
func (g *Graph[T]) ensureAdjacency(from, to T) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[T]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// dropAdjacency removes an edge ID from the (from, to) bucket and prunes
// empty buckets. Caller must hold muEdgeAdj.
func (g *Graph[T]) dropAdjacency(from, to T, eid string) {
	bucket := g.adjacency[from][to]
	delete(bucket, eid)
	if len(bucket) == 0 {
		delete(g.adjacency[from], to)
		if len(g.adjacency[from]) == 0 {
			delete(g.adjacency, from)
		}
	}
}
