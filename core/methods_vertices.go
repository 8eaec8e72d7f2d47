// Vertex lifecycle and queries: AddVertex, HasVertex, Vertices, VertexCount.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending by T's total order.

package core

import "slices"

// AddVertex ensures the vertex id exists in the graph.
// Adding an existing vertex is a no-op.
// Complexity: O(1)
func (g *Graph[T]) AddVertex(id T) {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.vertices[id] = struct{}{}
}

// HasVertex reports whether the vertex id exists in the graph.
// Complexity: O(1)
func (g *Graph[T]) HasVertex(id T) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// The returned slice is owned by the caller.
// Complexity: O(V log V)
func (g *Graph[T]) Vertices() []T {
	g.muVert.RLock()
	out := make([]T, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	g.muVert.RUnlock()

	slices.Sort(out)

	return out
}

// VertexCount returns the number of vertices in the graph.
// Complexity: O(1)
func (g *Graph[T]) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
