// Package core defines the central Graph and Edge types and provides
// thread-safe primitives for building and querying graphs.
//
// Graphs are generic over their vertex identifier type T, constrained to
// cmp.Ordered: identifiers must be comparable for map keys and totally
// ordered so that every enumeration (Vertices, NeighborIDs, ...) can be
// returned in a deterministic sorted order. No semantic meaning is attached
// to the order itself.
//
// Policies (directed, weighted, multi-edges, loops) are fixed at
// construction time via functional options and immutable afterwards:
//
//	g := core.NewGraph[string](core.WithDirected(true), core.WithWeighted())
//	g.AddEdge("A", "B", 2.5)
//
// Weights are float64. In a weighted graph an edge may be added with
// core.NoWeight to record the connection without an explicit weight;
// AllEdgesWeighted reports whether every stored edge carries one. Algorithms
// that require fully-specified weights gate on that query.
//
// All core APIs use two sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so concurrent readers never contend
// with each other and the graph can safely back parallel read-only
// computations.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
