// This file declares Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.

package core

import (
	"cmp"
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// NoWeight is the weight of an edge that carries no explicit weight.
// It is only meaningful in weighted graphs; unweighted graphs store all
// edges at weight 0. Use Edge.HasWeight (or Graph.AllEdgesWeighted) to
// test for it; NoWeight is NaN and never compares equal to itself.
var NoWeight = math.NaN()

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, a float64 Weight, and a
// Directed flag mirroring the graph-wide policy it was created under.
type Edge[T cmp.Ordered] struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From T

	// To is the destination vertex ID.
	To T

	// Weight is the cost of the edge, or NoWeight if none was specified.
	Weight float64

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool
}

// HasWeight reports whether the edge carries an explicit weight.
func (e *Edge[T]) HasWeight() bool { return !math.IsNaN(e.Weight) }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*graphConfig)

// graphConfig collects the policy flags applied by GraphOptions.
type graphConfig struct {
	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool
}

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(c *graphConfig) { c.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(c *graphConfig) { c.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// Graph is the core in-memory graph data structure, generic over the
// vertex identifier type T.
//
// It supports: directed vs. undirected, weighted vs. unweighted,
// parallel edges (multi-edges) and self-loops.
// muVert protects the vertex set; muEdgeAdj protects edges and adjacency.
// nextEdgeID is a counter for unique Edge.ID generation.
type Graph[T cmp.Ordered] struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags, immutable after NewGraph.
	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool

	// Storage
	nextEdgeID uint64              // edge ID generator, guarded by muEdgeAdj
	vertices   map[T]struct{}      // vertex set
	edges      map[string]*Edge[T] // edge ID → Edge

	// adjacency[from][to][edgeID] = struct{}{}
	// Undirected edges are mirrored under both endpoints.
	adjacency map[T]map[T]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, a Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph[T cmp.Ordered](opts ...GraphOption) *Graph[T] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T]{
		directed:   cfg.directed,
		weighted:   cfg.weighted,
		allowMulti: cfg.allowMulti,
		allowLoops: cfg.allowLoops,
		vertices:   make(map[T]struct{}),
		edges:      make(map[string]*Edge[T]),
		adjacency:  make(map[T]map[T]map[string]struct{}),
	}
}

// Directed reports whether edges of this graph are directed.
func (g *Graph[T]) Directed() bool { return g.directed }

// Weighted reports whether the graph permits non-zero edge weights.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
func (g *Graph[T]) Weighted() bool { return g.weighted }

// Multigraph reports whether parallel edges between the same endpoints
// are permitted. If false, AddEdge rejects duplicates with
// ErrMultiEdgeNotAllowed.
func (g *Graph[T]) Multigraph() bool { return g.allowMulti }

// Looped reports whether self-loops (from == to) are permitted.
// If false, AddEdge(v, v, ...) rejects the operation with ErrLoopNotAllowed.
func (g *Graph[T]) Looped() bool { return g.allowLoops }
