// Package dijkstra types: the read-only graph contract, query options,
// sentinel errors, and the externally visible result type.

package dijkstra

import (
	"cmp"
	"errors"
)

// Sentinel errors returned by the shortest-path queries.
var (
	// ErrNilGraph indicates that a nil graph was passed to a query.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSources indicates that a query was given an empty source set.
	ErrNoSources = errors.New("dijkstra: no source vertices provided")

	// ErrSourceNotFound indicates that a source vertex does not exist
	// in the provided graph.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrEdgeWeightNotSpecified indicates that a weighted query was requested
	// but not all edges in the graph have an explicit weight. Detected before
	// any search state is constructed.
	ErrEdgeWeightNotSpecified = errors.New("dijkstra: not all edges in the graph have a weight")

	// ErrContradictoryPaths indicates that a strictly shorter path to an
	// already-finalized vertex was discovered mid-search, which only
	// negative edge weights can produce. The whole query is aborted.
	ErrContradictoryPaths = errors.New("dijkstra: contradictory paths found, do some edges have negative weights?")

	// ErrBadCutoff indicates that Options.Cutoff was set to a negative or
	// NaN value, which is not meaningful for a distance bound.
	ErrBadCutoff = errors.New("dijkstra: cutoff must be a non-negative number")
)

// Graph is the read-only query surface the search consumes. *core.Graph[T]
// satisfies it; any other storage can be plugged in by implementing it.
//
// The search never mutates the graph, so one Graph may back many concurrent
// queries as long as its implementation permits concurrent readers.
type Graph[T cmp.Ordered] interface {
	// Vertices enumerates all vertex IDs.
	Vertices() []T

	// HasVertex reports whether id exists in the graph.
	HasVertex(id T) bool

	// SuccessorIDs returns the targets of id's outgoing edges (directed mode).
	SuccessorIDs(id T) ([]T, error)

	// NeighborIDs returns the vertices adjacent to id (undirected mode).
	NeighborIDs(id T) ([]T, error)

	// EdgeWeight returns the weight of the single u → v edge; it fails if
	// the edge is absent. Used when Multigraph() is false.
	EdgeWeight(u, v T) (float64, error)

	// EdgeWeights returns the weights of all parallel u → v edges; it fails
	// if no edge is present. Used when Multigraph() is true.
	EdgeWeights(u, v T) ([]float64, error)

	// Directed reports whether edges are directed.
	Directed() bool

	// Multigraph reports whether parallel edges may exist.
	Multigraph() bool

	// AllEdgesWeighted reports whether every edge carries an explicit weight.
	AllEdgesWeighted() bool
}

// ShortestPathInfo describes the shortest paths from a query's source set
// to one target vertex.
//
// Every path in Paths has total weight equal to Distance; with
// Options.FirstOnly unset, Paths holds every minimal-cost path discovered,
// in discovery order.
type ShortestPathInfo[T cmp.Ordered] struct {
	// Distance is the minimal total edge cost from the nearest source.
	Distance float64

	// Paths lists vertex sequences from a source to the target, inclusive.
	Paths [][]T
}

// Options configures a shortest-path query.
//
//   - Target: if non-nil, the search stops as soon as the target is
//     finalized and the result map is filtered down to that one vertex.
//     AllPairs ignores it.
//   - Cutoff: if non-nil, neighbors whose candidate distance exceeds the
//     cutoff are pruned; only paths of summed weight ≤ *Cutoff are returned.
//     Must be ≥ 0 (ErrBadCutoff otherwise).
//   - FirstOnly: if true, keep only the first shortest path found per
//     target instead of accumulating every tie.
//
// The zero value asks for all reachable targets, no distance bound, and
// full tie accumulation.
type Options[T cmp.Ordered] struct {
	Target    *T
	Cutoff    *float64
	FirstOnly bool
}

// DefaultOptions returns the zero-value Options: no target, no cutoff,
// all tied paths reported.
func DefaultOptions[T cmp.Ordered]() Options[T] {
	return Options[T]{}
}

// validate rejects malformed option values before a search begins.
func (o Options[T]) validate() error {
	if o.Cutoff != nil && !(*o.Cutoff >= 0) {
		return ErrBadCutoff
	}

	return nil
}
