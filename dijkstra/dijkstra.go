package dijkstra

import (
	"cmp"
	"container/heap"
	"fmt"
	"slices"
)

// SingleSource computes shortest paths from source to all reachable
// vertices of g (or just opts.Target, if set), returning every tied path
// per target unless opts.FirstOnly is set.
//
// If weighted is true, edge weights are read from the graph and every edge
// must carry one; if false, every edge costs 1.0.
//
// Returns a map from target vertex to its ShortestPathInfo. Unreachable
// vertices are absent from the map.
//
// Errors: ErrNilGraph, ErrSourceNotFound, ErrBadCutoff,
// ErrEdgeWeightNotSpecified, ErrContradictoryPaths.
//
// Complexity: O((V + E) log V) plus the size of the accumulated path sets.
func SingleSource[T cmp.Ordered](g Graph[T], weighted bool, source T, opts Options[T]) (map[T]ShortestPathInfo[T], error) {
	return MultiSource(g, weighted, []T{source}, opts)
}

// MultiSource computes shortest paths that may start at any of the given
// sources. A vertex's result describes the cheapest way to reach it from
// whichever source is nearest; each returned path begins at that source.
// A single source is the degenerate case of one seed.
//
// See SingleSource for the weighted flag, options, result shape and errors;
// additionally an empty source set yields ErrNoSources.
func MultiSource[T cmp.Ordered](g Graph[T], weighted bool, sources []T, opts Options[T]) (map[T]ShortestPathInfo[T], error) {
	// 1) Validate inputs before building any search state.
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	for _, s := range sources {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, s)
		}
	}

	// 2) A weighted query requires every edge to carry an explicit weight.
	if weighted && !g.AllEdgesWeighted() {
		return nil, ErrEdgeWeightNotSpecified
	}

	// 3) Run the search.
	r := &runner[T]{
		g:        g,
		weighted: weighted,
		opts:     opts,
		directed: g.Directed(),
		multi:    g.Multigraph(),
		dist:     make(map[T]float64),
		seen:     make(map[T]float64),
		paths:    make(pathTable[T]),
	}
	result, err := r.run(sources)
	if err != nil {
		return nil, err
	}

	// 4) Filter down to the requested target, if one was given.
	if opts.Target != nil {
		filtered := make(map[T]ShortestPathInfo[T], 1)
		if info, ok := result[*opts.Target]; ok {
			filtered[*opts.Target] = info
		}

		return filtered, nil
	}

	return result, nil
}

// runner holds the mutable state for a single search. All of it is created
// fresh per query and discarded once the result is extracted; no state is
// shared across queries.
type runner[T cmp.Ordered] struct {
	g        Graph[T]   // read-only collaborator
	weighted bool       // read edge weights vs. constant cost 1.0
	opts     Options[T] // target / cutoff / first-only
	directed bool       // expand successors vs. neighbors
	multi    bool       // resolve cost over parallel edges

	dist   map[T]float64 // finalized distances, set once per vertex on pop
	seen   map[T]float64 // best tentative distance per non-finalized vertex
	paths  pathTable[T]  // all minimal paths known per vertex
	fringe fringe[T]     // priority fringe of tentative entries
	seq    int           // insertion sequence for fringe tie-breaking
}

// run executes the generalized Dijkstra loop and assembles the result map.
func (r *runner[T]) run(sources []T) (map[T]ShortestPathInfo[T], error) {
	// Seed: every source enters the fringe at distance 0 with path [source].
	heap.Init(&r.fringe)
	for _, s := range sources {
		r.paths.seed(s)
		r.seen[s] = 0
		r.push(s, 0)
	}

	for r.fringe.Len() > 0 {
		item := heap.Pop(&r.fringe).(fringeItem[T])
		v, d := item.node, item.dist

		// Stale duplicate left behind by a later, superseding push; skip.
		if _, done := r.dist[v]; done {
			continue
		}

		// Finalize v. Pops occur in non-decreasing distance order, so d is
		// exact and never changes again.
		r.dist[v] = d

		// Early exit: once the target is finalized no later pop can improve it.
		if r.opts.Target != nil && v == *r.opts.Target {
			break
		}

		if err := r.expand(v, d); err != nil {
			return nil, err
		}
	}

	// Pair every finalized distance with its accumulated path set.
	result := make(map[T]ShortestPathInfo[T], len(r.dist))
	for v, d := range r.dist {
		result[v] = ShortestPathInfo[T]{Distance: d, Paths: r.paths[v]}
	}

	return result, nil
}

// expand relaxes every edge out of the just-finalized vertex v at distance d.
func (r *runner[T]) expand(v T, d float64) error {
	adjacent, err := r.adjacent(v)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get adjacency of %v: %w", v, err)
	}

	for _, u := range adjacent {
		cost, err := r.cost(v, u)
		if err != nil {
			return err
		}
		candidate := d + cost

		// Cutoff pruning: ignore anything beyond the distance bound.
		if r.opts.Cutoff != nil && candidate > *r.opts.Cutoff {
			continue
		}

		if uDist, done := r.dist[u]; done {
			// A shorter path to a finalized vertex contradicts the
			// non-decreasing finalization order: negative weights.
			if candidate < uDist {
				return ErrContradictoryPaths
			}

			continue
		}

		uSeen, wasSeen := r.seen[u]
		switch {
		case !wasSeen || candidate < uSeen:
			// First discovery, or strict improvement of the tentative
			// distance: record it and replace u's path set.
			r.seen[u] = candidate
			r.push(u, candidate)
			r.paths.extend(u, v)
		case !r.opts.FirstOnly && candidate == uSeen:
			// Equal-length alternative: duplicate fringe entry plus merge.
			r.push(u, candidate)
			r.paths.merge(u, v)
		}
		// Worse distance, or an equal one under FirstOnly: nothing to do.
	}

	return nil
}

// adjacent returns the vertices to expand from v: successors when the graph
// is directed, neighbors otherwise.
func (r *runner[T]) adjacent(v T) ([]T, error) {
	if r.directed {
		return r.g.SuccessorIDs(v)
	}

	return r.g.NeighborIDs(v)
}

// cost resolves the traversal cost of the v → u step: constant 1.0 for
// unweighted queries, the single edge weight on plain graphs, and the
// minimum over parallel edges on multigraphs. The caller guarantees
// adjacency, so a missing edge is an internal inconsistency, not user error.
func (r *runner[T]) cost(v, u T) (float64, error) {
	if !r.weighted {
		return 1.0, nil
	}

	if r.multi {
		weights, err := r.g.EdgeWeights(v, u)
		if err != nil {
			return 0, fmt.Errorf("dijkstra: edge weights %v→%v: %w", v, u, err)
		}

		return slices.Min(weights), nil
	}

	w, err := r.g.EdgeWeight(v, u)
	if err != nil {
		return 0, fmt.Errorf("dijkstra: edge weight %v→%v: %w", v, u, err)
	}

	return w, nil
}

// push adds a fringe entry for u, assigning the next insertion sequence.
func (r *runner[T]) push(u T, dist float64) {
	r.seq++
	heap.Push(&r.fringe, fringeItem[T]{node: u, seq: r.seq, dist: dist})
}
