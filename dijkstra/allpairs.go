// All-pairs orchestration: one independent single-source search per vertex,
// fanned out across workers.

package dijkstra

import (
	"cmp"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// AllPairs computes shortest paths between all pairs of vertices of g,
// returning a map keyed by source vertex whose values are that source's
// SingleSource result (target vertex → ShortestPathInfo).
//
// Per-source searches are fully independent: each owns its distance maps,
// path table and fringe, and only reads the shared graph. They therefore
// run concurrently, bounded by GOMAXPROCS, with no synchronization beyond
// the final join. The first failing search aborts the whole computation.
//
// opts.Cutoff and opts.FirstOnly apply to every per-source run;
// opts.Target is ignored.
//
// Errors: ErrNilGraph, ErrBadCutoff, ErrEdgeWeightNotSpecified,
// ErrContradictoryPaths.
//
// Complexity: O(V · (V + E) log V) work in total, plus path-set sizes.
func AllPairs[T cmp.Ordered](g Graph[T], weighted bool, opts Options[T]) (map[T]map[T]ShortestPathInfo[T], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// An all-pairs run enumerates every target per source.
	opts.Target = nil

	sources := g.Vertices()
	rows := make([]map[T]ShortestPathInfo[T], len(sources))

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range sources {
		i, s := i, s
		eg.Go(func() error {
			row, err := MultiSource(g, weighted, []T{s}, opts)
			if err != nil {
				return err
			}
			rows[i] = row

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := make(map[T]map[T]ShortestPathInfo[T], len(sources))
	for i, s := range sources {
		result[s] = rows[i]
	}

	return result, nil
}
