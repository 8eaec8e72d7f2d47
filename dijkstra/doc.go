// Package dijkstra computes shortest weighted paths over a graph and,
// unlike most implementations, returns all shortest paths of equal length
// rather than just the first one found.
//
// Overview:
//
//   - SingleSource finds shortest paths from one source vertex to all
//     reachable vertices, or to a single target with early exit.
//   - MultiSource seeds the same search with several sources at once; each
//     returned path starts at whichever source reaches its target cheapest.
//   - AllPairs runs an independent single-source search from every vertex of
//     the graph, in parallel, and assembles the full source → target matrix.
//
// The search is a generalized Dijkstra loop. Vertices move through three
// states: unseen, tentative (best-known distance may still improve), and
// finalized (popped from the priority fringe; the distance is exact and
// never changes). Whenever a vertex is re-reached at a distance exactly
// equal to its best tentative distance, the alternative paths are merged
// into its path set instead of being discarded; that is the mechanism by
// which ties accumulate. Set Options.FirstOnly to disable it and obtain the
// classic one-path-per-target behavior.
//
// Weighted and unweighted queries:
//
//   - weighted=true reads edge weights from the graph; every edge must carry
//     an explicit weight or the query fails with ErrEdgeWeightNotSpecified
//     before any search state is built. On multigraphs the cheapest of the
//     parallel edges is used.
//   - weighted=false treats every edge as cost 1.0, regardless of stored
//     weights.
//
// Determinism:
//
//   - The fringe orders entries by distance, then by insertion sequence,
//     then by vertex ID, so equal-distance pops are stable and the "is this
//     an equal-length alternative" decision never depends on heap internals.
//     Combined with the sorted adjacency queries of core.Graph, results are
//     reproducible run to run.
//
// Failure semantics:
//
//   - ErrContradictoryPaths aborts a query when a strictly shorter path to
//     an already-finalized vertex is discovered. That can only happen with
//     negative edge weights, which invalidate the non-decreasing
//     finalization order the whole algorithm depends on. No partial result
//     is returned.
//   - Unreachable vertices are simply absent from the result map; that is
//     not an error.
//
// Resource characteristics:
//
//   - Time O((V + E) log V) and space O(V + E) for the search itself, as
//     with any lazy-decrease-key Dijkstra.
//   - Accumulating every tied path is combinatorial in adversarial graphs:
//     tied sub-paths compound multiplicatively through fan-out vertices, so
//     the Paths slices (not the algorithm) can dominate memory. This is the
//     accepted cost of completeness; use Options.FirstOnly or a Cutoff to
//     bound the work when only one optimum (or a bounded radius) is needed.
//
// References:
//
//  1. E. W. Dijkstra. A note on two problems in connexion with graphs.
//     Numer. Math., 1:269-271, 1959.
package dijkstra
