// Package graphrs is an in-memory library for building weighted graphs and
// computing every shortest path, not just the first one found.
//
// Where most shortest-path routines return a single optimal route, the
// dijkstra subpackage accumulates all paths tied for minimal distance,
// supports multi-source seeds, distance cutoffs, and a parallel all-pairs
// mode over every vertex of the graph.
//
// The library is organized under two subpackages:
//
//	core/     - generic Graph storage: vertices, (multi-)edges, policies,
//	            thread-safe mutation and deterministic read queries
//	dijkstra/ - single-source, multi-source and all-pairs shortest paths
//	            with full equal-cost path enumeration
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
// With unit weights both A→B→D and A→C→D cost 2; dijkstra reports both.
//
//	go get github.com/better-web-org/graphrs
package graphrs
