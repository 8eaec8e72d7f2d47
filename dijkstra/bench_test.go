package dijkstra_test

import (
	"testing"

	"github.com/better-web-org/graphrs/core"
	"github.com/better-web-org/graphrs/dijkstra"
)

// buildGrid returns a directed W×H grid with rightward and downward unit
// edges; node (x, y) is encoded as y*W+x. Grids are dense in equal-cost
// ties, which stresses the merge path of the accumulator.
func buildGrid(w, h int) *core.Graph[int] {
	g := core.NewGraph[int](core.WithDirected(true), core.WithWeighted())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := y*w + x
			if x+1 < w {
				_, _ = g.AddEdge(id, id+1, 1)
			}
			if y+1 < h {
				_, _ = g.AddEdge(id, id+w, 1)
			}
		}
	}

	return g
}

// BenchmarkSingleSource_Chain measures the plain search loop with no ties.
func BenchmarkSingleSource_Chain(b *testing.B) {
	const n = 10000
	g := core.NewGraph[int](core.WithDirected(true), core.WithWeighted())
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(i, i+1, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.SingleSource(g, true, 0, dijkstra.Options[int]{FirstOnly: true}); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSingleSource_GridFirstOnly isolates the search from the
// combinatorial path accumulation.
func BenchmarkSingleSource_GridFirstOnly(b *testing.B) {
	g := buildGrid(64, 64)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.SingleSource(g, true, 0, dijkstra.Options[int]{FirstOnly: true}); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSingleSource_GridAllTies pays the full cost of enumerating every
// tied path; kept small because tie counts grow binomially with grid size.
func BenchmarkSingleSource_GridAllTies(b *testing.B) {
	g := buildGrid(8, 8)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.SingleSource(g, true, 0, dijkstra.Options[int]{}); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAllPairs_Ring measures the parallel fan-out over every source.
func BenchmarkAllPairs_Ring(b *testing.B) {
	const n = 128
	g := core.NewGraph[int](core.WithDirected(true), core.WithWeighted())
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(i, (i+1)%n, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.AllPairs(g, true, dijkstra.Options[int]{FirstOnly: true}); err != nil {
			b.Fatal(err)
		}
	}
}
