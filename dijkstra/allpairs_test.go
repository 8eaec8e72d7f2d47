package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/better-web-org/graphrs/core"
	"github.com/better-web-org/graphrs/dijkstra"
)

func TestAllPairs_NilGraph(t *testing.T) {
	_, err := dijkstra.AllPairs(nil, true, dijkstra.Options[string]{})
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestAllPairs_MatchesSingleSource(t *testing.T) {
	g := specGraph(t)

	all, err := dijkstra.AllPairs(g, true, dijkstra.Options[string]{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	for _, s := range g.Vertices() {
		single, err := dijkstra.SingleSource(g, true, s, dijkstra.Options[string]{})
		require.NoError(t, err)
		require.Equal(t, single, all[s], "row for source %s", s)
	}

	// Spot checks from the canonical graph.
	require.InDelta(t, 2.1, all["n1"]["n3"].Distance, 1e-12)
	require.Equal(t, [][]string{{"n1", "n2", "n3"}}, all["n1"]["n3"].Paths)
	require.InDelta(t, 1.1, all["n2"]["n3"].Distance, 1e-12)
	// n3 has no outgoing edges: its row contains only itself.
	require.Len(t, all["n3"], 1)
}

func TestAllPairs_TargetIgnored(t *testing.T) {
	g := specGraph(t)

	all, err := dijkstra.AllPairs(g, true, dijkstra.Options[string]{Target: ref("n3")})
	require.NoError(t, err)
	// Every row still enumerates all reachable targets.
	require.Len(t, all["n1"], 3)
}

func TestAllPairs_CutoffAndFirstOnlyApplyPerRow(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true), core.WithWeighted())
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	all, err := dijkstra.AllPairs(g, true, dijkstra.Options[string]{Cutoff: ref(2.0), FirstOnly: true})
	require.NoError(t, err)

	// E is 3 hops from A: pruned by the cutoff.
	require.NotContains(t, all["A"], "E")
	// FirstOnly keeps a single path to D despite the tie.
	require.Len(t, all["A"]["D"].Paths, 1)
}

func TestAllPairs_ErrorAbortsComputation(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", -10)
	require.NoError(t, err)

	_, err = dijkstra.AllPairs(g, true, dijkstra.Options[string]{})
	require.ErrorIs(t, err, dijkstra.ErrContradictoryPaths)
}

func TestAllPairs_LargerGraphConsistency(t *testing.T) {
	// A ring with chords, big enough for the fan-out to actually go parallel.
	const n = 64
	g := core.NewGraph[int](core.WithDirected(true), core.WithWeighted())
	for i := 0; i < n; i++ {
		_, err := g.AddEdge(i, (i+1)%n, 1)
		require.NoError(t, err)
		_, err = g.AddEdge(i, (i+7)%n, 3)
		require.NoError(t, err)
	}

	all, err := dijkstra.AllPairs(g, true, dijkstra.Options[int]{})
	require.NoError(t, err)
	require.Len(t, all, n)

	for s := 0; s < n; s += 13 {
		single, err := dijkstra.SingleSource(g, true, s, dijkstra.Options[int]{})
		require.NoError(t, err, fmt.Sprintf("source %d", s))
		require.Equal(t, single, all[s])
	}
}
