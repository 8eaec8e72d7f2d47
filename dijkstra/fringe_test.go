package dijkstra

import (
	"container/heap"
	"testing"
)

// drain pops every entry and returns the node order.
func drain(f *fringe[string]) []string {
	var out []string
	for f.Len() > 0 {
		out = append(out, heap.Pop(f).(fringeItem[string]).node)
	}

	return out
}

func TestFringe_MinDistanceFirst(t *testing.T) {
	var f fringe[string]
	heap.Init(&f)
	heap.Push(&f, fringeItem[string]{node: "far", seq: 1, dist: 9})
	heap.Push(&f, fringeItem[string]{node: "near", seq: 2, dist: 1})
	heap.Push(&f, fringeItem[string]{node: "mid", seq: 3, dist: 5})

	got := drain(&f)
	want := []string{"near", "mid", "far"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pop order = %v; want %v", got, want)
		}
	}
}

func TestFringe_EqualDistanceUsesInsertionOrder(t *testing.T) {
	var f fringe[string]
	heap.Init(&f)
	// Same distance: insertion sequence decides, regardless of node IDs.
	heap.Push(&f, fringeItem[string]{node: "z", seq: 1, dist: 3})
	heap.Push(&f, fringeItem[string]{node: "a", seq: 2, dist: 3})
	heap.Push(&f, fringeItem[string]{node: "m", seq: 3, dist: 3})

	got := drain(&f)
	want := []string{"z", "a", "m"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pop order = %v; want %v", got, want)
		}
	}
}

func TestFringe_FullTieFallsBackToNodeOrder(t *testing.T) {
	var f fringe[string]
	heap.Init(&f)
	// Identical distance and sequence can only happen for entries built by
	// hand, but the final node tiebreak keeps even that deterministic.
	heap.Push(&f, fringeItem[string]{node: "b", seq: 7, dist: 3})
	heap.Push(&f, fringeItem[string]{node: "a", seq: 7, dist: 3})

	if got := drain(&f); got[0] != "a" || got[1] != "b" {
		t.Fatalf("pop order = %v; want [a b]", got)
	}
}

func TestPathTable_ExtendReplacesAndCopies(t *testing.T) {
	p := make(pathTable[string])
	p.seed("A")
	p.extend("B", "A")

	if len(p["B"]) != 1 || len(p["B"][0]) != 2 {
		t.Fatalf("paths[B] = %v; want [[A B]]", p["B"])
	}

	// A strictly better rediscovery replaces the whole set.
	p.seed("S")
	p.extend("B", "S")
	if len(p["B"]) != 1 || p["B"][0][0] != "S" {
		t.Fatalf("paths[B] = %v; want [[S B]]", p["B"])
	}

	// Stored paths must not share backing arrays with their via paths.
	p["S"][0][0] = "mutated"
	if p["B"][0][0] != "S" {
		t.Fatal("extend must deep-copy via paths")
	}
}

func TestPathTable_MergeAppends(t *testing.T) {
	p := make(pathTable[string])
	p.seed("A")
	p.extend("B", "A")
	p.extend("C", "A")
	p.extend("D", "B")
	p.merge("D", "C")

	if len(p["D"]) != 2 {
		t.Fatalf("paths[D] has %d paths; want 2", len(p["D"]))
	}
	if p["D"][0][1] != "B" || p["D"][1][1] != "C" {
		t.Fatalf("paths[D] = %v; want via B then via C", p["D"])
	}
}
