package contour

import (
	"testing"

	"github.com/Jose-Trivino/make-poly-from-image/geom"
)

func straightChain(n int) []geom.Edge {
	edges := make([]geom.Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = geom.Edge{A: geom.Point{X: i, Y: 0}, B: geom.Point{X: i + 1, Y: 0}}
	}
	return edges
}

func TestReduceConstantNoOpAtZero(t *testing.T) {
	edges := straightChain(5)
	got := ReduceConstant(edges, 0)
	if len(got) != len(edges) {
		t.Errorf("limit=0 should be a no-op, got %d edges want %d", len(got), len(edges))
	}
}

func TestReduceConstantMergesPairs(t *testing.T) {
	edges := straightChain(6)
	got := ReduceConstant(edges, 2)
	if len(got) >= len(edges) {
		t.Fatalf("ReduceConstant(limit=2) should shrink the chain, got %d edges from %d", len(got), len(edges))
	}
	if got[0].A != edges[0].A {
		t.Errorf("first merged edge should start where the chain started")
	}
	if got[len(got)-1].B != edges[len(edges)-1].B {
		t.Errorf("last merged edge should end where the chain ended")
	}
}

func TestReduceVariableKeepsCollinearChainWhole(t *testing.T) {
	// every point on a perfectly straight chain has zero line-distance, so
	// a generous maxDist should merge the whole thing into one edge.
	edges := straightChain(8)
	got := ReduceVariable(edges, 1.0)
	if len(got) != 1 {
		t.Fatalf("ReduceVariable should fully merge a collinear chain, got %d edges", len(got))
	}
	if got[0].A != edges[0].A || got[0].B != edges[len(edges)-1].B {
		t.Errorf("merged edge endpoints = %v, want %v -> %v", got[0], edges[0].A, edges[len(edges)-1].B)
	}
}

func TestReduceVariableSplitsAtSharpTurn(t *testing.T) {
	edges := []geom.Edge{
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 1, Y: 0}},
		{A: geom.Point{X: 1, Y: 0}, B: geom.Point{X: 2, Y: 0}},
		{A: geom.Point{X: 2, Y: 0}, B: geom.Point{X: 2, Y: 1}},
		{A: geom.Point{X: 2, Y: 1}, B: geom.Point{X: 2, Y: 2}},
	}
	got := ReduceVariable(edges, 0.1)
	if len(got) != 2 {
		t.Fatalf("ReduceVariable across a right-angle turn should produce 2 edges, got %d", len(got))
	}
}

func TestReduceHybridNoOpAtZeroLimit(t *testing.T) {
	edges := straightChain(4)
	got := ReduceHybrid(edges, 0, 5)
	if len(got) != len(edges) {
		t.Errorf("limit=0 should be a no-op, got %d edges want %d", len(got), len(edges))
	}
}

func TestReduceHybridCapsMergeDepth(t *testing.T) {
	edges := straightChain(10)
	got := ReduceHybrid(edges, 2, 100)
	// a limit of 2 merges caps every run at 3 original edges (2 merges), so
	// 10 unit edges must produce at least 4 merged edges, never 1.
	if len(got) < 4 {
		t.Errorf("ReduceHybrid(limit=2) merged too aggressively: got %d edges", len(got))
	}
}
