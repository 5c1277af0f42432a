package curriculum

import (
	"errors"
	"reflect"
	"testing"
)

// testGraph builds the graph used across traversal tests:
//
//	B1.1.1.1 -> B2.1.1.1 -> B4.1.1.1
//	C1.1.1.1 -> C2.1.1.1 -> B4.1.1.1
//	C1.1.1.1 -> C3.1.1.1
func testGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := New(
		[]Node{
			{Code: "B1.1.1.1", Grade: 1, Severity: 0.9},
			{Code: "B2.1.1.1", Grade: 2, Severity: 0.8},
			{Code: "B4.1.1.1", Grade: 4, Severity: 0.7},
			{Code: "C1.1.1.1", Grade: 1, Severity: 0.6},
			{Code: "C2.1.1.1", Grade: 2, Severity: 0.5},
			{Code: "C3.1.1.1", Grade: 3, Severity: 0.4},
		},
		[]Edge{
			{Source: "B1.1.1.1", Target: "B2.1.1.1", Kind: RelationRequires},
			{Source: "B2.1.1.1", Target: "B4.1.1.1", Kind: RelationRequires},
			{Source: "C1.1.1.1", Target: "C2.1.1.1", Kind: RelationRequires},
			{Source: "C2.1.1.1", Target: "B4.1.1.1", Kind: RelationRequires},
			{Source: "C1.1.1.1", Target: "C3.1.1.1", Kind: RelationRequires},
		},
		[]Cascade{
			{Label: "Place Value Collapse", Nodes: []string{"B1.1.1.1", "B2.1.1.1", "B4.1.1.1"}},
			{Label: "Fraction Fog", Nodes: []string{"C1.1.1.1", "C2.1.1.1", "C3.1.1.1"}},
		},
		[]ScreeningList{
			{Grade: 4, Nodes: []string{"B4.1.1.1", "C3.1.1.1"}},
			{Grade: 2, Nodes: []string{"B2.1.1.1", "C2.1.1.1"}},
		},
	)
	if err != nil {
		t.Fatalf("build test graph: %v", err)
	}
	return g
}

func TestNode(t *testing.T) {
	g := testGraph(t)

	n, err := g.Node("B2.1.1.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Grade != 2 || n.Severity != 0.8 {
		t.Errorf("got grade=%d severity=%g, want 2 and 0.8", n.Grade, n.Severity)
	}

	_, err = g.Node("Z9.9.9.9")
	var nf *NodeNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NodeNotFoundError, got %v", err)
	}
	if nf.Code != "Z9.9.9.9" {
		t.Errorf("error carries code %q, want Z9.9.9.9", nf.Code)
	}
}

func TestBackwardTrace_Chain(t *testing.T) {
	g := testGraph(t)

	path, err := g.BackwardTrace("B4.1.1.1", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"B1.1.1.1", "B2.1.1.1", "B4.1.1.1"}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("got %v, want %v", path, want)
	}
}

func TestBackwardTrace_DepthBound(t *testing.T) {
	g := testGraph(t)

	path, err := g.BackwardTrace("B4.1.1.1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"B2.1.1.1", "B4.1.1.1"}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("got %v, want %v", path, want)
	}
}

func TestBackwardTrace_DefaultDepth(t *testing.T) {
	g := testGraph(t)

	// maxDepth <= 0 falls back to DefaultTraceDepth.
	path, err := g.BackwardTrace("B4.1.1.1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path) != 3 {
		t.Errorf("got path %v, want full 3-node chain", path)
	}
}

func TestBackwardTrace_SeverityTieBreak(t *testing.T) {
	g := testGraph(t)

	// B4.1.1.1 has prerequisites B2.1.1.1 (0.8) and C2.1.1.1 (0.5);
	// the trace must descend into the higher-severity branch.
	path, err := g.BackwardTrace("B4.1.1.1", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path[len(path)-2] != "B2.1.1.1" {
		t.Errorf("trace descended into %q, want B2.1.1.1", path[len(path)-2])
	}
}

func TestBackwardTrace_RootNode(t *testing.T) {
	g := testGraph(t)

	path, err := g.BackwardTrace("B1.1.1.1", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(path, []string{"B1.1.1.1"}) {
		t.Errorf("got %v, want just the root", path)
	}
}

func TestBackwardTrace_UnknownNode(t *testing.T) {
	g := testGraph(t)

	_, err := g.BackwardTrace("nope", 4)
	var nf *NodeNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NodeNotFoundError, got %v", err)
	}
}

func TestBackwardTrace_VisitsEachNodeOnce(t *testing.T) {
	g := testGraph(t)

	for _, n := range g.Nodes() {
		path, err := g.BackwardTrace(n.Code, 10)
		if err != nil {
			t.Fatalf("trace %q: %v", n.Code, err)
		}
		seen := make(map[string]bool, len(path))
		for _, code := range path {
			if seen[code] {
				t.Errorf("trace from %q visits %q twice: %v", n.Code, code, path)
			}
			seen[code] = true
		}
	}
}

func TestAncestryDepth(t *testing.T) {
	g := testGraph(t)

	tests := []struct {
		code string
		want int
	}{
		{"B1.1.1.1", 0},
		{"B2.1.1.1", 1},
		{"B4.1.1.1", 2},
		{"C3.1.1.1", 1},
	}
	for _, tt := range tests {
		got, err := g.AncestryDepth(tt.code)
		if err != nil {
			t.Fatalf("AncestryDepth(%q): %v", tt.code, err)
		}
		if got != tt.want {
			t.Errorf("AncestryDepth(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestFindCascadePath(t *testing.T) {
	g := testGraph(t)

	gaps := map[string]bool{"B2.1.1.1": true, "B4.1.1.1": true}
	match, ok := g.FindCascadePath(gaps)
	if !ok {
		t.Fatal("expected a cascade match")
	}
	if match.Label != "Place Value Collapse" || match.Overlap != 2 {
		t.Errorf("got %+v, want Place Value Collapse with overlap 2", match)
	}
}

func TestFindCascadePath_BelowMinimum(t *testing.T) {
	g := testGraph(t)

	_, ok := g.FindCascadePath(map[string]bool{"B4.1.1.1": true})
	if ok {
		t.Error("single shared node must not match any cascade")
	}
}

func TestFindCascadePath_Deterministic(t *testing.T) {
	g := testGraph(t)

	// Two nodes from each cascade: equal overlap, declaration order wins.
	gaps := map[string]bool{
		"B1.1.1.1": true, "B2.1.1.1": true,
		"C1.1.1.1": true, "C2.1.1.1": true,
	}
	for range 20 {
		match, ok := g.FindCascadePath(gaps)
		if !ok || match.Label != "Place Value Collapse" {
			t.Fatalf("got %+v ok=%v, want Place Value Collapse every time", match, ok)
		}
	}
}

func TestPlausibleCascades(t *testing.T) {
	g := testGraph(t)

	gaps := map[string]bool{
		"B1.1.1.1": true, "B2.1.1.1": true,
		"C1.1.1.1": true, "C2.1.1.1": true,
	}
	matches := g.PlausibleCascades(gaps)
	if len(matches) != 2 {
		t.Fatalf("got %d plausible cascades, want 2", len(matches))
	}
	if matches[0].Label != "Place Value Collapse" || matches[1].Label != "Fraction Fog" {
		t.Errorf("declaration order not preserved: %+v", matches)
	}
}

func TestPriorityScreeningOrder(t *testing.T) {
	g := testGraph(t)

	order, err := g.PriorityScreeningOrder(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"B4.1.1.1", "C3.1.1.1"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("got %v, want %v", order, want)
	}
}

func TestPriorityScreeningOrder_FallsBackToLowerGrade(t *testing.T) {
	g := testGraph(t)

	order, err := g.PriorityScreeningOrder(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"B2.1.1.1", "C2.1.1.1"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("got %v, want %v", order, want)
	}
}

func TestPriorityScreeningOrder_NoListAvailable(t *testing.T) {
	g := testGraph(t)

	if _, err := g.PriorityScreeningOrder(1); err == nil {
		t.Error("expected error when no list exists at or below the grade")
	}
}

func TestTopoIndex_PrerequisitesFirst(t *testing.T) {
	g := testGraph(t)

	for _, n := range g.Nodes() {
		ni, err := g.TopoIndex(n.Code)
		if err != nil {
			t.Fatalf("TopoIndex(%q): %v", n.Code, err)
		}
		for _, p := range g.Prerequisites(n.Code) {
			pi, err := g.TopoIndex(p)
			if err != nil {
				t.Fatalf("TopoIndex(%q): %v", p, err)
			}
			if pi >= ni {
				t.Errorf("prerequisite %q (idx %d) not before %q (idx %d)", p, pi, n.Code, ni)
			}
		}
	}
}
