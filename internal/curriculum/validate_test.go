package curriculum

import (
	"errors"
	"strings"
	"testing"
)

func validNodes() []Node {
	return []Node{
		{Code: "A1", Grade: 1, Severity: 0.5},
		{Code: "A2", Grade: 2, Severity: 0.5},
		{Code: "A3", Grade: 3, Severity: 0.5},
	}
}

func validScreening() []ScreeningList {
	return []ScreeningList{{Grade: 3, Nodes: []string{"A3"}}}
}

func TestValidate_CycleRejected(t *testing.T) {
	edges := []Edge{
		{Source: "A1", Target: "A2"},
		{Source: "A2", Target: "A3"},
		{Source: "A3", Target: "A1"},
	}
	_, err := New(validNodes(), edges, nil, validScreening())
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(ve.Error(), "cycle") {
		t.Errorf("error does not mention the cycle: %v", ve)
	}
}

func TestValidate_DanglingEdge(t *testing.T) {
	edges := []Edge{{Source: "A1", Target: "missing"}}
	_, err := New(validNodes(), edges, nil, validScreening())
	if err == nil {
		t.Fatal("expected error for dangling edge target")
	}
}

func TestValidate_DuplicateNodeCode(t *testing.T) {
	nodes := append(validNodes(), Node{Code: "A1", Grade: 1, Severity: 0.1})
	_, err := New(nodes, nil, nil, validScreening())
	if err == nil {
		t.Fatal("expected error for duplicate node code")
	}
}

func TestValidate_SeverityOutOfRange(t *testing.T) {
	nodes := []Node{{Code: "A1", Grade: 1, Severity: 1.5}}
	_, err := New(nodes, nil, nil, []ScreeningList{{Grade: 1, Nodes: []string{"A1"}}})
	if err == nil {
		t.Fatal("expected error for severity > 1")
	}
}

func TestValidate_SelfEdge(t *testing.T) {
	edges := []Edge{{Source: "A1", Target: "A1"}}
	_, err := New(validNodes(), edges, nil, validScreening())
	if err == nil {
		t.Fatal("expected error for self-edge")
	}
}

func TestValidate_CascadeUnknownNode(t *testing.T) {
	cascades := []Cascade{{Label: "Broken", Nodes: []string{"A1", "nope"}}}
	_, err := New(validNodes(), nil, cascades, validScreening())
	if err == nil {
		t.Fatal("expected error for cascade referencing unknown node")
	}
}

func TestValidate_CascadeTooShort(t *testing.T) {
	cascades := []Cascade{{Label: "Tiny", Nodes: []string{"A1"}}}
	_, err := New(validNodes(), nil, cascades, validScreening())
	if err == nil {
		t.Fatal("expected error for cascade shorter than the match minimum")
	}
}

func TestValidate_NoScreeningLists(t *testing.T) {
	_, err := New(validNodes(), nil, nil, nil)
	if err == nil {
		t.Fatal("expected error when no screening lists are declared")
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	nodes := []Node{
		{Code: "A1", Grade: -1, Severity: 2.0},
		{Code: "A1", Grade: 1, Severity: 0.5},
	}
	_, err := New(nodes, []Edge{{Source: "A1", Target: "gone"}}, nil, nil)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Problems) < 4 {
		t.Errorf("got %d problems, want all of them reported at once:\n%v", len(ve.Problems), ve)
	}
}
