package curriculum

import (
	"strings"
	"testing"
)

const goodPack = `{
  "format_version": "1.1.0",
  "nodes": [
    {"code": "B1.1.1.1", "grade": 1, "severity": 0.9},
    {"code": "B2.1.1.1", "grade": 2, "severity": 0.8,
     "misconceptions": [{"code": "M-PV-01", "description": "treats digits as independent"}]},
    {"code": "B4.1.1.1", "grade": 4, "severity": 0.7}
  ],
  "edges": [
    {"source": "B1.1.1.1", "target": "B2.1.1.1"},
    {"source": "B2.1.1.1", "target": "B4.1.1.1", "kind": "requires"}
  ],
  "cascades": [
    {"label": "Place Value Collapse", "nodes": ["B1.1.1.1", "B2.1.1.1", "B4.1.1.1"]}
  ],
  "screening": [
    {"grade": 4, "nodes": ["B4.1.1.1"]}
  ]
}`

func TestLoad_GoodPack(t *testing.T) {
	g, err := Load([]byte(goodPack))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, err := g.Node("B2.1.1.1")
	if err != nil {
		t.Fatalf("node lookup: %v", err)
	}
	if len(n.Misconceptions) != 1 || n.Misconceptions[0].Code != "M-PV-01" {
		t.Errorf("misconceptions not loaded: %+v", n.Misconceptions)
	}

	// Edge kind defaults to "requires" when omitted.
	if got := g.Prerequisites("B2.1.1.1"); len(got) != 1 || got[0] != "B1.1.1.1" {
		t.Errorf("prerequisites of B2.1.1.1 = %v, want [B1.1.1.1]", got)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := Load([]byte("{not json"))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	// severity above 1.0 must be caught by the document schema.
	bad := strings.Replace(goodPack, `"severity": 0.9`, `"severity": 9.0`, 1)
	_, err := Load([]byte(bad))
	if err == nil {
		t.Fatal("expected schema validation error")
	}
	if !strings.Contains(err.Error(), "schema") {
		t.Errorf("error should come from schema validation: %v", err)
	}
}

func TestLoad_MissingRequiredSection(t *testing.T) {
	bad := strings.Replace(goodPack, `"screening"`, `"screening_x"`, 1)
	_, err := Load([]byte(bad))
	if err == nil {
		t.Fatal("expected error for missing screening section")
	}
}

func TestLoad_FormatVersionWindow(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"1.1.0", false},
		{"1.0.0", false},
		{"1.2.3", false},
		{"0.9.0", true}, // different major
		{"2.0.0", true}, // different major
	}
	for _, tt := range tests {
		doc := strings.Replace(goodPack, "1.1.0", tt.version, 1)
		_, err := Load([]byte(doc))
		if tt.wantErr && err == nil {
			t.Errorf("version %s: expected error", tt.version)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("version %s: unexpected error: %v", tt.version, err)
		}
	}
}

func TestLoad_CyclicPackRejected(t *testing.T) {
	cyclic := strings.Replace(goodPack,
		`{"source": "B1.1.1.1", "target": "B2.1.1.1"}`,
		`{"source": "B1.1.1.1", "target": "B2.1.1.1"}, {"source": "B4.1.1.1", "target": "B1.1.1.1"}`, 1)
	_, err := Load([]byte(cyclic))
	if err == nil {
		t.Fatal("expected cycle to abort loading")
	}
}
