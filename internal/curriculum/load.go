package curriculum

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
)

// Graph pack format versions this loader accepts. The major version must
// match; anything older than minFormatVersion is rejected.
const (
	currentFormatVersion = "v1.1.0"
	minFormatVersion     = "v1.0.0"
)

// Pack is the on-disk representation of a curriculum graph.
type Pack struct {
	FormatVersion string          `json:"format_version"`
	Nodes         []Node          `json:"nodes"`
	Edges         []Edge          `json:"edges"`
	Cascades      []Cascade       `json:"cascades,omitempty"`
	Screening     []ScreeningList `json:"screening"`
}

// Load parses and validates a graph pack document and builds the Graph.
// The document is first checked against the pack JSON Schema, then its
// format version against the supported window, then structurally
// validated by New. Any failure aborts with no partial state.
func Load(data []byte) (*Graph, error) {
	if err := validatePackDocument(data); err != nil {
		return nil, err
	}

	var pack Pack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("parse graph pack: %w", err)
	}

	if err := checkFormatVersion(pack.FormatVersion); err != nil {
		return nil, err
	}

	for i := range pack.Edges {
		if pack.Edges[i].Kind == "" {
			pack.Edges[i].Kind = RelationRequires
		}
	}

	return New(pack.Nodes, pack.Edges, pack.Cascades, pack.Screening)
}

// LoadFile reads and loads a graph pack from disk.
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph pack: %w", err)
	}
	g, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// checkFormatVersion enforces the supported format window.
func checkFormatVersion(v string) error {
	tagged := "v" + v
	if !semver.IsValid(tagged) {
		return fmt.Errorf("graph pack: invalid format_version %q", v)
	}
	if semver.Major(tagged) != semver.Major(currentFormatVersion) {
		return fmt.Errorf("graph pack: format_version %s has unsupported major version (want %s.x)", v, semver.Major(currentFormatVersion))
	}
	if semver.Compare(tagged, minFormatVersion) < 0 {
		return fmt.Errorf("graph pack: format_version %s is older than minimum supported %s", v, minFormatVersion[1:])
	}
	return nil
}
