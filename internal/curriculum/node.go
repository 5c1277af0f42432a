package curriculum

// RelationKind describes how a prerequisite relates to its dependent node.
type RelationKind string

const (
	// RelationRequires means the source must be mastered before the target.
	RelationRequires RelationKind = "requires"
	// RelationSupports means the source strengthens but does not block the target.
	RelationSupports RelationKind = "supports"
)

// Misconception is a known wrong mental model associated with a node.
type Misconception struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Node is a single curriculum skill unit. Nodes are immutable once the
// graph is built.
type Node struct {
	// Code is the stable alphanumeric identifier encoding grade and
	// topic position, e.g. "B2.1.1.1".
	Code string `json:"code"`

	// Grade is the grade level the node is taught at.
	Grade int `json:"grade"`

	// Severity scores how damaging a gap at this node is downstream,
	// in [0, 1]. Used for screening priority and primary-gap tie-breaks.
	Severity float64 `json:"severity"`

	// Misconceptions lists known error patterns for this node.
	Misconceptions []Misconception `json:"misconceptions,omitempty"`
}

// Edge is a directed prerequisite relation: Source is a prerequisite of
// Target. The full edge set must form a DAG.
type Edge struct {
	Source string       `json:"source"`
	Target string       `json:"target"`
	Kind   RelationKind `json:"kind"`
}

// Cascade is a named, ordered node sequence representing a known systemic
// failure pattern (e.g. "Place Value Collapse"). Used only for read-only
// matching against a learner's gap set.
type Cascade struct {
	Label string   `json:"label"`
	Nodes []string `json:"nodes"`
}

// ScreeningList is the fixed, ordered set of high-severity nodes probed
// first for learners entering at a given grade.
type ScreeningList struct {
	Grade int      `json:"grade"`
	Nodes []string `json:"nodes"`
}

// CascadeMatch is the result of matching a gap set against the declared
// cascades.
type CascadeMatch struct {
	Label   string
	Overlap int
}
