package session

// Phase identifies where a diagnostic session is in its lifecycle.
// Created and Screening are entry phases; Complete and Abandoned are
// terminal. Each non-terminal phase past Created carries its own state
// struct on the Session, so illegal phase/data combinations cannot be
// represented.
type Phase string

const (
	PhaseCreated       Phase = "created"
	PhaseScreening     Phase = "screening"
	PhaseBackwardTrace Phase = "backward_trace"
	PhaseCrossCheck    Phase = "cross_check"
	PhaseComplete      Phase = "complete"
	PhaseAbandoned     Phase = "abandoned"
)

// Terminal reports whether no further probing can happen in this phase.
func (p Phase) Terminal() bool {
	return p == PhaseComplete || p == PhaseAbandoned
}

// ScreeningState is the data valid only while screening: the fixed
// priority probe list and the cursor into it.
type ScreeningState struct {
	// Order is the grade-dependent priority screening list.
	Order []string `json:"order"`

	// Index is the position of the node currently being screened.
	Index int `json:"index"`

	// ProbesAtNode counts probes already spent on the current node.
	ProbesAtNode int `json:"probes_at_node"`
}

// TraceState is the data valid only during a backward trace from a
// detected gap anchor.
type TraceState struct {
	// Anchor is the screening node whose failure started the trace.
	Anchor string `json:"anchor"`

	// Ancestors holds the anchor's prerequisite chain, nearest-first.
	Ancestors []string `json:"ancestors"`

	// Index is the position of the ancestor currently being probed.
	Index int `json:"index"`
}

// CrossCheckState is the data valid only during cascade disambiguation.
type CrossCheckState struct {
	// Node is the extra node probed to disambiguate between cascades.
	Node string `json:"node"`

	// AgainstCascade names the alternative cascade the probe tests.
	AgainstCascade string `json:"against_cascade"`
}
