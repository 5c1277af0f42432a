package session

import (
	"sort"
	"time"

	"github.com/gapmapdev/gapmap/internal/profile"
)

// Outcome classifies a single probe's result.
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"

	// OutcomeInconclusive marks a probe whose classification could not
	// be obtained (classifier retries exhausted). It counts against the
	// probe cap but contributes no gap or mastery evidence.
	OutcomeInconclusive Outcome = "inconclusive"
)

// ProbeRecord is one probe in a session: the node probed, the learner's
// raw response, and the classification verdict.
type ProbeRecord struct {
	NodeCode      string    `json:"node_code"`
	Phase         Phase     `json:"phase"`
	RawResponse   string    `json:"raw_response"`
	Outcome       Outcome   `json:"outcome"`
	Confidence    float64   `json:"confidence"`
	Misconception string    `json:"misconception,omitempty"`
	At            time.Time `json:"at"`
}

// Session is the complete state of one diagnostic session. It is
// mutated only by the Engine, persisted after every step so the state
// machine is resumable across process restarts, and immutable once a
// terminal phase is reached.
type Session struct {
	ID         string `json:"id"`
	LearnerID  string `json:"learner_id"`
	EntryGrade int    `json:"entry_grade"`
	Phase      Phase  `json:"phase"`

	// CurrentProbe is the node awaiting a response, empty when terminal.
	CurrentProbe string `json:"current_probe,omitempty"`

	// Probes is the ordered record of everything asked so far.
	Probes []ProbeRecord `json:"probes"`

	// Exactly one of these is non-nil in the matching phase.
	Screening  *ScreeningState  `json:"screening,omitempty"`
	Trace      *TraceState      `json:"trace,omitempty"`
	CrossCheck *CrossCheckState `json:"cross_check,omitempty"`

	// Gap and Mastered accumulate decisive classifications. A node's
	// gap confidence is kept for the final delta.
	Gap           map[string]bool    `json:"gap"`
	Mastered      map[string]bool    `json:"mastered"`
	GapConfidence map[string]float64 `json:"gap_confidence"`

	// PrimaryGap is the deepest unresolved gap: the last decisive gap
	// found while tracing, or the screening anchor if no trace ran.
	PrimaryGap string `json:"primary_gap,omitempty"`

	// CascadeLabel is the matched cascade, set on finalization.
	CascadeLabel string `json:"cascade_label,omitempty"`

	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TestedSet returns the set of every node probed so far, regardless of
// outcome.
func (s *Session) TestedSet() map[string]bool {
	tested := make(map[string]bool, len(s.Probes))
	for _, p := range s.Probes {
		tested[p.NodeCode] = true
	}
	return tested
}

// Delta converts a terminal session into the contribution consumed by
// the profile merge engine. Calling it on a live session is an
// InvalidSessionStateError; an abandoned session still yields its
// partial evidence.
func (s *Session) Delta() (*profile.Delta, error) {
	if !s.Phase.Terminal() {
		return nil, &InvalidSessionStateError{ID: s.ID, Phase: s.Phase}
	}

	return &profile.Delta{
		Tested:       sortedCodes(s.TestedSet()),
		Gap:          sortedCodes(s.Gap),
		Mastered:     sortedCodes(s.Mastered),
		PrimaryGap:   s.PrimaryGap,
		CascadeLabel: s.CascadeLabel,
		Confidence:   s.deltaConfidence(),
	}, nil
}

// deltaConfidence is the confidence reported for the primary gap's
// classification. A session that found no gaps falls back to the
// highest confidence recorded across its probes.
func (s *Session) deltaConfidence() float64 {
	if s.PrimaryGap != "" {
		return s.GapConfidence[s.PrimaryGap]
	}
	best := 0.0
	for _, p := range s.Probes {
		if p.Outcome != OutcomeInconclusive && p.Confidence > best {
			best = p.Confidence
		}
	}
	return best
}

func sortedCodes(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for code := range set {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
