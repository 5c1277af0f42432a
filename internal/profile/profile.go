package profile

import (
	"sort"
	"time"
)

// Source identifies the observation channel that produced a delta.
type Source string

const (
	SourceSession      Source = "diagnostic_session"
	SourceExerciseBook Source = "exercise_book"
	SourceObservation  Source = "teacher_observation"
	SourceEngagement   Source = "engagement_signal"
)

// Delta is one incremental contribution of evidence about a learner,
// produced by any observation source (a finished diagnostic session, an
// exercise-book analysis, a teacher observation). Sources only ever
// produce deltas; only the Merger mutates persisted profile state.
type Delta struct {
	// Tested lists every node the source gathered evidence on.
	Tested []string `json:"tested"`

	// Gap lists nodes the source judged as skill gaps.
	Gap []string `json:"gap"`

	// Mastered lists nodes the source judged as mastered.
	Mastered []string `json:"mastered"`

	// PrimaryGap is the source's own view of the root gap. Advisory:
	// the Merger recomputes the primary gap from the merged gap set.
	PrimaryGap string `json:"primary_gap,omitempty"`

	// CascadeLabel is the source's matched cascade, if any. Advisory,
	// recomputed on merge like PrimaryGap.
	CascadeLabel string `json:"cascade_label,omitempty"`

	// Confidence is the source's certainty in this delta, in [0, 1].
	Confidence float64 `json:"confidence"`
}

// Profile is the single current, multi-source-merged record of a
// learner's tested/mastered/gap nodes. At most one profile per learner
// is current at any time; every merge supersedes the previous version
// (old versions are retained for audit, never deleted).
type Profile struct {
	LearnerID string `json:"learner_id"`

	// Version increases by one on every merge. Version 0 means the
	// profile has never been persisted.
	Version int `json:"version"`

	// Tested, Gap and Mastered are sorted node-code sets. The invariant
	// gap ∩ mastered = ∅ holds after every merge.
	Tested   []string `json:"tested"`
	Gap      []string `json:"gap"`
	Mastered []string `json:"mastered"`

	// PrimaryGap is the most foundational unresolved gap node, or empty
	// when the gap set is empty.
	PrimaryGap string `json:"primary_gap,omitempty"`

	// CascadeLabel names the matched systemic failure pattern, if any.
	CascadeLabel string `json:"cascade_label,omitempty"`

	// Confidence is the aggregate confidence in [0, 1], weighted toward
	// the most recent contribution.
	Confidence float64 `json:"confidence"`

	// Source tags the most recent contributing observation channel.
	Source Source `json:"source"`

	UpdatedAt time.Time `json:"updated_at"`
}

// Summary is the caller-facing digest of a profile after a merge.
type Summary struct {
	LearnerID     string    `json:"learner_id"`
	Version       int       `json:"version"`
	TestedCount   int       `json:"tested_count"`
	GapCount      int       `json:"gap_count"`
	MasteredCount int       `json:"mastered_count"`
	PrimaryGap    string    `json:"primary_gap,omitempty"`
	CascadeLabel  string    `json:"cascade_label,omitempty"`
	Confidence    float64   `json:"confidence"`
	Source        Source    `json:"source"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Summary returns the digest of the profile.
func (p *Profile) Summary() Summary {
	return Summary{
		LearnerID:     p.LearnerID,
		Version:       p.Version,
		TestedCount:   len(p.Tested),
		GapCount:      len(p.Gap),
		MasteredCount: len(p.Mastered),
		PrimaryGap:    p.PrimaryGap,
		CascadeLabel:  p.CascadeLabel,
		Confidence:    p.Confidence,
		Source:        p.Source,
		UpdatedAt:     p.UpdatedAt,
	}
}

// toSet converts a code slice to a set.
func toSet(codes []string) map[string]bool {
	s := make(map[string]bool, len(codes))
	for _, c := range codes {
		s[c] = true
	}
	return s
}

// fromSet converts a set back to a sorted code slice.
func fromSet(s map[string]bool) []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
