package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gapmapdev/gapmap/internal/curriculum"
)

// maxMergeRetries bounds the optimistic retry loop on version conflict.
const maxMergeRetries = 5

// Confidence blend weights: recent contributions dominate but prior
// evidence is never discarded.
const (
	incomingWeight = 0.6
	priorWeight    = 0.4
)

// Repo is the profile persistence contract.
type Repo interface {
	// LoadCurrent returns the learner's current profile, or ErrNotFound
	// when the learner has none yet.
	LoadCurrent(ctx context.Context, learnerID string) (*Profile, error)

	// SaveAsCurrent persists p as the new current version. It fails with
	// ErrVersionConflict when the stored current version is no longer
	// expectedPriorVersion; the previous version is superseded, never
	// deleted.
	SaveAsCurrent(ctx context.Context, p *Profile, expectedPriorVersion int) error
}

// MergeEvent is one merge appended to the audit event log.
type MergeEvent struct {
	LearnerID     string
	Source        string
	Version       int
	GapCount      int
	MasteredCount int
	PrimaryGap    string
	Confidence    float64
}

// EventRecorder appends merge events to the audit log. Implemented by
// the store's event repo; may be nil to disable recording.
type EventRecorder interface {
	AppendMergeEvent(ctx context.Context, ev MergeEvent) error
}

// Merger is the single write path for gap-profile mutation. Every
// observation source, the session engine included, contributes deltas
// through Merge; nothing else mutates persisted profile state.
type Merger struct {
	graph  *curriculum.Graph
	repo   Repo
	events EventRecorder
	log    *zap.Logger
}

// NewMerger creates a merge engine. events and log may be nil.
func NewMerger(graph *curriculum.Graph, repo Repo, events EventRecorder, log *zap.Logger) *Merger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Merger{graph: graph, repo: repo, events: events, log: log}
}

// Merge folds one delta into the learner's current profile and persists
// the result as a new version. Concurrent merges for the same learner
// are reconciled by an optimistic read-modify-write loop: a stale read
// is detected as a version conflict and the whole merge restarts from a
// fresh load, so no contribution is ever lost. Conflicts are only
// surfaced after the retry budget is exhausted.
func (m *Merger) Merge(ctx context.Context, learnerID string, source Source, delta Delta) (*Summary, error) {
	if err := m.validateDelta(delta); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < maxMergeRetries; attempt++ {
		summary, err := m.mergeOnce(ctx, learnerID, source, delta)
		if err == nil {
			return summary, nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
		m.log.Debug("merge conflict, retrying",
			zap.String("learner", learnerID),
			zap.Int("attempt", attempt+1))
	}
	return nil, fmt.Errorf("merge for learner %s exhausted %d retries: %w", learnerID, maxMergeRetries, lastErr)
}

// validateDelta rejects node codes not present in the graph and
// out-of-range confidence before any state is touched.
func (m *Merger) validateDelta(delta Delta) error {
	if delta.Confidence < 0 || delta.Confidence > 1 {
		return fmt.Errorf("delta confidence must be in [0, 1], got %v", delta.Confidence)
	}
	for _, codes := range [][]string{delta.Tested, delta.Gap, delta.Mastered} {
		for _, code := range codes {
			if _, err := m.graph.Node(code); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Merger) mergeOnce(ctx context.Context, learnerID string, source Source, delta Delta) (*Summary, error) {
	prior, err := m.repo.LoadCurrent(ctx, learnerID)
	fresh := false
	switch {
	case errors.Is(err, ErrNotFound):
		// First contribution for this learner: start from an empty
		// profile.
		prior = &Profile{LearnerID: learnerID}
		fresh = true
	case err != nil:
		return nil, fmt.Errorf("load current profile: %w", err)
	}

	next := m.apply(prior, source, delta, fresh)
	if err := m.repo.SaveAsCurrent(ctx, next, prior.Version); err != nil {
		return nil, err
	}

	m.recordMerge(ctx, next)
	m.log.Info("profile merged",
		zap.String("learner", learnerID),
		zap.String("source", string(source)),
		zap.Int("version", next.Version),
		zap.Int("gaps", len(next.Gap)),
		zap.String("primary_gap", next.PrimaryGap))

	summary := next.Summary()
	return &summary, nil
}

// apply computes the next profile version. Set effects are commutative
// unions; the primary gap, cascade and confidence are recomputed from
// the merged state and are last-writer-weighted.
func (m *Merger) apply(prior *Profile, source Source, delta Delta, fresh bool) *Profile {
	tested := toSet(prior.Tested)
	gap := toSet(prior.Gap)
	mastered := toSet(prior.Mastered)
	for _, c := range delta.Tested {
		tested[c] = true
	}
	for _, c := range delta.Gap {
		gap[c] = true
	}
	for _, c := range delta.Mastered {
		mastered[c] = true
	}

	// Mastery wins: evidence of mastery from any source permanently
	// clears a node from the gap set.
	for code := range mastered {
		delete(gap, code)
	}

	next := &Profile{
		LearnerID: prior.LearnerID,
		Version:   prior.Version + 1,
		Tested:    fromSet(tested),
		Gap:       fromSet(gap),
		Mastered:  fromSet(mastered),
		Source:    source,
		UpdatedAt: time.Now().UTC(),
	}
	next.PrimaryGap = m.primaryGap(gap)
	if match, ok := m.graph.FindCascadePath(gap); ok {
		next.CascadeLabel = match.Label
	}
	if fresh {
		next.Confidence = delta.Confidence
	} else {
		next.Confidence = incomingWeight*delta.Confidence + priorWeight*prior.Confidence
	}
	return next
}

// primaryGap selects the most foundational node of the gap set: the one
// with the smallest ancestry depth, ties broken by highest severity,
// then lowest code.
func (m *Merger) primaryGap(gap map[string]bool) string {
	best := ""
	bestDepth := 0
	var bestSeverity float64

	for code := range gap {
		depth, err := m.graph.AncestryDepth(code)
		if err != nil {
			continue
		}
		node, err := m.graph.Node(code)
		if err != nil {
			continue
		}

		if best == "" {
			best, bestDepth, bestSeverity = code, depth, node.Severity
			continue
		}
		switch {
		case depth < bestDepth:
			best, bestDepth, bestSeverity = code, depth, node.Severity
		case depth == bestDepth && node.Severity > bestSeverity:
			best, bestDepth, bestSeverity = code, depth, node.Severity
		case depth == bestDepth && node.Severity == bestSeverity && code < best:
			best = code
		}
	}
	return best
}

// recordMerge appends the merge to the audit log; failures are logged,
// never surfaced.
func (m *Merger) recordMerge(ctx context.Context, p *Profile) {
	if m.events == nil {
		return
	}
	ev := MergeEvent{
		LearnerID:     p.LearnerID,
		Source:        string(p.Source),
		Version:       p.Version,
		GapCount:      len(p.Gap),
		MasteredCount: len(p.Mastered),
		PrimaryGap:    p.PrimaryGap,
		Confidence:    p.Confidence,
	}
	if err := m.events.AppendMergeEvent(ctx, ev); err != nil {
		m.log.Warn("failed to record merge event", zap.Error(err))
	}
}
