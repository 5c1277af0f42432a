package store

import (
	"context"
	"fmt"

	"github.com/gapmapdev/gapmap/ent"
	"github.com/gapmapdev/gapmap/internal/classify"
	"github.com/gapmapdev/gapmap/internal/profile"
	"github.com/gapmapdev/gapmap/internal/session"
)

// EventRepo is the append-only audit log, backed by ent and the global
// sequence counter. It satisfies the recorder interfaces of the session
// engine, the profile merger and the classifier middleware.
type EventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// AppendProbeEvent records one probe submitted to a session.
func (r *EventRepo) AppendProbeEvent(ctx context.Context, ev session.ProbeEvent) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ProbeEvent.Create().
		SetSequence(seqNum).
		SetSessionID(ev.SessionID).
		SetLearnerID(ev.LearnerID).
		SetNodeCode(ev.NodeCode).
		SetPhase(ev.Phase).
		SetOutcome(ev.Outcome).
		SetConfidence(ev.Confidence).
		SetMisconception(ev.Misconception).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save probe event: %w", err)
	}
	return nil
}

// AppendMergeEvent records one profile merge.
func (r *EventRepo) AppendMergeEvent(ctx context.Context, ev profile.MergeEvent) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.MergeEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(ev.LearnerID).
		SetSource(ev.Source).
		SetVersion(ev.Version).
		SetGapCount(ev.GapCount).
		SetMasteredCount(ev.MasteredCount).
		SetPrimaryGap(ev.PrimaryGap).
		SetConfidence(ev.Confidence).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save merge event: %w", err)
	}
	return nil
}

// AppendClassifierRequest records one response-classifier call.
func (r *EventRepo) AppendClassifierRequest(ctx context.Context, rec classify.RequestRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ClassifierRequestEvent.Create().
		SetSequence(seqNum).
		SetModel(rec.Model).
		SetNodeCode(rec.NodeCode).
		SetLatencyMs(rec.LatencyMs).
		SetSuccess(rec.Success).
		SetErrorMessage(rec.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save classifier request event: %w", err)
	}
	return nil
}
