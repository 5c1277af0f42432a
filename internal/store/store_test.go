package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gapmapdev/gapmap/internal/profile"
	"github.com/gapmapdev/gapmap/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileRepo_LoadCurrentEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()

	_, err := repo.LoadCurrent(context.Background(), "nobody")
	if !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestProfileRepo_VersionChain(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	v1 := &profile.Profile{
		LearnerID:  "learner-1",
		Version:    1,
		Tested:     []string{"B2.1.1.1"},
		Gap:        []string{"B2.1.1.1"},
		PrimaryGap: "B2.1.1.1",
		Confidence: 0.8,
		Source:     profile.SourceExerciseBook,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := repo.SaveAsCurrent(ctx, v1, 0); err != nil {
		t.Fatalf("save v1: %v", err)
	}

	v2 := &profile.Profile{
		LearnerID:  "learner-1",
		Version:    2,
		Tested:     []string{"B2.1.1.1"},
		Mastered:   []string{"B2.1.1.1"},
		Confidence: 0.85,
		Source:     profile.SourceSession,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := repo.SaveAsCurrent(ctx, v2, 1); err != nil {
		t.Fatalf("save v2: %v", err)
	}

	cur, err := repo.LoadCurrent(ctx, "learner-1")
	if err != nil {
		t.Fatalf("load current: %v", err)
	}
	if cur.Version != 2 || cur.Source != profile.SourceSession {
		t.Fatalf("expected v2 from session, got %+v", cur)
	}
	if len(cur.Mastered) != 1 || cur.Mastered[0] != "B2.1.1.1" {
		t.Fatalf("unexpected mastered set: %v", cur.Mastered)
	}

	// Superseded versions are retained for audit.
	history, err := repo.History(ctx, "learner-1", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 || history[0].Version != 2 || history[1].Version != 1 {
		t.Fatalf("unexpected history: %+v", history)
	}
}

func TestProfileRepo_VersionConflict(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	base := &profile.Profile{
		LearnerID: "learner-2",
		Version:   1,
		Source:    profile.SourceSession,
		UpdatedAt: time.Now().UTC(),
	}
	if err := repo.SaveAsCurrent(ctx, base, 0); err != nil {
		t.Fatalf("save: %v", err)
	}

	// A second writer with the same stale prior version collides on the
	// (learner_id, version) index.
	stale := &profile.Profile{
		LearnerID: "learner-2",
		Version:   1,
		Source:    profile.SourceObservation,
		UpdatedAt: time.Now().UTC(),
	}
	err := repo.SaveAsCurrent(ctx, stale, 0)
	if !errors.Is(err, profile.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got: %v", err)
	}

	// A version that skips ahead of the expected prior is rejected too.
	skipped := &profile.Profile{LearnerID: "learner-2", Version: 5, Source: profile.SourceSession}
	if err := repo.SaveAsCurrent(ctx, skipped, 1); err == nil {
		t.Fatal("expected error for non-consecutive version")
	}
}

func TestSessionRepo_SaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	sess := &session.Session{
		ID:           "sess-1",
		LearnerID:    "learner-3",
		EntryGrade:   4,
		Phase:        session.PhaseScreening,
		CurrentProbe: "B4.1.1.1",
		Screening:    &session.ScreeningState{Order: []string{"B4.1.1.1", "C4.1.1.1"}},
		Gap:          map[string]bool{},
		Mastered:     map[string]bool{},
		GapConfidence: map[string]float64{},
		StartedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.SaveSession(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.LoadSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.LearnerID != "learner-3" || got.Phase != session.PhaseScreening {
		t.Fatalf("unexpected session: %+v", got)
	}
	if got.CurrentProbe != "B4.1.1.1" || got.Screening == nil || len(got.Screening.Order) != 2 {
		t.Fatalf("screening state lost in round trip: %+v", got)
	}

	// Upsert: a later step replaces the stored state.
	sess.Phase = session.PhaseComplete
	sess.CurrentProbe = ""
	sess.Screening = nil
	sess.Gap = map[string]bool{"B4.1.1.1": true}
	if err := repo.SaveSession(ctx, sess); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = repo.LoadSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Phase != session.PhaseComplete || !got.Gap["B4.1.1.1"] {
		t.Fatalf("updated state not persisted: %+v", got)
	}
}

func TestSessionRepo_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.SessionRepo().LoadSession(context.Background(), "missing")
	var notFound *session.SessionNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected SessionNotFoundError, got: %v", err)
	}
}

func TestEventRepo_SequencesAcrossTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendProbeEvent(ctx, session.ProbeEvent{
		SessionID: "sess-2", LearnerID: "learner-4",
		NodeCode: "B4.1.1.1", Phase: "screening", Outcome: "incorrect", Confidence: 0.9,
	})
	if err != nil {
		t.Fatalf("append probe event: %v", err)
	}
	err = repo.AppendMergeEvent(ctx, profile.MergeEvent{
		LearnerID: "learner-4", Source: "diagnostic_session", Version: 1, GapCount: 1,
	})
	if err != nil {
		t.Fatalf("append merge event: %v", err)
	}

	probe, err := s.Client().ProbeEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query probe event: %v", err)
	}
	merge, err := s.Client().MergeEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query merge event: %v", err)
	}
	if merge.Sequence <= probe.Sequence {
		t.Fatalf("expected cross-type ordering, probe=%d merge=%d", probe.Sequence, merge.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}
