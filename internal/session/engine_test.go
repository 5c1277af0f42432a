package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/gapmapdev/gapmap/internal/classify"
	"github.com/gapmapdev/gapmap/internal/curriculum"
)

// memRepo is an in-memory Repo. Sessions round-trip through JSON on
// save so the tests also exercise serializability, the same contract
// the real store relies on.
type memRepo struct {
	mu       sync.Mutex
	sessions map[string][]byte
}

func newMemRepo() *memRepo {
	return &memRepo{sessions: make(map[string][]byte)}
}

func (r *memRepo) SaveSession(_ context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = data
	return nil
}

func (r *memRepo) LoadSession(_ context.Context, id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, ok := r.sessions[id]
	if !ok {
		return nil, &SessionNotFoundError{ID: id}
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func testGraph(t *testing.T) *curriculum.Graph {
	t.Helper()

	nodes := []curriculum.Node{
		{Code: "B1.1.1.1", Grade: 1, Severity: 0.9},
		{Code: "B2.1.1.1", Grade: 2, Severity: 0.8,
			Misconceptions: []curriculum.Misconception{{Code: "M-REGROUP", Description: "Fails to regroup"}}},
		{Code: "B4.1.1.1", Grade: 4, Severity: 0.7},
		{Code: "C1.1.1.1", Grade: 1, Severity: 0.6},
		{Code: "C2.1.1.1", Grade: 2, Severity: 0.5},
		{Code: "C4.1.1.1", Grade: 4, Severity: 0.5},
	}
	edges := []curriculum.Edge{
		{Source: "B1.1.1.1", Target: "B2.1.1.1", Kind: curriculum.RelationRequires},
		{Source: "B2.1.1.1", Target: "B4.1.1.1", Kind: curriculum.RelationRequires},
		{Source: "C1.1.1.1", Target: "C2.1.1.1", Kind: curriculum.RelationRequires},
		{Source: "C2.1.1.1", Target: "C4.1.1.1", Kind: curriculum.RelationRequires},
	}
	cascades := []curriculum.Cascade{
		{Label: "Place Value Collapse", Nodes: []string{"B1.1.1.1", "B2.1.1.1", "B4.1.1.1"}},
		{Label: "Fraction Fog", Nodes: []string{"B1.1.1.1", "B2.1.1.1", "C2.1.1.1", "C4.1.1.1"}},
	}
	screening := []curriculum.ScreeningList{
		{Grade: 4, Nodes: []string{"B4.1.1.1", "C4.1.1.1"}},
		{Grade: 2, Nodes: []string{"B2.1.1.1", "C2.1.1.1"}},
	}

	g, err := curriculum.New(nodes, edges, cascades, screening)
	if err != nil {
		t.Fatalf("building test graph: %v", err)
	}
	return g
}

func newTestEngine(t *testing.T, mock *classify.MockClassifier, cfg Config) (*Engine, *memRepo) {
	t.Helper()
	repo := newMemRepo()
	return NewEngine(testGraph(t), mock, repo, nil, nil, cfg), repo
}

func TestEngine_ScreeningToTraceScenario(t *testing.T) {
	mock := classify.NewMockClassifier()
	mock.ScriptIncorrect("B4.1.1.1", 0.9)
	mock.ScriptIncorrect("B2.1.1.1", 0.9)
	mock.ScriptCorrect("B1.1.1.1", 0.95)
	engine, _ := newTestEngine(t, mock, DefaultConfig())
	ctx := context.Background()

	res, err := engine.CreateSession(ctx, "learner-1", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Phase != PhaseScreening || res.NextProbe == nil || res.NextProbe.NodeCode != "B4.1.1.1" {
		t.Fatalf("expected first screening probe B4.1.1.1, got %+v", res)
	}

	// Decisive gap at B4.1.1.1 anchors a backward trace, nearest
	// ancestor first.
	res, err = engine.SubmitProbeResponse(ctx, res.SessionID, "q1", "wrong")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Phase != PhaseBackwardTrace || res.NextProbe.NodeCode != "B2.1.1.1" {
		t.Fatalf("expected trace probe B2.1.1.1, got %+v", res)
	}

	res, err = engine.SubmitProbeResponse(ctx, res.SessionID, "q2", "wrong")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Phase != PhaseBackwardTrace || res.NextProbe.NodeCode != "B1.1.1.1" {
		t.Fatalf("expected trace probe B1.1.1.1, got %+v", res)
	}

	// Mastered ancestor ends the trace; a single plausible cascade
	// means no cross-check is needed.
	res, err = engine.SubmitProbeResponse(ctx, res.SessionID, "q3", "right")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Phase != PhaseComplete || res.Delta == nil {
		t.Fatalf("expected completion with delta, got %+v", res)
	}

	d := res.Delta
	wantGap := []string{"B2.1.1.1", "B4.1.1.1"}
	if len(d.Gap) != 2 || d.Gap[0] != wantGap[0] || d.Gap[1] != wantGap[1] {
		t.Fatalf("expected gap %v, got %v", wantGap, d.Gap)
	}
	if len(d.Mastered) != 1 || d.Mastered[0] != "B1.1.1.1" {
		t.Fatalf("expected mastered [B1.1.1.1], got %v", d.Mastered)
	}
	if len(d.Tested) != 3 {
		t.Fatalf("expected 3 tested nodes, got %v", d.Tested)
	}
	if d.PrimaryGap != "B2.1.1.1" {
		t.Fatalf("expected primary gap B2.1.1.1, got %q", d.PrimaryGap)
	}
	if d.Confidence != 0.9 {
		t.Fatalf("expected confidence 0.9, got %v", d.Confidence)
	}
	if d.CascadeLabel != "Place Value Collapse" {
		t.Fatalf("expected cascade 'Place Value Collapse', got %q", d.CascadeLabel)
	}
}

func TestEngine_NoGapsCompletesAfterScreening(t *testing.T) {
	mock := classify.NewMockClassifier()
	mock.ScriptCorrect("B4.1.1.1", 0.9)
	mock.ScriptCorrect("C4.1.1.1", 0.85)
	engine, _ := newTestEngine(t, mock, DefaultConfig())
	ctx := context.Background()

	res, err := engine.CreateSession(ctx, "learner-2", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err = engine.SubmitProbeResponse(ctx, res.SessionID, "q", "right")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Phase != PhaseScreening || res.NextProbe.NodeCode != "C4.1.1.1" {
		t.Fatalf("expected screening to continue at C4.1.1.1, got %+v", res)
	}

	res, err = engine.SubmitProbeResponse(ctx, res.SessionID, "q", "right")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Phase != PhaseComplete {
		t.Fatalf("expected completion, got %+v", res)
	}
	if len(res.Delta.Gap) != 0 || res.Delta.PrimaryGap != "" || res.Delta.CascadeLabel != "" {
		t.Fatalf("expected gap-free delta, got %+v", res.Delta)
	}
	if len(res.Delta.Mastered) != 2 {
		t.Fatalf("expected 2 mastered nodes, got %v", res.Delta.Mastered)
	}
	if res.Delta.Confidence != 0.9 {
		t.Fatalf("expected fallback confidence 0.9, got %v", res.Delta.Confidence)
	}
}

func TestEngine_NonDecisiveScreeningAdvancesAfterTwoProbes(t *testing.T) {
	mock := classify.NewMockClassifier()
	mock.ScriptIncorrect("B4.1.1.1", 0.4)
	mock.ScriptIncorrect("B4.1.1.1", 0.5)
	mock.ScriptCorrect("C4.1.1.1", 0.9)
	engine, _ := newTestEngine(t, mock, DefaultConfig())
	ctx := context.Background()

	res, _ := engine.CreateSession(ctx, "learner-3", 4)

	// First below-threshold incorrect: re-probe the same node.
	res, err := engine.SubmitProbeResponse(ctx, res.SessionID, "q", "hmm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.NextProbe.NodeCode != "B4.1.1.1" {
		t.Fatalf("expected re-probe of B4.1.1.1, got %+v", res)
	}

	// Second non-decisive probe: tested-only, screening advances.
	res, err = engine.SubmitProbeResponse(ctx, res.SessionID, "q", "hmm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.NextProbe.NodeCode != "C4.1.1.1" {
		t.Fatalf("expected advance to C4.1.1.1, got %+v", res)
	}

	res, err = engine.SubmitProbeResponse(ctx, res.SessionID, "q", "right")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Phase != PhaseComplete {
		t.Fatalf("expected completion, got %+v", res)
	}
	if len(res.Delta.Gap) != 0 {
		t.Fatalf("expected no gaps, got %v", res.Delta.Gap)
	}
	if len(res.Delta.Tested) != 2 {
		t.Fatalf("expected B4.1.1.1 and C4.1.1.1 tested, got %v", res.Delta.Tested)
	}
}

func TestEngine_ClassifierFailureRecordsInconclusive(t *testing.T) {
	// Empty mock: every call fails with ErrUnavailable.
	mock := classify.NewMockClassifier()
	engine, repo := newTestEngine(t, mock, DefaultConfig())
	ctx := context.Background()

	res, _ := engine.CreateSession(ctx, "learner-4", 4)
	res, err := engine.SubmitProbeResponse(ctx, res.SessionID, "q", "?")
	if err != nil {
		t.Fatalf("session must survive classifier failure, got: %v", err)
	}
	if res.NextProbe == nil || res.NextProbe.NodeCode != "B4.1.1.1" {
		t.Fatalf("expected re-probe after inconclusive, got %+v", res)
	}

	s, err := repo.LoadSession(ctx, res.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Probes) != 1 || s.Probes[0].Outcome != OutcomeInconclusive {
		t.Fatalf("expected one inconclusive probe, got %+v", s.Probes)
	}
	if len(s.Gap) != 0 || len(s.Mastered) != 0 {
		t.Fatal("inconclusive probes must contribute no evidence")
	}
}

func TestEngine_ProbeCapFinalizes(t *testing.T) {
	mock := classify.NewMockClassifier() // always unavailable -> inconclusive
	cfg := DefaultConfig()
	cfg.MaxProbes = 2
	engine, _ := newTestEngine(t, mock, cfg)
	ctx := context.Background()

	res, _ := engine.CreateSession(ctx, "learner-5", 4)
	res, err := engine.SubmitProbeResponse(ctx, res.SessionID, "q", "?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err = engine.SubmitProbeResponse(ctx, res.SessionID, "q", "?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Phase != PhaseComplete || res.Delta == nil {
		t.Fatalf("expected degraded completion at probe cap, got %+v", res)
	}
	if len(res.Delta.Tested) != 1 || res.Delta.Tested[0] != "B4.1.1.1" {
		t.Fatalf("expected tested [B4.1.1.1], got %v", res.Delta.Tested)
	}

	// Terminal session accepts no further probes.
	_, err = engine.SubmitProbeResponse(ctx, res.SessionID, "q", "?")
	var invState *InvalidSessionStateError
	if !errors.As(err, &invState) {
		t.Fatalf("expected InvalidSessionStateError, got: %v", err)
	}
}

func TestEngine_ProbeCapNeverExceeded(t *testing.T) {
	mock := classify.NewMockClassifier()
	engine, repo := newTestEngine(t, mock, DefaultConfig())
	ctx := context.Background()

	res, _ := engine.CreateSession(ctx, "learner-6", 4)
	id := res.SessionID
	for i := 0; i < 20; i++ {
		res, _ = engine.SubmitProbeResponse(ctx, id, "q", "?")
		if res == nil {
			break
		}
	}

	s, err := repo.LoadSession(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Probes) > DefaultConfig().MaxProbes {
		t.Fatalf("session exceeded probe cap: %d probes", len(s.Probes))
	}
	if !s.Phase.Terminal() {
		t.Fatalf("expected terminal phase, got %s", s.Phase)
	}
}

func TestEngine_CrossCheckDisambiguatesCascades(t *testing.T) {
	mock := classify.NewMockClassifier()
	mock.ScriptIncorrect("B4.1.1.1", 0.9)
	mock.ScriptIncorrect("B2.1.1.1", 0.85)
	mock.ScriptIncorrect("B1.1.1.1", 0.8)
	mock.ScriptIncorrect("C2.1.1.1", 0.9)
	engine, _ := newTestEngine(t, mock, DefaultConfig())
	ctx := context.Background()

	res, _ := engine.CreateSession(ctx, "learner-7", 4)
	res, err := engine.SubmitProbeResponse(ctx, res.SessionID, "q", "w") // B4 gap -> trace
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err = engine.SubmitProbeResponse(ctx, res.SessionID, "q", "w") // B2 gap
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err = engine.SubmitProbeResponse(ctx, res.SessionID, "q", "w") // B1 gap, trace exhausted
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Gaps {B1,B2,B4} make both cascades plausible: cross-check probes
	// an untested node from the alternative cascade.
	if res.Phase != PhaseCrossCheck || res.NextProbe.NodeCode != "C2.1.1.1" {
		t.Fatalf("expected cross-check probe C2.1.1.1, got %+v", res)
	}

	res, err = engine.SubmitProbeResponse(ctx, res.SessionID, "q", "w")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Phase != PhaseComplete {
		t.Fatalf("expected completion after cross-check, got %+v", res)
	}
	if res.Delta.PrimaryGap != "B1.1.1.1" {
		t.Fatalf("expected deepest trace gap B1.1.1.1 as primary, got %q", res.Delta.PrimaryGap)
	}
	// Tie on overlap resolves by declaration order.
	if res.Delta.CascadeLabel != "Place Value Collapse" {
		t.Fatalf("expected 'Place Value Collapse', got %q", res.Delta.CascadeLabel)
	}
	if len(res.Delta.Gap) != 4 {
		t.Fatalf("expected 4 gaps, got %v", res.Delta.Gap)
	}
}

func TestEngine_AbandonYieldsPartialDelta(t *testing.T) {
	mock := classify.NewMockClassifier()
	mock.ScriptIncorrect("B4.1.1.1", 0.9)
	engine, _ := newTestEngine(t, mock, DefaultConfig())
	ctx := context.Background()

	res, _ := engine.CreateSession(ctx, "learner-8", 4)
	res, err := engine.SubmitProbeResponse(ctx, res.SessionID, "q", "w")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, err := engine.Abandon(ctx, res.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Phase != PhaseAbandoned {
		t.Fatalf("expected abandoned phase, got %s", s.Phase)
	}

	// Partial evidence survives abandonment.
	d, err := s.Delta()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Gap) != 1 || d.Gap[0] != "B4.1.1.1" {
		t.Fatalf("expected gap [B4.1.1.1], got %v", d.Gap)
	}

	if _, err := engine.Abandon(ctx, s.ID); err == nil {
		t.Fatal("expected error abandoning a terminal session")
	}
	if _, err := engine.SubmitProbeResponse(ctx, s.ID, "q", "w"); err == nil {
		t.Fatal("expected error probing an abandoned session")
	}
}

func TestEngine_DeltaOnLiveSessionRejected(t *testing.T) {
	mock := classify.NewMockClassifier()
	engine, repo := newTestEngine(t, mock, DefaultConfig())
	ctx := context.Background()

	res, _ := engine.CreateSession(ctx, "learner-9", 4)
	s, err := repo.LoadSession(ctx, res.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Delta(); err == nil {
		t.Fatal("expected error extracting delta from a live session")
	}
}

func TestEngine_UnknownSession(t *testing.T) {
	mock := classify.NewMockClassifier()
	engine, _ := newTestEngine(t, mock, DefaultConfig())

	_, err := engine.SubmitProbeResponse(context.Background(), "no-such-id", "q", "a")
	var notFound *SessionNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected SessionNotFoundError, got: %v", err)
	}
}

func TestEngine_ScreeningGradeFallback(t *testing.T) {
	mock := classify.NewMockClassifier()
	engine, _ := newTestEngine(t, mock, DefaultConfig())

	// Grade 3 has no declared list; the nearest lower grade's is used.
	res, err := engine.CreateSession(context.Background(), "learner-10", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.NextProbe.NodeCode != "B2.1.1.1" {
		t.Fatalf("expected grade-2 list to apply, got %+v", res)
	}

	if _, err := engine.CreateSession(context.Background(), "learner-11", 0); err == nil {
		t.Fatal("expected error when no screening list applies")
	}
}
