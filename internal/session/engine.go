package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gapmapdev/gapmap/internal/classify"
	"github.com/gapmapdev/gapmap/internal/curriculum"
	"github.com/gapmapdev/gapmap/internal/profile"
)

// Repo persists sessions. Implemented by the store; LoadSession returns
// a SessionNotFoundError for unknown ids.
type Repo interface {
	SaveSession(ctx context.Context, s *Session) error
	LoadSession(ctx context.Context, id string) (*Session, error)
}

// ProbeEvent is one probe appended to the audit event log.
type ProbeEvent struct {
	SessionID     string
	LearnerID     string
	NodeCode      string
	Phase         string
	Outcome       string
	Confidence    float64
	Misconception string
}

// EventRecorder appends probe events to the audit log. Implemented by
// the store's event repo; may be nil to disable recording.
type EventRecorder interface {
	AppendProbeEvent(ctx context.Context, ev ProbeEvent) error
}

// Probe identifies the next node the caller should question the learner
// on. Question generation and delivery live outside this engine.
type Probe struct {
	NodeCode string
	Grade    int
	Phase    Phase
}

// StepResult is the outcome of one engine step: either the next probe
// to pose, or the emitted delta when the session completed.
type StepResult struct {
	SessionID string
	Phase     Phase
	NextProbe *Probe
	Delta     *profile.Delta
}

// Engine drives diagnostic sessions through their state machine. The
// graph, classifier and repo are injected; the engine holds no learner
// state of its own beyond the per-session locks.
type Engine struct {
	graph      *curriculum.Graph
	classifier classify.Classifier
	repo       Repo
	events     EventRecorder
	log        *zap.Logger
	cfg        Config
	locks      keyedMutex
}

// NewEngine creates a session engine. events and log may be nil.
func NewEngine(graph *curriculum.Graph, classifier classify.Classifier, repo Repo, events EventRecorder, log *zap.Logger, cfg Config) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		graph:      graph,
		classifier: classifier,
		repo:       repo,
		events:     events,
		log:        log,
		cfg:        cfg,
	}
}

// CreateSession starts a diagnostic session for a learner entering at
// the given grade. The session moves straight into screening and the
// result carries the first node to probe.
func (e *Engine) CreateSession(ctx context.Context, learnerID string, entryGrade int) (*StepResult, error) {
	order, err := e.graph.PriorityScreeningOrder(entryGrade)
	if err != nil {
		return nil, fmt.Errorf("start session for grade %d: %w", entryGrade, err)
	}

	now := time.Now().UTC()
	s := &Session{
		ID:            uuid.NewString(),
		LearnerID:     learnerID,
		EntryGrade:    entryGrade,
		Phase:         PhaseScreening,
		CurrentProbe:  order[0],
		Screening:     &ScreeningState{Order: order},
		Gap:           make(map[string]bool),
		Mastered:      make(map[string]bool),
		GapConfidence: make(map[string]float64),
		StartedAt:     now,
		UpdatedAt:     now,
	}

	if err := e.repo.SaveSession(ctx, s); err != nil {
		return nil, fmt.Errorf("persist new session: %w", err)
	}

	e.log.Info("session created",
		zap.String("session", s.ID),
		zap.String("learner", learnerID),
		zap.Int("entry_grade", entryGrade),
		zap.Int("screening_nodes", len(order)))

	return e.stepResult(s)
}

// SubmitProbeResponse feeds the learner's raw response to the
// outstanding probe through the classifier and advances the state
// machine. The updated session is persisted before returning, so a
// crash between steps resumes at the outstanding probe. Steps for the
// same session are serialized; other sessions proceed independently.
func (e *Engine) SubmitProbeResponse(ctx context.Context, sessionID, questionContext, rawResponse string) (*StepResult, error) {
	unlock := e.locks.lock(sessionID)
	defer unlock()

	s, err := e.repo.LoadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if s.Phase.Terminal() || s.CurrentProbe == "" {
		return nil, &InvalidSessionStateError{ID: s.ID, Phase: s.Phase}
	}

	rec, err := e.classifyProbe(ctx, s, questionContext, rawResponse)
	if err != nil {
		return nil, err
	}

	s.Probes = append(s.Probes, rec)
	e.advance(s, rec)

	// Hard stop: the probe cap finalizes the session with whatever was
	// collected. Degraded but valid.
	if !s.Phase.Terminal() && len(s.Probes) >= e.cfg.MaxProbes {
		e.log.Warn("probe cap reached, finalizing session",
			zap.String("session", s.ID),
			zap.Int("probes", len(s.Probes)))
		e.finalize(s)
	}

	s.UpdatedAt = time.Now().UTC()
	if err := e.repo.SaveSession(ctx, s); err != nil {
		return nil, fmt.Errorf("persist session step: %w", err)
	}
	e.recordProbe(ctx, s, rec)

	return e.stepResult(s)
}

// Abandon terminates a live session on an external timeout signal.
// Already-persisted probe results remain valid partial evidence; the
// session's Delta stays available to the caller.
func (e *Engine) Abandon(ctx context.Context, sessionID string) (*Session, error) {
	unlock := e.locks.lock(sessionID)
	defer unlock()

	s, err := e.repo.LoadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if s.Phase.Terminal() {
		return nil, &InvalidSessionStateError{ID: s.ID, Phase: s.Phase}
	}

	s.Phase = PhaseAbandoned
	s.CurrentProbe = ""
	s.Screening, s.Trace, s.CrossCheck = nil, nil, nil
	if match, ok := e.graph.FindCascadePath(s.Gap); ok {
		s.CascadeLabel = match.Label
	}
	s.UpdatedAt = time.Now().UTC()

	if err := e.repo.SaveSession(ctx, s); err != nil {
		return nil, fmt.Errorf("persist abandoned session: %w", err)
	}

	e.log.Info("session abandoned",
		zap.String("session", s.ID),
		zap.Int("probes", len(s.Probes)))
	return s, nil
}

// GetSession loads a session by id.
func (e *Engine) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	return e.repo.LoadSession(ctx, sessionID)
}

// classifyProbe runs the outstanding probe's response through the
// classifier. Exhausted classifier retries degrade to an inconclusive
// record rather than failing the session; context cancellation
// propagates.
func (e *Engine) classifyProbe(ctx context.Context, s *Session, questionContext, rawResponse string) (ProbeRecord, error) {
	rec := ProbeRecord{
		NodeCode:    s.CurrentProbe,
		Phase:       s.Phase,
		RawResponse: rawResponse,
		At:          time.Now().UTC(),
	}

	node, err := e.graph.Node(s.CurrentProbe)
	if err != nil {
		return rec, err
	}
	candidates := make([]classify.Candidate, 0, len(node.Misconceptions))
	for _, m := range node.Misconceptions {
		candidates = append(candidates, classify.Candidate{Code: m.Code, Description: m.Description})
	}

	res, err := e.classifier.Classify(ctx, classify.Request{
		NodeCode:        s.CurrentProbe,
		QuestionContext: questionContext,
		RawResponse:     rawResponse,
		Candidates:      candidates,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return rec, err
		}
		e.log.Warn("classification unavailable, recording inconclusive probe",
			zap.String("session", s.ID),
			zap.String("node", s.CurrentProbe),
			zap.Error(err))
		rec.Outcome = OutcomeInconclusive
		return rec, nil
	}

	if res.Correct {
		rec.Outcome = OutcomeCorrect
	} else {
		rec.Outcome = OutcomeIncorrect
	}
	rec.Confidence = res.Confidence
	rec.Misconception = res.MisconceptionCode
	return rec, nil
}

// advance applies one classified probe to the state machine.
func (e *Engine) advance(s *Session, rec ProbeRecord) {
	switch s.Phase {
	case PhaseScreening:
		e.advanceScreening(s, rec)
	case PhaseBackwardTrace:
		e.advanceTrace(s, rec)
	case PhaseCrossCheck:
		e.advanceCrossCheck(s, rec)
	}
}

func (e *Engine) advanceScreening(s *Session, rec ProbeRecord) {
	switch {
	case rec.Outcome == OutcomeCorrect:
		s.Mastered[rec.NodeCode] = true
		e.nextScreeningNode(s)

	case rec.Outcome == OutcomeIncorrect && rec.Confidence >= e.cfg.GapConfidenceThreshold:
		s.Gap[rec.NodeCode] = true
		s.GapConfidence[rec.NodeCode] = rec.Confidence
		s.PrimaryGap = rec.NodeCode
		e.startTrace(s, rec.NodeCode)

	default:
		// Inconclusive or below-threshold incorrect: spend another probe
		// on the node, then record it tested-only and move on.
		s.Screening.ProbesAtNode++
		if s.Screening.ProbesAtNode >= e.cfg.ProbesPerScreeningNode {
			e.nextScreeningNode(s)
		}
	}
}

func (e *Engine) nextScreeningNode(s *Session) {
	sc := s.Screening
	sc.Index++
	sc.ProbesAtNode = 0
	if sc.Index < len(sc.Order) {
		s.CurrentProbe = sc.Order[sc.Index]
		return
	}

	s.Screening = nil
	if len(s.Gap) > 0 {
		e.startCrossCheck(s)
		return
	}
	e.finalize(s)
}

// startTrace anchors a backward trace at a freshly detected gap and
// queues the anchor's ancestors nearest-first.
func (e *Engine) startTrace(s *Session, anchor string) {
	s.Screening = nil

	path, err := e.graph.BackwardTrace(anchor, e.cfg.TraceDepth)
	if err != nil || len(path) < 2 {
		// No ancestors to probe: the anchor is its own deepest gap.
		e.startCrossCheck(s)
		return
	}

	ancestors := make([]string, 0, len(path)-1)
	for i := len(path) - 2; i >= 0; i-- {
		ancestors = append(ancestors, path[i])
	}

	s.Phase = PhaseBackwardTrace
	s.Trace = &TraceState{Anchor: anchor, Ancestors: ancestors}
	s.CurrentProbe = ancestors[0]
}

func (e *Engine) advanceTrace(s *Session, rec ProbeRecord) {
	switch {
	case rec.Outcome == OutcomeCorrect:
		// First mastered ancestor is the anchor of competence; the trace
		// need not go deeper.
		s.Mastered[rec.NodeCode] = true
		s.Trace = nil
		e.startCrossCheck(s)
		return

	case rec.Outcome == OutcomeIncorrect && rec.Confidence >= e.cfg.GapConfidenceThreshold:
		s.Gap[rec.NodeCode] = true
		s.GapConfidence[rec.NodeCode] = rec.Confidence
		// Each deeper decisive gap supersedes the previous primary.
		s.PrimaryGap = rec.NodeCode
	}

	// Decisive gap, below-threshold incorrect and inconclusive all keep
	// walking deeper.
	s.Trace.Index++
	if s.Trace.Index < len(s.Trace.Ancestors) {
		s.CurrentProbe = s.Trace.Ancestors[s.Trace.Index]
		return
	}

	s.Trace = nil
	e.startCrossCheck(s)
}

// startCrossCheck probes one extra node from an alternative cascade when
// more than one cascade is plausible for the gaps found so far;
// otherwise it finalizes directly.
func (e *Engine) startCrossCheck(s *Session) {
	plausible := e.graph.PlausibleCascades(s.Gap)
	if len(plausible) < 2 {
		e.finalize(s)
		return
	}

	tested := s.TestedSet()
	for _, c := range plausible[1:] {
		for _, code := range e.graph.CascadeNodes(c.Label) {
			if !tested[code] {
				s.Phase = PhaseCrossCheck
				s.CrossCheck = &CrossCheckState{Node: code, AgainstCascade: c.Label}
				s.CurrentProbe = code
				return
			}
		}
	}

	// Every node of every plausible cascade was already probed; nothing
	// left to disambiguate with.
	e.finalize(s)
}

func (e *Engine) advanceCrossCheck(s *Session, rec ProbeRecord) {
	switch {
	case rec.Outcome == OutcomeCorrect:
		s.Mastered[rec.NodeCode] = true
	case rec.Outcome == OutcomeIncorrect && rec.Confidence >= e.cfg.GapConfidenceThreshold:
		s.Gap[rec.NodeCode] = true
		s.GapConfidence[rec.NodeCode] = rec.Confidence
	}

	s.CrossCheck = nil
	e.finalize(s)
}

// finalize moves the session to COMPLETE and resolves the cascade match
// for the collected gap set.
func (e *Engine) finalize(s *Session) {
	s.Phase = PhaseComplete
	s.CurrentProbe = ""
	s.Screening, s.Trace, s.CrossCheck = nil, nil, nil
	if match, ok := e.graph.FindCascadePath(s.Gap); ok {
		s.CascadeLabel = match.Label
	}

	e.log.Info("session complete",
		zap.String("session", s.ID),
		zap.Int("probes", len(s.Probes)),
		zap.Int("gaps", len(s.Gap)),
		zap.Int("mastered", len(s.Mastered)),
		zap.String("primary_gap", s.PrimaryGap),
		zap.String("cascade", s.CascadeLabel))
}

// recordProbe appends the probe to the audit log; failures are logged,
// never surfaced.
func (e *Engine) recordProbe(ctx context.Context, s *Session, rec ProbeRecord) {
	if e.events == nil {
		return
	}
	ev := ProbeEvent{
		SessionID:     s.ID,
		LearnerID:     s.LearnerID,
		NodeCode:      rec.NodeCode,
		Phase:         string(rec.Phase),
		Outcome:       string(rec.Outcome),
		Confidence:    rec.Confidence,
		Misconception: rec.Misconception,
	}
	if err := e.events.AppendProbeEvent(ctx, ev); err != nil {
		e.log.Warn("failed to record probe event", zap.Error(err))
	}
}

// stepResult converts the session's state into the caller-facing step
// outcome: the next probe for a live session, the delta for a completed
// one.
func (e *Engine) stepResult(s *Session) (*StepResult, error) {
	res := &StepResult{SessionID: s.ID, Phase: s.Phase}

	switch {
	case s.Phase == PhaseComplete:
		delta, err := s.Delta()
		if err != nil {
			return nil, err
		}
		res.Delta = delta

	case s.Phase == PhaseAbandoned:
		// No delta: abandonment is signalled separately and the caller
		// decides whether to merge partial evidence.

	default:
		node, err := e.graph.Node(s.CurrentProbe)
		if err != nil {
			return nil, err
		}
		res.NextProbe = &Probe{NodeCode: node.Code, Grade: node.Grade, Phase: s.Phase}
	}

	return res, nil
}
