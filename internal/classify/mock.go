package classify

import (
	"context"
	"sync"
)

// MockOutcome is a canned classification for the MockClassifier.
type MockOutcome struct {
	Result *Result
	Err    error
}

// MockClassifier is a deterministic Classifier for testing. Outcomes can
// be keyed by node code or served in FIFO order; all requests are
// recorded.
type MockClassifier struct {
	mu       sync.Mutex
	byNode   map[string][]MockOutcome
	queue    []MockOutcome
	Requests []Request
}

// NewMockClassifier creates a MockClassifier serving the given outcomes
// in FIFO order.
func NewMockClassifier(outcomes ...MockOutcome) *MockClassifier {
	return &MockClassifier{
		byNode: make(map[string][]MockOutcome),
		queue:  outcomes,
	}
}

// Classify returns the next outcome scripted for the node (if any), then
// falls back to the FIFO queue, then to ErrUnavailable.
func (m *MockClassifier) Classify(_ context.Context, req Request) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, req)

	if outcomes := m.byNode[req.NodeCode]; len(outcomes) > 0 {
		out := outcomes[0]
		m.byNode[req.NodeCode] = outcomes[1:]
		return out.Result, out.Err
	}

	if len(m.queue) == 0 {
		return nil, &ErrUnavailable{Err: nil}
	}
	out := m.queue[0]
	m.queue = m.queue[1:]
	return out.Result, out.Err
}

// ModelID returns "mock".
func (m *MockClassifier) ModelID() string {
	return "mock"
}

// Script queues an outcome for a specific node code.
func (m *MockClassifier) Script(nodeCode string, out MockOutcome) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byNode[nodeCode] = append(m.byNode[nodeCode], out)
}

// ScriptCorrect queues a correct classification for a node.
func (m *MockClassifier) ScriptCorrect(nodeCode string, confidence float64) {
	m.Script(nodeCode, MockOutcome{Result: &Result{Correct: true, Confidence: confidence}})
}

// ScriptIncorrect queues an incorrect classification for a node.
func (m *MockClassifier) ScriptIncorrect(nodeCode string, confidence float64) {
	m.Script(nodeCode, MockOutcome{Result: &Result{Correct: false, Confidence: confidence}})
}

// CallCount returns the number of Classify calls made.
func (m *MockClassifier) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}
