package classify

import (
	"context"
	"errors"
	"testing"
)

type fakeRecorder struct {
	records []RequestRecord
	err     error
}

func (f *fakeRecorder) AppendClassifierRequest(_ context.Context, rec RequestRecord) error {
	f.records = append(f.records, rec)
	return f.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockClassifier(
		MockOutcome{Result: &Result{Correct: true, Confidence: 0.9}},
	)
	rec := &fakeRecorder{}
	c := WithLogging(mock, rec, nil)

	res, err := c.Classify(context.Background(), Request{NodeCode: "B1.1.1.1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Correct {
		t.Fatal("expected correct judgement")
	}
	if len(rec.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(rec.records))
	}
	r := rec.records[0]
	if r.NodeCode != "B1.1.1.1" || r.Model != "mock" || !r.Success {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockClassifier(
		MockOutcome{Err: &ErrUnavailable{Err: errors.New("down")}},
	)
	rec := &fakeRecorder{}
	c := WithLogging(mock, rec, nil)

	_, err := c.Classify(context.Background(), Request{NodeCode: "B1.1.1.1"})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(rec.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(rec.records))
	}
	r := rec.records[0]
	if r.Success || r.ErrorMessage == "" {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestLogging_RecorderErrorDoesNotFailCall(t *testing.T) {
	mock := NewMockClassifier(
		MockOutcome{Result: &Result{Correct: true}},
	)
	rec := &fakeRecorder{err: errors.New("disk full")}
	c := WithLogging(mock, rec, nil)

	res, err := c.Classify(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Correct {
		t.Fatal("expected result despite recorder failure")
	}
}

func TestLogging_NilRecorder(t *testing.T) {
	mock := NewMockClassifier(
		MockOutcome{Result: &Result{Correct: true}},
	)
	c := WithLogging(mock, nil, nil)

	if _, err := c.Classify(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMock_ScriptedByNode(t *testing.T) {
	mock := NewMockClassifier()
	mock.ScriptCorrect("B1.1.1.1", 0.9)
	mock.ScriptIncorrect("B2.1.1.1", 0.8)

	res, err := mock.Classify(context.Background(), Request{NodeCode: "B2.1.1.1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Correct {
		t.Fatal("expected incorrect judgement for B2.1.1.1")
	}

	res, err = mock.Classify(context.Background(), Request{NodeCode: "B1.1.1.1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Correct {
		t.Fatal("expected correct judgement for B1.1.1.1")
	}

	// Exhausted script and empty queue: unavailable.
	if _, err := mock.Classify(context.Background(), Request{NodeCode: "B1.1.1.1"}); err == nil {
		t.Fatal("expected error after script exhausted")
	}
}
