package classify

import (
	"context"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockClassifier(
		MockOutcome{Result: &Result{Correct: true, Confidence: 0.9}},
	)
	c := WithRetry(mock, retryConfig())

	res, err := c.Classify(context.Background(), Request{NodeCode: "B2.1.1.1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Correct || res.Confidence != 0.9 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockClassifier(
		MockOutcome{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockOutcome{Result: &Result{Correct: false, Confidence: 0.8}},
	)
	c := WithRetry(mock, retryConfig())

	res, err := c.Classify(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Correct {
		t.Fatal("expected incorrect judgement")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockClassifier(
		MockOutcome{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockOutcome{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockOutcome{Err: &ErrUnavailable{Err: errors.New("down")}},
	)
	c := WithRetry(mock, retryConfig())

	_, err := c.Classify(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	mock := NewMockClassifier(
		MockOutcome{Err: &ErrInvalidResponse{Content: []byte(`bad`), Err: errors.New("bad")}},
		MockOutcome{Err: &ErrInvalidResponse{Content: []byte(`bad`), Err: errors.New("bad")}},
		MockOutcome{Result: &Result{Correct: true}}, // Won't be reached.
	)
	c := WithRetry(mock, retryConfig())

	_, err := c.Classify(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	// Should have retried once (2 calls total), then stopped.
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockClassifier(
		MockOutcome{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockOutcome{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockOutcome{Result: &Result{Correct: true}},
	)
	c := WithRetry(mock, retryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately.

	_, err := c.Classify(ctx, Request{})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRetry_RateLimitRespectsRetryAfter(t *testing.T) {
	mock := NewMockClassifier(
		MockOutcome{Err: &ErrRateLimit{RetryAfter: 1 * time.Millisecond, Err: errors.New("429")}},
		MockOutcome{Result: &Result{Correct: true, Confidence: 1.0}},
	)
	c := WithRetry(mock, retryConfig())

	res, err := c.Classify(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Correct {
		t.Fatal("expected correct judgement")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	mock := NewMockClassifier()
	c := WithRetry(mock, retryConfig())
	if c.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", c.ModelID())
	}
}
