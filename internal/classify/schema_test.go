package classify

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

var testCandidates = []Candidate{
	{Code: "M-REGROUP", Description: "Fails to regroup across place values"},
	{Code: "M-ZERO", Description: "Treats zero as having no place value"},
}

func TestParseResult_Valid(t *testing.T) {
	raw := json.RawMessage(`{
		"is_correct": false,
		"confidence": 0.85,
		"misconception_code": "M-REGROUP",
		"reasoning": "The learner subtracted the smaller digit from the larger in each column."
	}`)

	res, err := parseResult(raw, testCandidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Correct {
		t.Fatal("expected incorrect judgement")
	}
	if res.Confidence != 0.85 {
		t.Fatalf("expected confidence 0.85, got %v", res.Confidence)
	}
	if res.MisconceptionCode != "M-REGROUP" {
		t.Fatalf("expected M-REGROUP, got %q", res.MisconceptionCode)
	}
	if res.Reasoning == "" {
		t.Fatal("expected reasoning to be carried through")
	}
}

func TestParseResult_NullMisconception(t *testing.T) {
	raw := json.RawMessage(`{
		"is_correct": true,
		"confidence": 0.95,
		"misconception_code": null,
		"reasoning": "Correct answer with valid working."
	}`)

	res, err := parseResult(raw, testCandidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Correct {
		t.Fatal("expected correct judgement")
	}
	if res.MisconceptionCode != "" {
		t.Fatalf("expected empty misconception code, got %q", res.MisconceptionCode)
	}
}

func TestParseResult_UnknownMisconceptionDropped(t *testing.T) {
	raw := json.RawMessage(`{
		"is_correct": false,
		"confidence": 0.7,
		"misconception_code": "M-INVENTED",
		"reasoning": "Hallucinated pattern."
	}`)

	res, err := parseResult(raw, testCandidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.MisconceptionCode != "" {
		t.Fatalf("expected invented code to be dropped, got %q", res.MisconceptionCode)
	}
}

func TestParseResult_MisconceptionIgnoredWhenCorrect(t *testing.T) {
	raw := json.RawMessage(`{
		"is_correct": true,
		"confidence": 0.9,
		"misconception_code": "M-REGROUP",
		"reasoning": "Correct despite messy working."
	}`)

	res, err := parseResult(raw, testCandidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.MisconceptionCode != "" {
		t.Fatalf("expected no misconception on a correct answer, got %q", res.MisconceptionCode)
	}
}

func TestParseResult_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"is_correct": tru`)

	_, err := parseResult(raw, testCandidates)
	if err == nil {
		t.Fatal("expected error")
	}
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestParseResult_ConfidenceOutOfRange(t *testing.T) {
	raw := json.RawMessage(`{
		"is_correct": true,
		"confidence": 1.5,
		"misconception_code": null,
		"reasoning": "Too sure."
	}`)

	_, err := parseResult(raw, testCandidates)
	if err == nil {
		t.Fatal("expected schema validation error")
	}
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestParseResult_MissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{
		"is_correct": true,
		"confidence": 0.9,
		"reasoning": "No misconception field."
	}`)

	_, err := parseResult(raw, testCandidates)
	if err == nil {
		t.Fatal("expected schema validation error")
	}
}

func TestParseResult_ExtraFieldRejected(t *testing.T) {
	raw := json.RawMessage(`{
		"is_correct": true,
		"confidence": 0.9,
		"misconception_code": null,
		"reasoning": "ok",
		"extra": 42
	}`)

	_, err := parseResult(raw, testCandidates)
	if err == nil {
		t.Fatal("expected schema validation error")
	}
}

func TestBuildUserMessage_WithCandidates(t *testing.T) {
	msg, err := buildUserMessage(Request{
		NodeCode:        "B2.1.1.1",
		QuestionContext: "What is 42 - 17?",
		RawResponse:     "35",
		Candidates:      testCandidates,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"B2.1.1.1", "42 - 17", "35", "M-REGROUP", "M-ZERO"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildUserMessage_NoCandidates(t *testing.T) {
	msg, err := buildUserMessage(Request{
		NodeCode:        "C1.2.1.1",
		QuestionContext: "Shade half the circle.",
		RawResponse:     "done",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(msg, "No known misconceptions") {
		t.Fatalf("expected no-misconceptions note in prompt:\n%s", msg)
	}
}
