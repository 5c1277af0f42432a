package classify

import "context"

// Classifier judges a learner's raw response to a probe question. The
// session engine treats it as an opaque, possibly slow, possibly failing
// collaborator; it never computes classification itself.
type Classifier interface {
	// Classify evaluates the raw response against the probed node and
	// returns a structured judgement.
	Classify(ctx context.Context, req Request) (*Result, error)

	// ModelID returns the model identifier backing this classifier.
	ModelID() string
}

// Candidate is a known misconception the classifier may attribute a
// wrong answer to.
type Candidate struct {
	Code        string
	Description string
}

// Request describes one probe response to classify.
type Request struct {
	// NodeCode is the curriculum node the probe targeted.
	NodeCode string

	// QuestionContext is the question as posed, plus any framing the
	// caller wants the classifier to see.
	QuestionContext string

	// RawResponse is the learner's answer, verbatim.
	RawResponse string

	// Candidates lists the node's known misconceptions. The classifier
	// may only attribute errors to codes from this list.
	Candidates []Candidate
}

// Result is the classifier's judgement of one response.
type Result struct {
	// Correct reports whether the response demonstrates the skill.
	Correct bool

	// Confidence is the classifier's certainty in [0, 1].
	Confidence float64

	// MisconceptionCode names the matched misconception, or empty when
	// the answer was correct or matched no known pattern.
	MisconceptionCode string

	// Reasoning is a one-sentence explanation (empty for some backends).
	Reasoning string
}
