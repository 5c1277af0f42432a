package classify

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimit indicates the backing provider returned a rate limit
// error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("classifier rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the classifier returned content that does
// not conform to the classification schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid classifier response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrUnavailable indicates the classifier is down, unreachable, or timed
// out. After the retry policy is exhausted the caller records the probe
// as inconclusive and the session continues past it.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("classifier unavailable: %v", e.Err)
	}
	return "classifier unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }
