package session

import "fmt"

// SessionNotFoundError indicates an operation referenced an unknown
// session id.
type SessionNotFoundError struct {
	ID string
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// InvalidSessionStateError indicates an operation is not valid in the
// session's current phase, e.g. submitting a probe to a terminal
// session. Surfaced to the caller, never retried.
type InvalidSessionStateError struct {
	ID    string
	Phase Phase
}

func (e *InvalidSessionStateError) Error() string {
	return fmt.Sprintf("session %s: operation invalid in phase %s", e.ID, e.Phase)
}
