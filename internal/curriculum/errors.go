package curriculum

import (
	"fmt"
	"strings"
)

// NodeNotFoundError reports a reference to an unknown node code. It is
// fatal to the calling operation, never retried.
type NodeNotFoundError struct {
	Code string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("curriculum node not found: %q", e.Code)
}

// ValidationError aggregates every structural problem found in a graph
// pack. Raised at load time; fatal, aborts startup.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("curriculum graph validation failed:\n  %s",
		strings.Join(e.Problems, "\n  "))
}
