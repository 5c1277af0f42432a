package session

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gapmapdev/gapmap/internal/curriculum"
)

// Config holds the tunable decision boundaries of the session engine.
// The defaults are the product's established thresholds; changing them
// changes diagnostic behavior, not correctness.
type Config struct {
	// GapConfidenceThreshold is the minimum classification confidence
	// for an incorrect answer to count as a detected gap.
	GapConfidenceThreshold float64

	// ProbesPerScreeningNode caps probes spent on a single screening
	// node before it is recorded as tested-only and screening advances.
	ProbesPerScreeningNode int

	// TraceDepth bounds the backward trace from a gap anchor.
	TraceDepth int

	// MaxProbes is the hard probe cap for a whole session. Reaching it
	// finalizes the session with whatever evidence was collected.
	MaxProbes int
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		GapConfidenceThreshold: 0.70,
		ProbesPerScreeningNode: 2,
		TraceDepth:             curriculum.DefaultTraceDepth,
		MaxProbes:              15,
	}
}

// ConfigFromEnv builds a Config from GAPMAP_* environment variables,
// falling back to defaults for anything unset or unparsable.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GAPMAP_GAP_CONFIDENCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.GapConfidenceThreshold = f
		}
	}
	if v := os.Getenv("GAPMAP_PROBES_PER_NODE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ProbesPerScreeningNode = n
		}
	}
	if v := os.Getenv("GAPMAP_TRACE_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TraceDepth = n
		}
	}
	if v := os.Getenv("GAPMAP_MAX_PROBES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxProbes = n
		}
	}

	return cfg
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.GapConfidenceThreshold < 0 || c.GapConfidenceThreshold > 1 {
		return fmt.Errorf("gap confidence threshold must be in [0, 1], got %v", c.GapConfidenceThreshold)
	}
	if c.ProbesPerScreeningNode < 1 {
		return fmt.Errorf("probes per screening node must be at least 1, got %d", c.ProbesPerScreeningNode)
	}
	if c.TraceDepth < 1 {
		return fmt.Errorf("trace depth must be at least 1, got %d", c.TraceDepth)
	}
	if c.MaxProbes < 1 {
		return fmt.Errorf("max probes must be at least 1, got %d", c.MaxProbes)
	}
	return nil
}
