package classify

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// New creates a Classifier from configuration, wrapped with retry and
// event-recording middleware: caller -> retry -> logging -> backend.
func New(ctx context.Context, cfg Config, recorder Recorder, log *zap.Logger) (Classifier, error) {
	var base Classifier
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicClassifier(cfg)
	case "openai":
		base, err = NewOpenAIClassifier(cfg)
	case "gemini":
		base, err = NewGeminiClassifier(ctx, cfg)
	case "mock":
		return NewMockClassifier(), nil
	default:
		return nil, fmt.Errorf("unknown classifier provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s classifier: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, recorder, log)
	return WithRetry(logged, cfg.Retry), nil
}

// resolveModel maps a friendly model name to a provider model ID. Names
// not in the map pass through unchanged, allowing direct model IDs.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
