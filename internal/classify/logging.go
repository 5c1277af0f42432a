package classify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RequestRecord captures one classifier call for the event log.
type RequestRecord struct {
	Model        string
	NodeCode     string
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// Recorder persists classifier call records. Implemented by the store's
// event repo.
type Recorder interface {
	AppendClassifierRequest(ctx context.Context, rec RequestRecord) error
}

// LoggingClassifier is a decorator that records every classifier call as
// an event and logs it structurally.
type LoggingClassifier struct {
	inner    Classifier
	recorder Recorder
	log      *zap.Logger
}

// WithLogging wraps a Classifier with event recording. recorder may be
// nil, in which case only the structured log is written.
func WithLogging(c Classifier, recorder Recorder, log *zap.Logger) Classifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingClassifier{inner: c, recorder: recorder, log: log}
}

func (l *LoggingClassifier) Classify(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	res, err := l.inner.Classify(ctx, req)
	latency := time.Since(start)

	rec := RequestRecord{
		Model:     l.inner.ModelID(),
		NodeCode:  req.NodeCode,
		LatencyMs: latency.Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
		l.log.Warn("classifier call failed",
			zap.String("node", req.NodeCode),
			zap.Duration("latency", latency),
			zap.Error(err))
	} else {
		l.log.Debug("classifier call",
			zap.String("node", req.NodeCode),
			zap.Bool("correct", res.Correct),
			zap.Float64("confidence", res.Confidence),
			zap.Duration("latency", latency))
	}

	// Record the event but never fail the classification over it.
	if l.recorder != nil {
		if recErr := l.recorder.AppendClassifierRequest(ctx, rec); recErr != nil {
			l.log.Warn("failed to record classifier request event", zap.Error(recErr))
		}
	}

	return res, err
}

func (l *LoggingClassifier) ModelID() string {
	return l.inner.ModelID()
}
