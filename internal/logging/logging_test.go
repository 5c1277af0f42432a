package logging

import (
	"path/filepath"
	"testing"
)

func TestNew_DefaultConfig(t *testing.T) {
	log, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Info("hello")
	_ = log.Sync()
}

func TestNew_BadLevelFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "shouting"
	log, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !log.Core().Enabled(0) { // InfoLevel
		t.Fatal("expected fallback to info level")
	}
}

func TestNew_FileSink(t *testing.T) {
	cfg := DefaultConfig()
	cfg.File = filepath.Join(t.TempDir(), "gapmap.log")
	log, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Info("to file")
	_ = log.Sync()
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GAPMAP_LOG_LEVEL", "debug")
	t.Setenv("GAPMAP_LOG_FORMAT", "json")

	cfg := ConfigFromEnv()
	if cfg.Level != "debug" || cfg.Format != "json" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
