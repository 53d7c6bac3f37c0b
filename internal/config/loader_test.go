package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	// The embedded YAML is the canonical default; the hardcoded struct is
	// the last-resort fallback. They must agree.
	cfg, err := LoadBlockfall("")
	if err != nil {
		t.Fatalf("LoadBlockfall() failed: %v", err)
	}

	if cfg != DefaultBlockfallConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultBlockfallConfig() %+v",
			cfg, DefaultBlockfallConfig())
	}
}

func TestDefaultTimingCurve(t *testing.T) {
	cfg := DefaultBlockfallConfig()

	if cfg.Timing.BaseFallMs != 1000 {
		t.Errorf("BaseFallMs = %d, expected 1000", cfg.Timing.BaseFallMs)
	}
	if cfg.Timing.FallStepMs != 50 {
		t.Errorf("FallStepMs = %d, expected 50", cfg.Timing.FallStepMs)
	}
	if cfg.Timing.MinFallMs != 100 {
		t.Errorf("MinFallMs = %d, expected 100", cfg.Timing.MinFallMs)
	}
	if cfg.Scoring.LinePoints != 100 {
		t.Errorf("LinePoints = %d, expected 100", cfg.Scoring.LinePoints)
	}
	if cfg.Scoring.LevelStep != 500 {
		t.Errorf("LevelStep = %d, expected 500", cfg.Scoring.LevelStep)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	custom := []byte(`
timing:
  base_fall_ms: 800
  fall_step_ms: 60
  min_fall_ms: 120
  clear_delay_ms: 200
scoring:
  line_points: 250
  level_step: 1000
`)
	if err := os.WriteFile(path, custom, 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := LoadBlockfall(path)
	if err != nil {
		t.Fatalf("LoadBlockfall() failed: %v", err)
	}

	if cfg.Timing.BaseFallMs != 800 {
		t.Errorf("BaseFallMs = %d, expected 800", cfg.Timing.BaseFallMs)
	}
	if cfg.Scoring.LinePoints != 250 {
		t.Errorf("LinePoints = %d, expected 250", cfg.Scoring.LinePoints)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := LoadBlockfall("/nonexistent/blockfall.yaml")
	if err == nil {
		t.Error("LoadBlockfall() with a missing explicit path should fail")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(path, []byte("timing: [not a map"), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	_, err := LoadBlockfall(path)
	if err == nil {
		t.Error("LoadBlockfall() with malformed YAML should fail")
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "partial.yaml")

	// Only a timing section: scoring must keep its defaults, not zero out.
	partial := []byte(`
timing:
  base_fall_ms: 800
`)
	if err := os.WriteFile(path, partial, 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := LoadBlockfall(path)
	if err != nil {
		t.Fatalf("LoadBlockfall() failed: %v", err)
	}

	if cfg.Timing.BaseFallMs != 800 {
		t.Errorf("BaseFallMs = %d, expected the file's 800", cfg.Timing.BaseFallMs)
	}
	def := DefaultBlockfallConfig()
	if cfg.Timing.FallStepMs != def.Timing.FallStepMs {
		t.Errorf("FallStepMs = %d, expected default %d", cfg.Timing.FallStepMs, def.Timing.FallStepMs)
	}
	if cfg.Scoring.LinePoints != def.Scoring.LinePoints {
		t.Errorf("LinePoints = %d, expected default %d", cfg.Scoring.LinePoints, def.Scoring.LinePoints)
	}
	if cfg.Scoring.LevelStep != def.Scoring.LevelStep {
		t.Errorf("LevelStep = %d, expected default %d", cfg.Scoring.LevelStep, def.Scoring.LevelStep)
	}
}

func TestLoadSanitizesUnusableValues(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "zeroed.yaml")

	// Explicit zeros and negatives: LevelStep is a divisor and the fall
	// intervals drive timers, so these must be replaced, not passed on.
	zeroed := []byte(`
timing:
  base_fall_ms: 0
  min_fall_ms: -5
scoring:
  line_points: 0
  level_step: 0
`)
	if err := os.WriteFile(path, zeroed, 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := LoadBlockfall(path)
	if err != nil {
		t.Fatalf("LoadBlockfall() failed: %v", err)
	}

	def := DefaultBlockfallConfig()
	if cfg != def {
		t.Errorf("sanitized config = %+v, expected defaults %+v", cfg, def)
	}
}
