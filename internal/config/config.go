// Package config provides YAML-based tuning configuration for the
// blockfall engine. Defaults match the classic rule set; the board
// dimensions are engine parameters and deliberately not configurable here.
package config

// BlockfallConfig contains all tunable parameters for the game.
type BlockfallConfig struct {
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// TimingConfig defines the fall-speed curve and the line-clear delay.
// All durations are in milliseconds.
type TimingConfig struct {
	BaseFallMs   int `yaml:"base_fall_ms"`   // Fall interval at level 1
	FallStepMs   int `yaml:"fall_step_ms"`   // Interval reduction per level
	MinFallMs    int `yaml:"min_fall_ms"`    // Fall interval floor
	ClearDelayMs int `yaml:"clear_delay_ms"` // Visual delay before cleared rows compact
}

// ScoringConfig defines how score and level are derived.
type ScoringConfig struct {
	LinePoints int `yaml:"line_points"` // Points per cleared row
	LevelStep  int `yaml:"level_step"`  // Score per level: level = score/step + 1
}

// sanitize replaces unusable tuning values with defaults. LevelStep is a
// divisor and the fall intervals drive timers, so zero or negative values
// from a hand-edited file must not reach the engine. FallStepMs and
// ClearDelayMs may legitimately be zero (constant speed, instant clears).
func (c *BlockfallConfig) sanitize() {
	def := DefaultBlockfallConfig()
	if c.Timing.BaseFallMs <= 0 {
		c.Timing.BaseFallMs = def.Timing.BaseFallMs
	}
	if c.Timing.FallStepMs < 0 {
		c.Timing.FallStepMs = def.Timing.FallStepMs
	}
	if c.Timing.MinFallMs <= 0 {
		c.Timing.MinFallMs = def.Timing.MinFallMs
	}
	if c.Timing.ClearDelayMs < 0 {
		c.Timing.ClearDelayMs = def.Timing.ClearDelayMs
	}
	if c.Scoring.LinePoints <= 0 {
		c.Scoring.LinePoints = def.Scoring.LinePoints
	}
	if c.Scoring.LevelStep <= 0 {
		c.Scoring.LevelStep = def.Scoring.LevelStep
	}
}
