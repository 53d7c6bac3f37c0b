package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the default game configuration.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Timing: TimingConfig{
			BaseFallMs:   1000,
			FallStepMs:   50,
			MinFallMs:    100,
			ClearDelayMs: 400,
		},
		Scoring: ScoringConfig{
			LinePoints: 100,
			LevelStep:  500,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlockfallYAML
}
