package config

import (
	_ "embed"
)

//go:embed defaults/cubesnake.yaml
var defaultCubeSnakeYAML []byte

// DefaultCubeSnakeConfig returns the default cube snake configuration.
func DefaultCubeSnakeConfig() CubeSnakeConfig {
	return CubeSnakeConfig{
		Board: BoardConfig{
			GridSize: 10,
		},
		Scoring: ScoringConfig{
			FoodPoints:  1,
			PrizePoints: 5,
			PrizeEvery:  5,
		},
		Timing: TimingConfig{
			BaseIntervalMs: 150,
			MinIntervalMs:  70,
		},
		Spawn: SpawnConfig{
			Retries: 64,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCubeSnakeYAML
}
