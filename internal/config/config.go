// Package config provides YAML-based game configuration loading and
// difficulty management for cube snake.
package config

import (
	"errors"
	"fmt"
)

// CubeSnakeConfig contains all configuration for the cube snake game.
type CubeSnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Timing     TimingConfig     `yaml:"timing"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the cube dimensions.
type BoardConfig struct {
	GridSize int `yaml:"grid_size"` // Cells per cube edge
}

// ScoringConfig defines points per food.
type ScoringConfig struct {
	FoodPoints  int `yaml:"food_points"`
	PrizePoints int `yaml:"prize_points"`
	PrizeEvery  int `yaml:"prize_every"` // Every Nth food is a prize
}

// TimingConfig defines the movement pace.
type TimingConfig struct {
	BaseIntervalMs int `yaml:"base_interval_ms"` // Tick interval at difficulty 0
	MinIntervalMs  int `yaml:"min_interval_ms"`  // Tick interval at difficulty 1
}

// SpawnConfig tunes food placement.
type SpawnConfig struct {
	Retries int `yaml:"retries"` // Random attempts before sampling free cells
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// Validate reports the first setting that cannot produce a playable game.
func (c CubeSnakeConfig) Validate() error {
	var errs []error
	if c.Board.GridSize < 1 {
		errs = append(errs, fmt.Errorf("board.grid_size must be at least 1, got %d", c.Board.GridSize))
	}
	if c.Scoring.PrizeEvery < 1 {
		errs = append(errs, fmt.Errorf("scoring.prize_every must be at least 1, got %d", c.Scoring.PrizeEvery))
	}
	if c.Timing.BaseIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.base_interval_ms must be positive, got %d", c.Timing.BaseIntervalMs))
	}
	if c.Timing.MinIntervalMs <= 0 || c.Timing.MinIntervalMs > c.Timing.BaseIntervalMs {
		errs = append(errs, fmt.Errorf("timing.min_interval_ms must be in (0, %d], got %d",
			c.Timing.BaseIntervalMs, c.Timing.MinIntervalMs))
	}
	if c.Spawn.Retries < 0 {
		errs = append(errs, fmt.Errorf("spawn.retries must not be negative, got %d", c.Spawn.Retries))
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type must be score, time or none, got %q",
			c.Difficulty.Progression.Type))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
