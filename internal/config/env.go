package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// GameEnv holds environment overrides for game settings.
// Zero values mean "not set".
type GameEnv struct {
	GridSize       int `env:"CUBESNAKE_GRID_SIZE"`
	BaseIntervalMs int `env:"CUBESNAKE_BASE_INTERVAL_MS"`
	MinIntervalMs  int `env:"CUBESNAKE_MIN_INTERVAL_MS"`
}

// ApplyEnv overlays CUBESNAKE_* game settings onto cfg.
func ApplyEnv(cfg *CubeSnakeConfig) error {
	var e GameEnv
	if err := ParseEnv(&e); err != nil {
		return err
	}
	if e.GridSize != 0 {
		cfg.Board.GridSize = e.GridSize
	}
	if e.BaseIntervalMs != 0 {
		cfg.Timing.BaseIntervalMs = e.BaseIntervalMs
	}
	if e.MinIntervalMs != 0 {
		cfg.Timing.MinIntervalMs = e.MinIntervalMs
	}
	return nil
}

// CLIEnv supplies defaults for command-line flags.
type CLIEnv struct {
	DBPath     string `env:"CUBESNAKE_DB" envDefault:"~/.cubesnake/scores.db"`
	ConfigPath string `env:"CUBESNAKE_CONFIG"`
	Player     string `env:"CUBESNAKE_PLAYER"`
	SSHAddr    string `env:"CUBESNAKE_SSH_ADDR" envDefault:":23234"`
	APIAddr    string `env:"CUBESNAKE_API_ADDR" envDefault:":8080"`
}

// LoadCLIEnv reads flag defaults from the environment.
func LoadCLIEnv() (CLIEnv, error) {
	var e CLIEnv
	if err := ParseEnv(&e); err != nil {
		return CLIEnv{}, err
	}
	return e, nil
}
