package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cubesnake/internal/config"
	"github.com/vovakirdan/cubesnake/internal/core"
	"github.com/vovakirdan/cubesnake/internal/platform/tui"
	"github.com/vovakirdan/cubesnake/internal/registry"
	"github.com/vovakirdan/cubesnake/internal/storage"
)

var (
	flagName       string
	flagDifficulty string
	flagLogPath    string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing the given board variant (default: cubesnake).

Controls:
  Arrows/WASD/HJKL - Steer (relative to the face the head is on)
  P/Space          - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start slow, speed up as the score grows
  normal - Start at 30% speed-up
  hard   - Start at 70% speed-up
  fixed  - No speed-up, stay at the config's initial level

Examples:
  cubesnake play
  cubesnake play cubesnake_large --difficulty easy
  cubesnake play --name ada --log ./cubesnake.log
  cubesnake play --config ./my-cubesnake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", cliEnv.Player, "Player name saved with scores")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "cubesnake"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown board %q (run 'cubesnake list' to see boards)", gameID)
	}
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}

	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	cfg.Difficulty = flagDifficulty

	logger.Info("starting game", "game", gameID, "player", storage.NormalizePlayer(flagName))
	if err := tui.Run(game, store, cfg, tui.GameOptions{Player: flagName, Logger: logger}); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime settings from the terminal and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openLogger returns a logger writing to path, or a discarding logger when
// path is empty. The TUI owns the terminal, so nothing logs to stderr.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "cubesnake",
	})
	return logger, func() { f.Close() }, nil
}

// openStore opens the scores database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
