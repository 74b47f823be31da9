package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubesnake/internal/platform/tui"
	"github.com/vovakirdan/cubesnake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to move, Enter to play, Tab for the scoreboard.
Esc/B while paused or after game over returns to the menu.

Examples:
  cubesnake menu
  cubesnake menu --fps 30
  cubesnake menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagName, "name", cliEnv.Player, "Player name saved with scores")
	menuCmd.Flags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	lastGame := ""

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("run menu: %w", err)
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, lastGame)
			if err != nil {
				return fmt.Errorf("run scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		lastGame = result.GameID
		cfg.Seed = flagSeed

		opts := tui.GameOptions{Player: flagName, Logger: logger, CanGoBack: true}
		if err := tui.Run(game, store, cfg, opts); err != nil {
			return fmt.Errorf("run game: %w", err)
		}
	}
}
