// cubesnake is a snake game played on the six faces of a cube, in the
// terminal, over SSH, with a shared high-score table.
//
// Usage:
//
//	cubesnake list               - List board variants
//	cubesnake play [variant]     - Play a board
//	cubesnake menu               - Pick a board interactively
//	cubesnake scores [variant]   - Show the leaderboard
//	cubesnake serve              - Start the SSH server
//	cubesnake api                - Start the leaderboard HTTP API
//	cubesnake config             - Print or check the game config
//
// Global flags:
//
//	--fps <rate>    - Frame rate (default: 60)
//	--seed <value>  - RNG seed for reproducible games
//	--db <path>     - Scores database (default: ~/.cubesnake/scores.db)
//	--config <path> - Game config YAML
//
// CUBESNAKE_DB, CUBESNAKE_CONFIG, CUBESNAKE_PLAYER, CUBESNAKE_SSH_ADDR and
// CUBESNAKE_API_ADDR set flag defaults.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubesnake/internal/config"
	"github.com/vovakirdan/cubesnake/internal/games/cubesnake"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
)

// cliEnv is read before any init so every command sees the same defaults.
var cliEnv, cliEnvErr = loadCLIEnv()

func loadCLIEnv() (config.CLIEnv, error) {
	e, err := config.LoadCLIEnv()
	if err != nil {
		return config.CLIEnv{DBPath: "~/.cubesnake/scores.db", SSHAddr: ":23234", APIAddr: ":8080"}, err
	}
	return e, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cubesnake",
	Short: "Cube Snake - snake on the surface of a cube",
	Long: `Cube Snake is a snake game played on the six faces of a cube.
Crossing an edge carries the snake onto the neighbouring face.

Available commands:
  list     - Show board variants
  play     - Play a board directly
  menu     - Interactive board picker
  scores   - View the leaderboard
  serve    - Start the SSH server for remote play
  api      - Start the leaderboard HTTP API
  config   - Print or check the game config

Examples:
  cubesnake play
  cubesnake play cubesnake_mini --difficulty hard
  cubesnake menu
  cubesnake serve --ssh :2222
  cubesnake api --addr :9000`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if cliEnvErr != nil {
			return cliEnvErr
		}
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		cubesnake.SetConfigPath(flagConfigPath)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", cliEnv.DBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", cliEnv.ConfigPath, "Path to game config YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(configCmd)
}
