package main

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubesnake/internal/config"
	"github.com/vovakirdan/cubesnake/internal/platform/tui"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagIdleTimeout   int
	flagSSHDifficulty string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server where every connection gets its own menu and game.
Scores are saved under the SSH user name; all users share one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.cubesnake/host_key

Examples:
  cubesnake serve                           # Listen on :23234
  cubesnake serve --ssh :2222               # Listen on port 2222
  cubesnake serve --host-key ./my_host_key  # Use a specific host key
  cubesnake serve --db ./scores.db          # Use a specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", cliEnv.SSHAddr, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagSSHDifficulty, "difficulty", "", "Difficulty preset for every session")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if flagSSHDifficulty != "" {
		if _, err := config.ParsePreset(flagSSHDifficulty); err != nil {
			return err
		}
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.TickRate = flagFPS
	cfg.Difficulty = flagSSHDifficulty
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Cube Snake SSH server on %s\n", cfg.Address)
	if _, port, err := net.SplitHostPort(cfg.Address); err == nil {
		fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	}
	fmt.Println("Press Ctrl+C to stop")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return server.ListenAndServe(ctx)
}
