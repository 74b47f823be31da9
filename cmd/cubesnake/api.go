package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubesnake/internal/leaderboard"
	"github.com/vovakirdan/cubesnake/internal/registry"
	"github.com/vovakirdan/cubesnake/internal/storage"
)

var flagAPIAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the leaderboard HTTP API",
	Long: `Serve the scores database as JSON over HTTP.

Endpoints:
  GET  /api/scores?game=<id>&limit=<n>  Top scores, best first (default 10)
  POST /api/scores                      Submit {"name", "score", "game"}
  GET  /healthz                         Liveness

Examples:
  cubesnake api
  cubesnake api --addr :9000
  curl -d '{"name":"ada","score":12}' localhost:8080/api/scores`,
	Args: cobra.NoArgs,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", cliEnv.APIAddr, "HTTP listen address (host:port)")
}

func runAPI(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	cfg := leaderboard.DefaultConfig()
	cfg.Address = flagAPIAddr
	cfg.KnownGame = registry.Exists

	fmt.Printf("Starting leaderboard API on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return leaderboard.NewServer(store, cfg).ListenAndServe(ctx)
}
