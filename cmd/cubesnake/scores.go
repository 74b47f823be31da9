package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubesnake/internal/registry"
	"github.com/vovakirdan/cubesnake/internal/storage"
)

var (
	flagLimit     int
	flagAll       bool
	flagPlayer    string
	flagStats     bool
	flagClear     bool
	flagClearSure bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the leaderboard",
	Long: `Display the top scores for a board variant (default: cubesnake).

Examples:
  cubesnake scores
  cubesnake scores cubesnake_mini --limit 20
  cubesnake scores --player ada
  cubesnake scores --stats
  cubesnake scores cubesnake_large --clear --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show every score")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Show this player's best score")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show a summary of every board")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the board")
	scoresCmd.Flags().BoolVar(&flagClearSure, "yes", false, "Confirm --clear")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "cubesnake"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !flagStats && !registry.Exists(gameID) {
		return fmt.Errorf("unknown board %q (run 'cubesnake list' to see boards)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagStats:
		return printStats(store)
	case flagClear:
		if !flagClearSure {
			return errors.New("--clear deletes every score for the board; add --yes to confirm")
		}
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", registry.Title(gameID))
		return nil
	case flagPlayer != "":
		return printPlayerBest(store, gameID, flagPlayer)
	}

	var scores []storage.ScoreEntry
	if flagAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", registry.Title(gameID))
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'cubesnake play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-*s  %-7s  %s\n", "Rank", storage.MaxPlayerLen, "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-*s  %-7s  %s\n", "----", storage.MaxPlayerLen, "------", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-*s  %-7d  %s\n", i+1, storage.MaxPlayerLen, e.Player, e.Score,
			e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func printPlayerBest(store *storage.Store, gameID, player string) error {
	best, err := store.PlayerBest(gameID, player)
	if err != nil {
		return err
	}
	name := storage.NormalizePlayer(player)
	if best == 0 {
		fmt.Printf("%s has no scores on %s.\n", name, registry.Title(gameID))
		return nil
	}
	fmt.Printf("%s best on %s: %d\n", name, registry.Title(gameID), best)
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-20s  %-6s  %-6s  %s\n", "Board", "Games", "Best", "Players")
	fmt.Printf("  %-20s  %-6s  %-6s  %s\n", "-----", "-----", "----", "-------")
	for _, st := range stats {
		fmt.Printf("  %-20s  %-6d  %-6d  %d\n", st.GameID, st.Games, st.Best, st.Players)
	}
	return nil
}
