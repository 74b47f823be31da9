package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubesnake/internal/games/cubesnake"
	"github.com/vovakirdan/cubesnake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board variants",
	Long:  `Shows every registered board variant and its grid size.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No boards available.")
		return
	}

	sizes := make(map[string]int, len(cubesnake.Variants))
	for _, v := range cubesnake.Variants {
		sizes[v.ID] = v.GridSize
	}

	maxIDLen := 2
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Available boards:")
	fmt.Println()
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Grid", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "----", "-----")
	for _, g := range games {
		grid := "config"
		if n := sizes[g.ID]; n > 0 {
			grid = fmt.Sprintf("%dx%d", n, n)
		}
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, g.ID, grid, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'cubesnake play <id>' to play a board.")
}
