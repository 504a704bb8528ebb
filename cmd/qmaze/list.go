package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-maze/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all maze variants",
	Long:  `Shows a list of all registered maze variants.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'qmaze play <id>' to walk a maze.")
}
