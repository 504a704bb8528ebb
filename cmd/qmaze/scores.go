package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-maze/internal/registry"
	"github.com/vovakirdan/quantum-maze/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the best runs",
	Long: `Display the 10 fewest-step finishes for a variant, or for every
variant when none is given.

Examples:
  qmaze scores
  qmaze scores qmaze_tilted
  qmaze scores qmaze --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the scores of the given variant")
}

func runScores(_ *cobra.Command, args []string) {
	games := registry.List()
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'qmaze list' to see available variants.")
			os.Exit(1)
		}
		games = filterGames(games, args[0])
	} else if flagClear {
		fail("--clear needs a variant")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(args[0]); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", args[0])
		return
	}

	for i, g := range games {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, g.ID, g.Title); err != nil {
			fail("retrieving scores: %v", err)
		}
	}
}

func filterGames(games []registry.GameInfo, id string) []registry.GameInfo {
	for _, g := range games {
		if g.ID == id {
			return []registry.GameInfo{g}
		}
	}
	return nil
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.BestScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No finished mazes yet.")
		fmt.Printf("Play 'qmaze play %s' to set the first record!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %s\n", "Rank", "Steps", "Date")
	fmt.Printf("  %-4s  %-6s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-6d  %s\n", i+1, entry.Steps, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d steps  Wins: %d  Average: %.1f steps\n", stats.BestSteps, stats.Wins, stats.AvgSteps)
	return nil
}
