package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-maze/internal/platform/tui"
	"github.com/vovakirdan/quantum-maze/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start Quantum Maze in interactive menu mode.

From the menu you can walk either maze variant, look at the prepared qubits,
or browse the best runs. After a maze ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  qmaze menu
  qmaze menu --difficulty easy
  qmaze menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	rt := runtimeConfig(cfg)

	sinks, store := scoreSinks(logger)
	if store != nil {
		defer store.Close()
	}

	for {
		result, err := tui.RunMenu(rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		rt = result.Config

		switch result.Choice {
		case tui.ChoicePlay:
			game, err := registry.Create(result.GameID, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				continue
			}
			// A fresh maze each time unless --seed pins it
			if flagSeed == 0 {
				rt.Seed = 0
			}
			if err := tui.Run(game, sinks, logger, rt, false); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}

		case tui.ChoiceVisualize:
			sources, err := tui.QubitSources(cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			goBack, err := tui.RunVisualizer(sources, rt.ScreenW, rt.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return
			}

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(scoreReader(store), rt.ScreenW, rt.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return
			}

		default:
			return
		}
	}
}
