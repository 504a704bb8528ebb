package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-maze/internal/platform/tui"
)

var flagStatic bool

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Show the prepared qubits",
	Long: `Show, for each maze variant, the probability of every measurement
outcome and the Bloch vector of every qubit after preparation.

Examples:
  qmaze visualize
  qmaze visualize --static
  qmaze visualize --config ./five-qubits.yaml`,
	Run: runVisualize,
}

func init() {
	visualizeCmd.Flags().BoolVar(&flagStatic, "static", false, "Print once instead of opening the viewer")
}

func runVisualize(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	sources, err := tui.QubitSources(cfg)
	if err != nil {
		fail("%v", err)
	}

	if !flagStatic {
		rt := runtimeConfig(cfg)
		if _, err := tui.RunVisualizer(sources, rt.ScreenW, rt.ScreenH); err != nil {
			fail("%v", err)
		}
		return
	}

	for _, src := range sources {
		fmt.Println(src.Title())
		fmt.Println()
		dist, err := src.Distribution()
		if err != nil {
			fail("%v", err)
		}
		fmt.Print(tui.RenderDistribution(dist, 30))
		fmt.Println()
		vectors, err := src.BlochVectors()
		if err != nil {
			fail("%v", err)
		}
		fmt.Print(tui.RenderBloch(vectors))
		fmt.Println()
	}
}
