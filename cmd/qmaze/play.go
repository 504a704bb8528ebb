package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quantum-maze/internal/core"
	"github.com/vovakirdan/quantum-maze/internal/games/qmaze"
	"github.com/vovakirdan/quantum-maze/internal/maze"
	"github.com/vovakirdan/quantum-maze/internal/platform/tui"
	"github.com/vovakirdan/quantum-maze/internal/registry"
	"github.com/vovakirdan/quantum-maze/internal/storage"
)

var (
	flagPlain bool
	flagAuto  bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Walk a maze",
	Long: `Start a maze. Without a variant, the configured preparation picks one:
"hadamard" plays qmaze, "tilted" plays qmaze_tilted.

Controls:
  Space/N    - Measure the qubits and take one move
  A          - Toggle automatic moves
  P          - Pause
  R          - New maze (after it ends)
  Q/Esc      - Quit

With --plain the maze runs automatically in the plain console, printing the
grid after every move.

Examples:
  qmaze play
  qmaze play qmaze_tilted
  qmaze play --auto --delay 200ms
  qmaze play --plain --seed 7
  qmaze play --difficulty hard --score-log ~/.qmaze/scores.txt`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Run automatically in the plain console")
	playCmd.Flags().BoolVar(&flagAuto, "auto", false, "Start with automatic moves on")
}

func runPlay(_ *cobra.Command, args []string) {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	gameID := qmaze.VariantFor(cfg).ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'qmaze list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID, cfg)
	if err != nil {
		fail("creating game: %v", err)
	}

	rt := runtimeConfig(cfg)
	logger.Debug("starting maze", "game", gameID, "seed", rt.Seed, "size", cfg.Maze.Size,
		"qubits", cfg.Quantum.Qubits, "density", cfg.Maze.WallDensity)

	sinks, store := scoreSinks(logger)
	if store != nil {
		defer store.Close()
	}

	if flagPlain {
		g, ok := game.(*qmaze.Game)
		if !ok {
			fail("variant %q cannot run in plain mode", gameID)
		}
		runPlain(os.Stdout, g, rt, sinks, logger)
		return
	}

	if err := tui.Run(game, sinks, logger, rt, flagAuto); err != nil {
		fail("running game: %v", err)
	}
}

// runPlain walks the maze in the console with a pause between moves.
func runPlain(out io.Writer, g *qmaze.Game, rt core.RuntimeConfig, sink storage.ScoreSink, logger *log.Logger) qmaze.Outcome {
	clearScreen := false
	if f, ok := out.(*os.File); ok {
		clearScreen = term.IsTerminal(int(f.Fd()))
	}

	g.Reset(rt)
	fmt.Fprintln(out, "Welcome to the Quantum Maze!")
	fmt.Fprintf(out, "Each step is chosen by measuring %d qubit(s). Reach E in %d steps.\n\n",
		g.Config().Quantum.Qubits, g.View().MaxSteps)
	printView(out, g.View())

	outcome := qmaze.Run(g, func(f qmaze.Frame) {
		time.Sleep(rt.MoveDelay)
		if clearScreen {
			fmt.Fprint(out, "\033[H\033[2J")
		}
		printView(out, f.View)
		fmt.Fprintf(out, "Qubits choose: %s (%s)\n", f.Choice.Direction, f.Choice.Bits)
	})

	fmt.Fprintln(out)
	switch {
	case outcome.Err != nil:
		fmt.Fprintf(out, "The walk stopped: %v\n", outcome.Err)
	case outcome.Won():
		fmt.Fprintf(out, "Congratulations! You escaped in %d steps.\n", outcome.Steps)
		if err := sink.RecordWin(g.ID(), outcome.Steps); err != nil {
			logger.Warn("could not record score", "game", g.ID(), "steps", outcome.Steps, "error", err)
		}
	default:
		fmt.Fprintf(out, "Out of steps! The maze wins after %d moves.\n", outcome.Steps)
	}
	return outcome
}

func printView(out io.Writer, v maze.View) {
	fmt.Fprintf(out, "Steps: %d/%d\n", v.Steps, v.MaxSteps)
	fmt.Fprintln(out, strings.Join(v.Lines(), "\n"))
}
