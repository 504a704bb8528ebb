// qmaze is a terminal maze walked by qubits: every move is picked by
// measuring a small simulated quantum register.
//
// Usage:
//
//	qmaze list               - List maze variants
//	qmaze play [variant]     - Walk a maze
//	qmaze menu               - Interactive menu
//	qmaze visualize          - Show the prepared qubits
//	qmaze scores [variant]   - Show the best runs
//
// Global flags:
//
//	--seed <value>       - RNG seed for a reproducible maze and walk
//	--db <path>          - Score database (default: ~/.qmaze/scores.db)
//	--delay <duration>   - Pause between automatic moves
//	--score-log <path>   - Also append finished mazes to a text file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quantum-maze/internal/config"
	"github.com/vovakirdan/quantum-maze/internal/core"
	"github.com/vovakirdan/quantum-maze/internal/platform/tui"
	"github.com/vovakirdan/quantum-maze/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/quantum-maze/internal/games/qmaze"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagDelay      time.Duration
	flagScoreLog   string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "qmaze",
	Short: "Quantum Maze - a maze walked by qubits",
	Long: `Quantum Maze puts a player in the top-left corner of a random maze.
Each move is chosen by preparing a small qubit register, measuring it and
mapping the outcome k to one of Up, Down, Left, Right (k mod 4).
Reach the exit in the bottom-right corner before the steps run out.

Available commands:
  list       - Show the maze variants
  play       - Walk a maze directly
  menu       - Interactive menu
  visualize  - Show outcome probabilities and Bloch vectors
  scores     - View the best runs

Examples:
  qmaze play
  qmaze play qmaze_tilted --auto
  qmaze play --plain --seed 42
  qmaze menu --difficulty hard
  qmaze scores`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.qmaze/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().DurationVar(&flagDelay, "delay", 0, "Delay between automatic moves (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagScoreLog, "score-log", "", "Append finished mazes to this text file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(visualizeCmd)
	rootCmd.AddCommand(scoresCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the stderr logger shared by all commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "qmaze",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig reads the maze config and applies the difficulty preset.
func loadConfig() (config.MazeConfig, error) {
	cfg, err := config.LoadMaze(flagConfig)
	if err != nil {
		return config.MazeConfig{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.MazeConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.MazeConfig{}, err
	}
	return cfg, nil
}

// runtimeConfig builds the runtime settings from the terminal and flags.
func runtimeConfig(cfg config.MazeConfig) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	delay := flagDelay
	if delay <= 0 {
		delay = time.Duration(cfg.Pacing.MoveDelayMS) * time.Millisecond
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		MoveDelay: delay,
		Seed:      seed,
	}
}

// scoreSinks opens the score database and the optional text log.
// Either may fail; the game still runs and the failure is logged.
// The returned store is nil when the database could not be opened.
func scoreSinks(logger *log.Logger) (storage.MultiSink, *storage.Store) {
	var sinks storage.MultiSink

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	} else {
		sinks = append(sinks, store)
	}

	if flagScoreLog != "" {
		textLog, err := storage.OpenTextLog(flagScoreLog)
		if err != nil {
			logger.Warn("could not open score log", "path", flagScoreLog, "error", err)
		} else {
			sinks = append(sinks, textLog)
		}
	}

	return sinks, store
}

// scoreReader returns store as a tui reader, or a true nil without one.
func scoreReader(store *storage.Store) tui.ScoreReader {
	if store == nil {
		return nil
	}
	return store
}
