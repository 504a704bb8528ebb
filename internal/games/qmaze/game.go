// Package qmaze implements the quantum maze: a player walks a random maze
// one cell at a time, and every direction is picked by measuring a small
// simulated qubit register.
package qmaze

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/quantum-maze/internal/config"
	"github.com/vovakirdan/quantum-maze/internal/core"
	"github.com/vovakirdan/quantum-maze/internal/maze"
	"github.com/vovakirdan/quantum-maze/internal/quantum"
	"github.com/vovakirdan/quantum-maze/internal/registry"
	"github.com/vovakirdan/quantum-maze/internal/sampler"
)

const (
	// pcgStream is the fixed PCG stream selector; the seed picks the state.
	pcgStream = 0x9e3779b97f4a7c15

	// maxEdgeRetries bounds consecutive off-grid draws. Edge bumps cost no
	// step, so a register that always points off the grid would never end.
	maxEdgeRetries = 10000
)

// ErrStalled is set when the register keeps choosing off-grid moves.
var ErrStalled = errors.New("qmaze: walk stalled against the edge")

// Variant selects how the register is prepared before each measurement.
type Variant struct {
	ID    string
	Title string
	// Tilted uses per-qubit RY rotations from the config instead of
	// Hadamards on every qubit.
	Tilted bool
}

var (
	// VariantUniform measures after a Hadamard on every qubit.
	VariantUniform = Variant{ID: "qmaze", Title: "Quantum Maze"}
	// VariantTilted measures after configured RY rotations, biasing the walk.
	VariantTilted = Variant{ID: "qmaze_tilted", Title: "Quantum Maze (Tilted)", Tilted: true}
)

// VariantFor returns the variant matching the configured preparation.
func VariantFor(cfg config.MazeConfig) Variant {
	if cfg.Quantum.Preparation == "tilted" {
		return VariantTilted
	}
	return VariantUniform
}

func init() {
	for _, v := range []Variant{VariantUniform, VariantTilted} {
		registry.Register(v.ID, v.Title, func(cfg config.MazeConfig) (registry.Game, error) {
			return New(cfg, v)
		})
	}
}

// Game is one quantum maze session. It owns the maze, the register and the
// random source shared by maze generation and measurement.
type Game struct {
	cfg     config.MazeConfig
	variant Variant
	prep    quantum.Preparation

	rt      core.RuntimeConfig
	rng     *rand.Rand
	sampler *sampler.Sampler
	engine  *quantum.Engine
	maze    *maze.Maze

	tick       uint64
	edgeRun    int
	paused     bool
	last       sampler.Choice
	hasLast    bool
	lastResult maze.MoveResult
	err        error
}

// New validates cfg and creates a game. Reset must be called before Step.
func New(cfg config.MazeConfig, v Variant) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var prep quantum.Preparation = quantum.HadamardAll{}
	if v.Tilted {
		prep = quantum.Tilted{Angles: append([]float64(nil), cfg.Quantum.TiltAngles...)}
	}

	engine, err := quantum.NewEngine(cfg.Quantum.Qubits)
	if err != nil {
		return nil, fmt.Errorf("qmaze: %w", err)
	}

	g := &Game{
		cfg:     cfg,
		variant: v,
		prep:    prep,
		engine:  engine,
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.variant.ID }

// Title returns the display name.
func (g *Game) Title() string { return g.variant.Title }

// Preparation returns the register preparation used before each move.
func (g *Game) Preparation() quantum.Preparation { return g.prep }

// Config returns the configuration the game was built with.
func (g *Game) Config() config.MazeConfig { return g.cfg }

// Reset builds a fresh maze from cfg.Seed. Equal seeds give equal games.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	src := rand.NewPCG(uint64(cfg.Seed), pcgStream)
	g.rng = rand.New(src)
	g.sampler = sampler.New(src)

	g.tick = 0
	g.edgeRun = 0
	g.paused = false
	g.last = sampler.Choice{}
	g.hasLast = false
	g.lastResult = maze.MoveIgnored
	g.err = nil

	// Validated in New, so only a nil source could fail here
	m, err := g.buildMaze()
	if err != nil {
		g.err = fmt.Errorf("qmaze: build maze: %w", err)
		return
	}
	g.maze = m
}

// buildMaze uses the fixed layout when one is configured.
func (g *Game) buildMaze() (*maze.Maze, error) {
	if len(g.cfg.Maze.Layout) > 0 {
		return maze.FromLayout(g.cfg.Maze.Layout)
	}
	return maze.New(g.cfg.Maze.Size, g.cfg.Maze.WallDensity, g.rng)
}

// Step advances the game by at most one move. A move is taken only when
// the input carries ActionAdvance and the game is running.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.finished() {
		g.Reset(core.RuntimeConfig{
			ScreenW:   g.rt.ScreenW,
			ScreenH:   g.rt.ScreenH,
			MoveDelay: g.rt.MoveDelay,
			Seed:      g.rng.Int64(),
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.finished() {
		g.paused = !g.paused
	}

	if g.finished() || g.paused || !input.Has(core.ActionAdvance) {
		return core.StepResult{State: g.State()}
	}

	if err := g.advance(); err != nil {
		g.err = err
		return core.StepResult{State: g.State()}
	}
	return core.StepResult{State: g.State(), Moved: true}
}

// advance prepares the register, measures once and applies the move.
func (g *Game) advance() error {
	g.engine.Reset()
	if err := g.prep.Prepare(g.engine); err != nil {
		return fmt.Errorf("qmaze: prepare: %w", err)
	}
	outcomes, err := g.engine.Probabilities()
	if err != nil {
		return fmt.Errorf("qmaze: measure: %w", err)
	}
	choice, err := g.sampler.SampleDirection(outcomes, maze.Directions)
	if err != nil {
		return fmt.Errorf("qmaze: sample: %w", err)
	}

	g.last = choice
	g.hasLast = true
	g.lastResult = g.maze.ApplyMove(choice.Direction)
	if g.lastResult != maze.MoveBlockedByEdge {
		g.edgeRun = 0
		return nil
	}
	g.edgeRun++
	if g.edgeRun >= maxEdgeRetries {
		return ErrStalled
	}
	return nil
}

// finished reports whether no further moves can happen.
func (g *Game) finished() bool {
	return g.err != nil || g.maze == nil || g.maze.Status().Terminal()
}

// State returns the current game state. Score is the step count.
func (g *Game) State() core.GameState {
	if g.maze == nil {
		return core.GameState{GameOver: true}
	}
	status := g.maze.Status()
	return core.GameState{
		Score:    g.maze.Steps(),
		GameOver: g.finished(),
		Won:      g.err == nil && status == maze.StatusWon,
		Paused:   g.paused,
	}
}

// Err returns the error that stopped the game, if any.
func (g *Game) Err() error { return g.err }

// Status returns the maze status.
func (g *Game) Status() maze.Status {
	if g.maze == nil {
		return maze.StatusExhausted
	}
	return g.maze.Status()
}

// View returns a snapshot of the maze for rendering.
func (g *Game) View() maze.View {
	if g.maze == nil {
		return maze.View{}
	}
	return g.maze.View()
}

// LastChoice returns the most recent measurement, if a move was taken.
func (g *Game) LastChoice() (sampler.Choice, maze.MoveResult, bool) {
	return g.last, g.lastResult, g.hasLast
}

// Distribution returns the outcome distribution after this game's
// preparation, computed on a separate register.
func (g *Game) Distribution() (quantum.Outcomes, error) {
	return quantum.Prepared(g.cfg.Quantum.Qubits, g.prep)
}

// BlochVectors returns the Bloch vector of every qubit after preparation.
func (g *Game) BlochVectors() ([]quantum.Bloch, error) {
	e, err := quantum.NewEngine(g.cfg.Quantum.Qubits)
	if err != nil {
		return nil, err
	}
	if err := g.prep.Prepare(e); err != nil {
		return nil, err
	}
	vectors := make([]quantum.Bloch, e.NumQubits())
	for q := range vectors {
		if vectors[q], err = e.BlochVector(q); err != nil {
			return nil, err
		}
	}
	return vectors, nil
}

// ErrNotFinished is returned by Result before the maze is terminal.
var ErrNotFinished = errors.New("qmaze: game not finished")

// Result returns the outcome of a finished game.
func (g *Game) Result() (Outcome, error) {
	if !g.finished() {
		return Outcome{}, ErrNotFinished
	}
	return g.outcome(), nil
}

func (g *Game) outcome() Outcome {
	o := Outcome{Status: g.Status(), Err: g.err}
	if g.maze != nil {
		o.Steps = g.maze.Steps()
		o.MaxSteps = g.maze.MaxSteps()
	}
	return o
}
