package qmaze

import (
	"github.com/vovakirdan/quantum-maze/internal/maze"
	"github.com/vovakirdan/quantum-maze/internal/sampler"
)

// Frame is what the presentation layer receives after each automatic move.
type Frame struct {
	Tick   uint64
	View   maze.View
	Choice sampler.Choice
	Result maze.MoveResult
}

// Outcome is the terminal result of a game.
type Outcome struct {
	Status   maze.Status
	Steps    int
	MaxSteps int
	Err      error // Set when measurement failed and the game stopped early
}

// Won reports whether the player reached the exit.
func (o Outcome) Won() bool {
	return o.Err == nil && o.Status == maze.StatusWon
}

// Run advances g until the maze is won or out of steps, calling onTick
// after every move. Pause state is ignored. onTick may be nil.
// A maze that starts terminal returns immediately without a frame.
// A stalled walk ends with Outcome.Err set to ErrStalled.
func Run(g *Game, onTick func(Frame)) Outcome {
	for !g.finished() {
		err := g.advance()
		g.tick++
		if err != nil {
			g.err = err
			break
		}
		if onTick != nil {
			onTick(Frame{
				Tick:   g.tick,
				View:   g.maze.View(),
				Choice: g.last,
				Result: g.lastResult,
			})
		}
	}
	return g.outcome()
}
