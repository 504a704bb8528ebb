package qmaze

import (
	"github.com/vovakirdan/quantum-maze/internal/core"
	"github.com/vovakirdan/quantum-maze/internal/maze"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Seed      int64
	Status    maze.Status
	Player    core.Point
	Steps     int
	MaxSteps  int
	Walls     int
	LastBits  string
	LastDir   maze.Direction
	HasChoice bool
	Paused    bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Seed:      g.rt.Seed,
		Status:    g.Status(),
		LastBits:  g.last.Bits,
		LastDir:   g.last.Direction,
		HasChoice: g.hasLast,
		Paused:    g.paused,
	}
	if g.maze != nil {
		s.Player = g.maze.Player()
		s.Steps = g.maze.Steps()
		s.MaxSteps = g.maze.MaxSteps()
		s.Walls = g.maze.WallCount()
	}
	return s
}
