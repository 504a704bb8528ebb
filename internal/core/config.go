package core

import "time"

// DefaultMoveDelay is the pause between automatic moves.
const DefaultMoveDelay = 700 * time.Millisecond

// RuntimeConfig is passed to games when they are reset.
type RuntimeConfig struct {
	ScreenW   int           // Screen width in characters
	ScreenH   int           // Screen height in characters
	MoveDelay time.Duration // Delay between automatic ticks
	Seed      int64         // RNG seed; 0 means derive from the clock in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		MoveDelay: DefaultMoveDelay,
	}
}

// GameState reports game status to the platform.
type GameState struct {
	Score    int  // Steps taken so far
	GameOver bool // The game reached a terminal state
	Won      bool // The terminal state is a win
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
	Moved bool // A direction was sampled and applied this tick
}
