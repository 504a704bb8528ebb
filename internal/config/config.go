// Package config provides YAML-based configuration loading and difficulty
// presets for the quantum maze.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/quantum-maze/internal/maze"
	"github.com/vovakirdan/quantum-maze/internal/quantum"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// MazeConfig contains all configuration for a quantum maze game.
type MazeConfig struct {
	Maze    MazeSettings    `yaml:"maze"`
	Quantum QuantumSettings `yaml:"quantum"`
	Pacing  PacingSettings  `yaml:"pacing"`
}

// MazeSettings defines the grid.
type MazeSettings struct {
	Size        int     `yaml:"size"`
	WallDensity float64 `yaml:"wall_density"` // Probability that a cell is a wall
	// Layout is an optional fixed grid, one string per row: '#' wall,
	// '.' floor, 'E' exit. When set, size and wall_density are ignored.
	Layout []string `yaml:"layout,omitempty"`
}

// QuantumSettings defines the register that picks directions.
type QuantumSettings struct {
	Qubits      int       `yaml:"qubits"`
	Preparation string    `yaml:"preparation"` // "hadamard" or "tilted"
	TiltAngles  []float64 `yaml:"tilt_angles"` // RY angle per qubit for "tilted"
}

// PacingSettings defines presentation timing.
type PacingSettings struct {
	MoveDelayMS int `yaml:"move_delay_ms"`
}

// Validate rejects settings the game cannot run with. Values are never
// clamped.
func (c MazeConfig) Validate() error {
	if len(c.Maze.Layout) > 0 {
		if _, err := maze.FromLayout(c.Maze.Layout); err != nil {
			return fmt.Errorf("%w: maze.layout: %v", ErrInvalidConfig, err)
		}
	}
	if c.Maze.Size < 1 {
		return fmt.Errorf("%w: maze.size must be >= 1, got %d", ErrInvalidConfig, c.Maze.Size)
	}
	d := c.Maze.WallDensity
	if math.IsNaN(d) || d < 0 || d > 1 {
		return fmt.Errorf("%w: maze.wall_density must be in [0, 1], got %v", ErrInvalidConfig, d)
	}
	if c.Quantum.Qubits < 1 || c.Quantum.Qubits > quantum.MaxQubits {
		return fmt.Errorf("%w: quantum.qubits must be in [1, %d], got %d",
			ErrInvalidConfig, quantum.MaxQubits, c.Quantum.Qubits)
	}
	if _, err := quantum.PreparationByName(c.Quantum.Preparation, c.Quantum.TiltAngles); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Pacing.MoveDelayMS < 0 {
		return fmt.Errorf("%w: pacing.move_delay_ms must be >= 0, got %d", ErrInvalidConfig, c.Pacing.MoveDelayMS)
	}
	return nil
}

// Preparation returns the configured quantum preparation.
func (c MazeConfig) Preparation() (quantum.Preparation, error) {
	return quantum.PreparationByName(c.Quantum.Preparation, c.Quantum.TiltAngles)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset adjusts the maze size and wall density for a preset.
// Bigger mazes also get a bigger step budget, since max steps is 2*size^2.
func ApplyPreset(cfg *MazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Maze.Size = 5
		cfg.Maze.WallDensity = 0.15
	case DifficultyNormal:
		cfg.Maze.Size = 6
		cfg.Maze.WallDensity = 0.25
	case DifficultyHard:
		cfg.Maze.Size = 8
		cfg.Maze.WallDensity = 0.35
	}
}
