package config

import (
	_ "embed"
)

//go:embed defaults/qmaze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the built-in configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Maze: MazeSettings{
			Size:        6,
			WallDensity: 0.25,
		},
		Quantum: QuantumSettings{
			Qubits:      2,
			Preparation: "hadamard",
			// P(1) = 0.7 on qubit 0 favours D and R; qubit 1 stays fair
			TiltAngles: []float64{1.9823131728623846, 1.5707963267948966},
		},
		Pacing: PacingSettings{
			MoveDelayMS: 700,
		},
	}
}
