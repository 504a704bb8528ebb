package quantum

import (
	"fmt"
	"math"
)

// Preparation is a gate sequence applied to a freshly reset engine.
type Preparation interface {
	Name() string
	Prepare(e *Engine) error
}

// HadamardAll puts every qubit into equal superposition, giving a uniform
// distribution over all 2^n outcomes.
type HadamardAll struct{}

// Name returns the preparation identifier.
func (HadamardAll) Name() string { return "hadamard" }

// Prepare applies one Hadamard to each qubit.
func (HadamardAll) Prepare(e *Engine) error {
	for q := range e.NumQubits() {
		if err := e.ApplyHadamard(q); err != nil {
			return err
		}
	}
	return nil
}

// Tilted rotates each qubit about Y by its own angle. Qubits without an
// angle get pi/2, which is a fair coin.
type Tilted struct {
	Angles []float64
}

// Name returns the preparation identifier.
func (Tilted) Name() string { return "tilted" }

// Prepare applies one RY rotation to each qubit.
func (t Tilted) Prepare(e *Engine) error {
	for q := range e.NumQubits() {
		theta := math.Pi / 2
		if q < len(t.Angles) {
			theta = t.Angles[q]
		}
		if err := e.ApplyRY(q, theta); err != nil {
			return err
		}
	}
	return nil
}

// PreparationByName resolves a configured preparation name.
func PreparationByName(name string, angles []float64) (Preparation, error) {
	switch name {
	case "", "hadamard":
		return HadamardAll{}, nil
	case "tilted":
		return Tilted{Angles: angles}, nil
	default:
		return nil, fmt.Errorf("quantum: unknown preparation %q", name)
	}
}

// Prepared builds an n-qubit register, applies prep and returns the outcome
// distribution.
func Prepared(n int, prep Preparation) (Outcomes, error) {
	e, err := NewEngine(n)
	if err != nil {
		return nil, err
	}
	if err := prep.Prepare(e); err != nil {
		return nil, fmt.Errorf("quantum: prepare %s: %w", prep.Name(), err)
	}
	return e.Probabilities()
}
