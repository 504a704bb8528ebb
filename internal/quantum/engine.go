// Package quantum simulates a small register of qubits as a state vector and
// exposes the measurement distribution it produces.
//
// Qubit q is bit 1<<q of a basis-state index. Outcome bitstrings are written
// most significant qubit first, so a bitstring read as a binary number is the
// index of its basis state.
package quantum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// MaxQubits bounds the register size; the state vector has 2^n entries.
const MaxQubits = 16

// zeroTolerance is the probability at or below which an outcome is dropped.
const zeroTolerance = 1e-12

var (
	// ErrInvalidQubitIndex is returned when a gate targets a qubit outside [0, n).
	ErrInvalidQubitIndex = errors.New("quantum: invalid qubit index")

	// ErrInvalidQubitCount is returned for a register size outside [0, MaxQubits].
	ErrInvalidQubitCount = errors.New("quantum: invalid qubit count")

	// ErrComputation is returned when probabilities cannot be derived from the state.
	ErrComputation = errors.New("quantum: computation error")
)

// Engine holds the state vector of an n-qubit register.
// It is not safe for concurrent use.
type Engine struct {
	n    int
	amps []complex128
}

// NewEngine creates an engine for n qubits in the |0...0> state.
func NewEngine(n int) (*Engine, error) {
	if n < 0 || n > MaxQubits {
		return nil, fmt.Errorf("%w: %d (allowed 0..%d)", ErrInvalidQubitCount, n, MaxQubits)
	}
	e := &Engine{
		n:    n,
		amps: make([]complex128, 1<<n),
	}
	e.Reset()
	return e, nil
}

// NumQubits returns the register size.
func (e *Engine) NumQubits() int {
	return e.n
}

// Reset discards the current state and returns to |0...0>.
func (e *Engine) Reset() {
	clear(e.amps)
	e.amps[0] = 1
}

// Amplitudes returns a copy of the state vector.
func (e *Engine) Amplitudes() []complex128 {
	out := make([]complex128, len(e.amps))
	copy(out, e.amps)
	return out
}

func (e *Engine) checkQubit(q int) error {
	if q < 0 || q >= e.n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidQubitIndex, q, e.n)
	}
	return nil
}

// apply multiplies every (|..0..>, |..1..>) amplitude pair of qubit q by the
// 2x2 matrix [[m00 m01] [m10 m11]].
func (e *Engine) apply(q int, m00, m01, m10, m11 complex128) error {
	if err := e.checkQubit(q); err != nil {
		return err
	}
	bit := 1 << q
	for i := range e.amps {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a, b := e.amps[i], e.amps[j]
		e.amps[i] = m00*a + m01*b
		e.amps[j] = m10*a + m11*b
	}
	return nil
}

// ApplyHadamard applies H = 1/sqrt2 [[1 1] [1 -1]] to qubit q.
func (e *Engine) ApplyHadamard(q int) error {
	h := complex(1/math.Sqrt2, 0)
	return e.apply(q, h, h, h, -h)
}

// ApplyX applies the Pauli-X (NOT) gate to qubit q.
func (e *Engine) ApplyX(q int) error {
	return e.apply(q, 0, 1, 1, 0)
}

// ApplyRY rotates qubit q by theta radians about the Y axis.
// From |0> the probability of measuring 1 becomes sin^2(theta/2).
func (e *Engine) ApplyRY(q int, theta float64) error {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return e.apply(q, c, -s, s, c)
}

// Probabilities returns the measurement distribution of the current state.
// Outcomes with zero probability are omitted.
func (e *Engine) Probabilities() (Outcomes, error) {
	if e.n == 0 {
		return nil, fmt.Errorf("%w: register has no qubits", ErrComputation)
	}

	probs := make([]float64, len(e.amps))
	for i, a := range e.amps {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}

	total := floats.Sum(probs)
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: state norm is %v", ErrComputation, total)
	}
	floats.Scale(1/total, probs)

	out := make(Outcomes, len(probs))
	for i, p := range probs {
		if p <= zeroTolerance {
			continue
		}
		out[bitstring(i, e.n)] = p
	}
	return out, nil
}

// BlochVector returns the Bloch coordinates of qubit q's reduced state.
// A pure single-qubit state has length 1; entanglement shortens the vector.
func (e *Engine) BlochVector(q int) (Bloch, error) {
	if err := e.checkQubit(q); err != nil {
		return Bloch{}, err
	}

	bit := 1 << q
	var rho00, rho11 float64
	var rho01 complex128
	for i, a := range e.amps {
		if i&bit != 0 {
			continue
		}
		b := e.amps[i|bit]
		rho00 += real(a * cmplx.Conj(a))
		rho11 += real(b * cmplx.Conj(b))
		rho01 += a * cmplx.Conj(b)
	}

	return Bloch{
		X: 2 * real(rho01),
		Y: -2 * imag(rho01),
		Z: rho00 - rho11,
	}, nil
}

// Bloch is a point in or on the unit Bloch sphere.
type Bloch struct {
	X, Y, Z float64
}

// Length returns the Euclidean length of the vector.
func (b Bloch) Length() float64 {
	return floats.Norm([]float64{b.X, b.Y, b.Z}, 2)
}

func bitstring(index, width int) string {
	return fmt.Sprintf("%0*b", width, index)
}
