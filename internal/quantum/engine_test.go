package quantum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestHadamardAllIsUniform(t *testing.T) {
	for n := 1; n <= 8; n++ {
		e, err := NewEngine(n)
		require.NoError(t, err)

		require.NoError(t, HadamardAll{}.Prepare(e))
		probs, err := e.Probabilities()
		require.NoError(t, err)

		want := 1 / float64(int(1)<<n)
		assert.Len(t, probs, 1<<n, "n=%d", n)
		for bits, p := range probs {
			assert.Len(t, bits, n)
			assert.InDelta(t, want, p, tol, "n=%d outcome %s", n, bits)
		}
		assert.InDelta(t, 1.0, probs.Total(), tol)
	}
}

func TestResetReturnsToZeroState(t *testing.T) {
	e, err := NewEngine(3)
	require.NoError(t, err)
	require.NoError(t, e.ApplyHadamard(0))
	require.NoError(t, e.ApplyX(2))

	e.Reset()

	probs, err := e.Probabilities()
	require.NoError(t, err)
	assert.Equal(t, Outcomes{"000": 1}, probs)
}

func TestDoubleHadamardCancels(t *testing.T) {
	e, err := NewEngine(2)
	require.NoError(t, err)

	require.NoError(t, e.ApplyHadamard(1))
	require.NoError(t, e.ApplyHadamard(1))

	probs, err := e.Probabilities()
	require.NoError(t, err)
	require.Len(t, probs, 1)
	assert.InDelta(t, 1.0, probs["00"], tol)
}

func TestBitOrderIsMostSignificantQubitFirst(t *testing.T) {
	e, err := NewEngine(3)
	require.NoError(t, err)
	require.NoError(t, e.ApplyX(0))

	probs, err := e.Probabilities()
	require.NoError(t, err)
	assert.Equal(t, Outcomes{"001": 1}, probs)
}

func TestApplyRY(t *testing.T) {
	e, err := NewEngine(1)
	require.NoError(t, err)

	theta := 2 * math.Asin(math.Sqrt(0.7))
	require.NoError(t, e.ApplyRY(0, theta))

	probs, err := e.Probabilities()
	require.NoError(t, err)
	assert.InDelta(t, 0.3, probs["0"], tol)
	assert.InDelta(t, 0.7, probs["1"], tol)
}

func TestInvalidQubitIndex(t *testing.T) {
	e, err := NewEngine(2)
	require.NoError(t, err)

	for _, q := range []int{-1, 2, 10} {
		assert.ErrorIs(t, e.ApplyHadamard(q), ErrInvalidQubitIndex, "q=%d", q)
		assert.ErrorIs(t, e.ApplyX(q), ErrInvalidQubitIndex, "q=%d", q)
		assert.ErrorIs(t, e.ApplyRY(q, 1), ErrInvalidQubitIndex, "q=%d", q)
		_, err := e.BlochVector(q)
		assert.ErrorIs(t, err, ErrInvalidQubitIndex, "q=%d", q)
	}

	// A rejected gate leaves the state alone
	probs, err := e.Probabilities()
	require.NoError(t, err)
	assert.Equal(t, Outcomes{"00": 1}, probs)
}

func TestZeroQubitComputationError(t *testing.T) {
	e, err := NewEngine(0)
	require.NoError(t, err)

	_, err = e.Probabilities()
	assert.ErrorIs(t, err, ErrComputation)
	assert.ErrorIs(t, e.ApplyHadamard(0), ErrInvalidQubitIndex)
}

func TestNewEngineRejectsBadCounts(t *testing.T) {
	_, err := NewEngine(-1)
	assert.ErrorIs(t, err, ErrInvalidQubitCount)

	_, err = NewEngine(MaxQubits + 1)
	assert.ErrorIs(t, err, ErrInvalidQubitCount)
}

func TestDeterministicAmplitudes(t *testing.T) {
	build := func() []complex128 {
		e, err := NewEngine(3)
		require.NoError(t, err)
		require.NoError(t, e.ApplyHadamard(0))
		require.NoError(t, e.ApplyRY(1, 0.4))
		require.NoError(t, e.ApplyX(2))
		return e.Amplitudes()
	}
	assert.Equal(t, build(), build())
}

func TestBlochVector(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(e *Engine) error
		want    Bloch
	}{
		{
			name:    "zero state points up",
			prepare: func(e *Engine) error { return nil },
			want:    Bloch{Z: 1},
		},
		{
			name:    "one state points down",
			prepare: func(e *Engine) error { return e.ApplyX(0) },
			want:    Bloch{Z: -1},
		},
		{
			name:    "plus state on the X axis",
			prepare: func(e *Engine) error { return e.ApplyHadamard(0) },
			want:    Bloch{X: 1},
		},
		{
			name:    "RY quarter turn also lands on X",
			prepare: func(e *Engine) error { return e.ApplyRY(0, math.Pi/2) },
			want:    Bloch{X: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, err := NewEngine(2)
			require.NoError(t, err)
			require.NoError(t, tc.prepare(e))

			got, err := e.BlochVector(0)
			require.NoError(t, err)
			assert.InDelta(t, tc.want.X, got.X, tol)
			assert.InDelta(t, tc.want.Y, got.Y, tol)
			assert.InDelta(t, tc.want.Z, got.Z, tol)
			assert.InDelta(t, 1.0, got.Length(), tol)

			// The untouched qubit stays at |0>
			other, err := e.BlochVector(1)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, other.Z, tol)
		})
	}
}
