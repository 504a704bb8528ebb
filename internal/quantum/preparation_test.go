package quantum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreparedHadamard(t *testing.T) {
	probs, err := Prepared(2, HadamardAll{})
	require.NoError(t, err)

	sorted := probs.Sorted()
	require.Len(t, sorted, 4)
	for i, want := range []string{"00", "01", "10", "11"} {
		assert.Equal(t, want, sorted[i].Bits)
		assert.InDelta(t, 0.25, sorted[i].Probability, tol)
	}
}

func TestPreparedTilted(t *testing.T) {
	theta := 2 * math.Asin(math.Sqrt(0.7))
	probs, err := Prepared(2, Tilted{Angles: []float64{theta}})
	require.NoError(t, err)

	// Qubit 0 is biased toward 1, qubit 1 defaults to a fair coin
	assert.InDelta(t, 0.15, probs["00"], tol)
	assert.InDelta(t, 0.35, probs["01"], tol)
	assert.InDelta(t, 0.15, probs["10"], tol)
	assert.InDelta(t, 0.35, probs["11"], tol)
	assert.InDelta(t, 1.0, probs.Total(), tol)
}

func TestTiltedZeroAngleDropsOutcomes(t *testing.T) {
	probs, err := Prepared(2, Tilted{Angles: []float64{0, 0}})
	require.NoError(t, err)
	assert.Equal(t, Outcomes{"00": 1}, probs)
}

func TestPreparedZeroQubits(t *testing.T) {
	_, err := Prepared(0, HadamardAll{})
	assert.ErrorIs(t, err, ErrComputation)
}

func TestPreparationByName(t *testing.T) {
	p, err := PreparationByName("", nil)
	require.NoError(t, err)
	assert.Equal(t, "hadamard", p.Name())

	p, err = PreparationByName("tilted", []float64{1})
	require.NoError(t, err)
	assert.Equal(t, Tilted{Angles: []float64{1}}, p)

	_, err = PreparationByName("teleport", nil)
	assert.Error(t, err)
}
