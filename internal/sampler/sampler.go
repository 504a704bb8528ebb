// Package sampler turns an outcome distribution into a movement direction
// with a single weighted random draw.
package sampler

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/vovakirdan/quantum-maze/internal/maze"
	"github.com/vovakirdan/quantum-maze/internal/quantum"
)

var (
	// ErrEmptyDistribution is returned for a mapping with no positive weight.
	ErrEmptyDistribution = errors.New("sampler: empty distribution")

	// ErrNoDirections is returned when there is nothing to choose from.
	ErrNoDirections = errors.New("sampler: no directions")

	// ErrBadOutcome is returned for a malformed bitstring or weight.
	ErrBadOutcome = errors.New("sampler: bad outcome")
)

// Choice is the result of one sampling call.
type Choice struct {
	Bits      string         // Drawn outcome
	Value     uint64         // Bits read as an unsigned binary number
	Direction maze.Direction // Directions[Value mod len(Directions)]
}

// Sampler draws outcomes using an injected uniform source. The same
// source seed yields the same sequence of draws.
type Sampler struct {
	src rand.Source
}

// New creates a sampler over src.
func New(src rand.Source) *Sampler {
	return &Sampler{src: src}
}

// Draw picks one outcome with probability proportional to its weight.
// Outcomes are considered in ascending bitstring order.
func (s *Sampler) Draw(outcomes quantum.Outcomes) (string, error) {
	sorted := outcomes.Sorted()
	if len(sorted) == 0 {
		return "", ErrEmptyDistribution
	}

	weights := make([]float64, len(sorted))
	total := 0.0
	for i, o := range sorted {
		if o.Probability < 0 || math.IsNaN(o.Probability) || math.IsInf(o.Probability, 0) {
			return "", fmt.Errorf("%w: weight %v for %q", ErrBadOutcome, o.Probability, o.Bits)
		}
		if _, err := parseBits(o.Bits); err != nil {
			return "", err
		}
		weights[i] = o.Probability
		total += o.Probability
	}
	if total <= 0 {
		return "", ErrEmptyDistribution
	}

	idx := int(distuv.NewCategorical(weights, s.src).Rand())
	return sorted[idx].Bits, nil
}

// SampleDirection performs exactly one weighted draw and maps the outcome
// to directions[k mod len(directions)], where k is the outcome's value.
// With fewer than len(directions) outcomes some directions are never chosen.
func (s *Sampler) SampleDirection(outcomes quantum.Outcomes, directions []maze.Direction) (Choice, error) {
	if len(directions) == 0 {
		return Choice{}, ErrNoDirections
	}

	bits, err := s.Draw(outcomes)
	if err != nil {
		return Choice{}, err
	}

	k, err := parseBits(bits)
	if err != nil {
		return Choice{}, err
	}

	return Choice{
		Bits:      bits,
		Value:     k,
		Direction: DirectionFor(k, directions),
	}, nil
}

// DirectionFor is the deterministic outcome-to-direction mapping.
func DirectionFor(k uint64, directions []maze.Direction) maze.Direction {
	return directions[k%uint64(len(directions))]
}

func parseBits(bits string) (uint64, error) {
	if bits == "" {
		return 0, fmt.Errorf("%w: empty bitstring", ErrBadOutcome)
	}
	k, err := strconv.ParseUint(bits, 2, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrBadOutcome, bits, err)
	}
	return k, nil
}
