package quantum

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Outcomes maps measurement bitstrings to their probabilities.
type Outcomes map[string]float64

// Outcome is a single bitstring and its probability.
type Outcome struct {
	Bits        string
	Probability float64
}

// Sorted returns the outcomes in ascending bitstring order.
// Bitstrings share one width, so this is also ascending basis-state order.
func (o Outcomes) Sorted() []Outcome {
	out := make([]Outcome, 0, len(o))
	for bits, p := range o {
		out = append(out, Outcome{Bits: bits, Probability: p})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Bits) != len(out[j].Bits) {
			return len(out[i].Bits) < len(out[j].Bits)
		}
		return out[i].Bits < out[j].Bits
	})
	return out
}

// Total returns the summed probability of all outcomes.
func (o Outcomes) Total() float64 {
	ps := make([]float64, 0, len(o))
	for _, p := range o {
		ps = append(ps, p)
	}
	return floats.Sum(ps)
}
