package nn

import (
	"math/rand"
)

// uniformWeight draws an initial parameter value from U[-1, 1).
//
// The exact distribution is an implementation choice, not a correctness
// constraint; it only has to break symmetry between neurons.
func uniformWeight() float64 {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return rand.Float64()*2 - 1
}
