package tests

import (
	"math/rand/v2"
)

// Randomizer yields reproducible samples for probabilistic tests.
type Randomizer struct {
	Float64 func() float64
	IntN    func(n int) int
}

func NewRandomizer(seed uint64) Randomizer {
	random := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		IntN:    random.IntN,
	}
}

// Sequence returns a sampler that replays values in order and then keeps
// returning the last one.
func Sequence(values ...float64) func() float64 {
	var i int

	return func() float64 {
		v := values[min(i, len(values)-1)]
		i++

		return v
	}
}
