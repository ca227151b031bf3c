package testutil

import (
	"gonum.org/v1/gonum/mathext/prng"
)

// PyRandom reproduces the output of CPython's random module for integer
// seeds, so regression values computed in Python can be checked in Go.
// It is not thread-safe.
type PyRandom struct {
	mt *prng.MT19937
}

// NewPyRandom mirrors random.seed(seed) for a non-negative seed below 2^32.
func NewPyRandom(seed uint32) *PyRandom {
	mt := prng.NewMT19937()
	// CPython seeds through init_by_array with the 32-bit words of |seed|;
	// zero still yields a single zero word.
	mt.SeedFromKeys([]uint32{seed})
	return &PyRandom{mt: mt}
}

// Random mirrors random.random(): 53 random bits scaled into [0, 1).
func (r *PyRandom) Random() float64 {
	a := r.mt.Uint32() >> 5
	b := r.mt.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Uniform mirrors random.uniform(a, b).
func (r *PyRandom) Uniform(a, b float64) float64 {
	return a + (b-a)*r.Random()
}
