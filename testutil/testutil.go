package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/polygo/geom"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// UniformPoints samples n points uniformly inside box and returns them as
// coordinate slices.
func (r *RNG) UniformPoints(n int, box geom.Box) (xs, ys []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	xs = make([]float64, n)
	ys = make([]float64, n)
	w := box.Max.X - box.Min.X
	h := box.Max.Y - box.Min.Y
	for i := range n {
		xs[i] = box.Min.X + r.rand.Float64()*w
		ys[i] = box.Min.Y + r.rand.Float64()*h
	}
	return xs, ys
}

// StarPolygon returns a closed-ring-free star-shaped polygon with n vertices
// around center. Radii vary randomly in [0.5*radius, radius), which makes
// most results concave.
func (r *RNG) StarPolygon(center geom.Point, radius float64, n int) (xs, ys []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		rad := radius * (0.5 + 0.5*r.rand.Float64())
		xs[i] = center.X + rad*math.Cos(angle)
		ys[i] = center.Y + rad*math.Sin(angle)
	}
	return xs, ys
}

// RegularPolygon returns the vertices of a convex regular polygon.
func RegularPolygon(center geom.Point, radius float64, n int) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		xs[i] = center.X + radius*math.Cos(angle)
		ys[i] = center.Y + radius*math.Sin(angle)
	}
	return xs, ys
}

// Sequence returns [start, start+1, ..., start+n-1].
func Sequence(start, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// RelativeError returns |a-b| / max(|a|, |b|), or 0 when both are 0.
func RelativeError(a, b float64) float64 {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale == 0 {
		return 0
	}
	return math.Abs(a-b) / scale
}
