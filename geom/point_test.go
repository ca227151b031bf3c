package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaredDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected float64
	}{
		{"Same", Point{X: 1, Y: 2}, Point{X: 1, Y: 2}, 0},
		{"Axis", Point{X: 0, Y: 0}, Point{X: 3, Y: 0}, 9},
		{"Pythagoras", Point{X: 0, Y: 0}, Point{X: 3, Y: 4}, 25},
		{"Negative", Point{X: -1, Y: -1}, Point{X: 1, Y: 1}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SquaredDistance(tt.a, tt.b), 1e-12)
		})
	}
}

func TestPointSegmentSquaredDistance(t *testing.T) {
	v1 := Point{X: 0, Y: 0}
	v2 := Point{X: 2, Y: 0}

	tests := []struct {
		name     string
		p        Point
		expected float64
	}{
		{"Above interior", Point{X: 1, Y: 1}, 1},
		{"On segment", Point{X: 1.5, Y: 0}, 0},
		{"Before start", Point{X: -1, Y: 0}, 1},
		{"Past end", Point{X: 3, Y: 1}, 2},
		{"At start", Point{X: 0, Y: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PointSegmentSquaredDistance(tt.p, v1, v2), 1e-12)
			// Direction of the segment must not matter.
			assert.InDelta(t, tt.expected, PointSegmentSquaredDistance(tt.p, v2, v1), 1e-12)
		})
	}
}

func TestPointSegmentSquaredDistance_Degenerate(t *testing.T) {
	v := Point{X: 1, Y: 1}
	d := PointSegmentSquaredDistance(Point{X: 4, Y: 5}, v, v)

	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, 25.0, d, 1e-12)
}

func TestPointSegmentDistanceNeverExceedsEndpoints(t *testing.T) {
	v1 := Point{X: -2, Y: 1}
	v2 := Point{X: 3, Y: -4}

	for i := 0; i < 100; i++ {
		p := Point{X: math.Sin(float64(i)) * 10, Y: math.Cos(float64(i)*1.7) * 10}
		d := PointSegmentSquaredDistance(p, v1, v2)
		assert.LessOrEqual(t, d, SquaredDistance(p, v1)+1e-12)
		assert.LessOrEqual(t, d, SquaredDistance(p, v2)+1e-12)
	}
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(Point{X: 1, Y: -1}))
	assert.False(t, IsFinite(Point{X: math.NaN(), Y: 0}))
	assert.False(t, IsFinite(Point{X: 0, Y: math.Inf(-1)}))
}
