package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointInRing(t *testing.T) {
	square := []Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	closed := append(append([]Point(nil), square...), square[0])

	// An L shape exercises a concave ring.
	ell := []Point{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 1},
		{X: 1, Y: 1}, {X: 1, Y: 4}, {X: 0, Y: 4},
	}

	tests := []struct {
		name     string
		ring     []Point
		p        Point
		expected bool
	}{
		{"Square inside", square, Point{X: 2, Y: 2}, true},
		{"Square outside", square, Point{X: 5, Y: 2}, false},
		{"Square below", square, Point{X: 2, Y: -1}, false},
		{"Closed ring inside", closed, Point{X: 1, Y: 3}, true},
		{"Closed ring outside", closed, Point{X: -1, Y: 3}, false},
		{"Concave inside arm", ell, Point{X: 3, Y: 0.5}, true},
		{"Concave notch", ell, Point{X: 3, Y: 3}, false},
		{"Concave other arm", ell, Point{X: 0.5, Y: 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PointInRing(tt.p, tt.ring))
		})
	}
}

func TestPointInRing_Empty(t *testing.T) {
	assert.False(t, PointInRing(Point{X: 0, Y: 0}, nil))
}

func TestCentroid(t *testing.T) {
	tri := []Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 3}}
	c := Centroid(tri)
	assert.InDelta(t, 1.0, c.X, 1e-12)
	assert.InDelta(t, 1.0, c.Y, 1e-12)

	closed := append(append([]Point(nil), tri...), tri[0])
	assert.Equal(t, c, Centroid(closed))
	assert.True(t, PointInRing(c, closed))
}
