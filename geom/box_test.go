package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox(t *testing.T) {
	b := BoxOf(Point{X: 1, Y: 2}, Point{X: -1, Y: 5}, Point{X: 3, Y: 0})

	assert.Equal(t, Point{X: -1, Y: 0}, b.Min)
	assert.Equal(t, Point{X: 3, Y: 5}, b.Max)
	assert.Equal(t, Point{X: 1, Y: 2.5}, b.Center())
	assert.True(t, b.Contains(Point{X: 3, Y: 5}))
	assert.False(t, b.Contains(Point{X: 3.1, Y: 5}))
}

func TestBox_Empty(t *testing.T) {
	e := EmptyBox()
	assert.True(t, e.IsEmpty())
	assert.False(t, e.Contains(Point{}))
	assert.True(t, math.IsInf(e.SquaredDistanceTo(Point{}), 1))

	single := e.Extend(Point{X: 2, Y: 2})
	assert.False(t, single.IsEmpty())
	assert.True(t, single.Contains(Point{X: 2, Y: 2}))

	u := e.Union(single)
	assert.Equal(t, single, u)
}

func TestBox_Intersects(t *testing.T) {
	a := BoxOf(Point{X: 0, Y: 0}, Point{X: 2, Y: 2})
	b := BoxOf(Point{X: 2, Y: 2}, Point{X: 3, Y: 3})
	c := BoxOf(Point{X: 2.5, Y: 0}, Point{X: 3, Y: 1})

	assert.True(t, a.Intersects(b))
	assert.True(t, b.Intersects(a))
	assert.False(t, a.Intersects(c))
}

func TestBox_SquaredDistanceTo(t *testing.T) {
	b := BoxOf(Point{X: 0, Y: 0}, Point{X: 2, Y: 1})

	tests := []struct {
		name     string
		p        Point
		expected float64
	}{
		{"Inside", Point{X: 1, Y: 0.5}, 0},
		{"Left", Point{X: -2, Y: 0.5}, 4},
		{"Corner", Point{X: 3, Y: 2}, 2},
		{"Below", Point{X: 1, Y: -3}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, b.SquaredDistanceTo(tt.p), 1e-12)
		})
	}
}

func TestBox_LowerBoundsSegments(t *testing.T) {
	v1 := Point{X: 1, Y: 1}
	v2 := Point{X: 4, Y: 3}
	b := BoxOf(v1, v2)

	for i := 0; i < 50; i++ {
		p := Point{X: float64(i%7) - 2, Y: float64(i%5) * 1.3}
		assert.LessOrEqual(t, b.SquaredDistanceTo(p), PointSegmentSquaredDistance(p, v1, v2)+1e-12)
	}
}
