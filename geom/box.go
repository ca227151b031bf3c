package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Box is an axis-aligned bounding box. A box with Min > Max on either axis
// is empty; EmptyBox returns the canonical empty box, which is the identity
// for Extend and Union.
//
// Unlike r2.Box, a single point is a valid, non-empty Box.
type Box struct {
	Min, Max Point
}

// EmptyBox returns a box that contains nothing.
func EmptyBox() Box {
	return Box{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// BoxOf returns the smallest box containing all points.
func BoxOf(points ...Point) Box {
	b := EmptyBox()
	for _, p := range points {
		b = b.Extend(p)
	}
	return b
}

// IsEmpty reports whether the box contains no point.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Extend returns the smallest box containing b and p.
func (b Box) Extend(p Point) Box {
	return Box{
		Min: Point{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max: Point{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
	}
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(o Box) Box {
	return Box{
		Min: Point{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y)},
		Max: Point{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Contains reports whether p lies inside or on the boundary of b.
func (b Box) Contains(p Point) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y
}

// Intersects reports whether the boxes share at least one point.
func (b Box) Intersects(o Box) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y
}

// Center returns the midpoint of the box.
func (b Box) Center() Point {
	return Point{X: 0.5 * (b.Min.X + b.Max.X), Y: 0.5 * (b.Min.Y + b.Max.Y)}
}

// SquaredDistanceTo returns the squared distance from p to the nearest point
// of the box, or 0 if p is inside. It is a lower bound for the distance from
// p to anything contained in the box. An empty box is infinitely far away.
func (b Box) SquaredDistanceTo(p Point) float64 {
	if b.IsEmpty() {
		return math.Inf(1)
	}

	dx := axisGap(p.X, b.Min.X, b.Max.X)
	dy := axisGap(p.Y, b.Min.Y, b.Max.Y)

	return r2.Norm2(Point{X: dx, Y: dy})
}

func axisGap(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo - v
	case v > hi:
		return v - hi
	default:
		return 0
	}
}
