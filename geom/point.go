package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a location in the plane.
type Point = r2.Vec

// SquaredDistance returns the squared Euclidean distance between a and b.
func SquaredDistance(a, b Point) float64 {
	return r2.Norm2(r2.Sub(a, b))
}

// PointSegmentSquaredDistance returns the squared distance from p to the
// closest point of the segment [v1, v2].
//
// The projection parameter is clamped to [0, 1]. A degenerate segment
// (v1 == v2) is treated as the point v1.
func PointSegmentSquaredDistance(p, v1, v2 Point) float64 {
	v := r2.Sub(v2, v1)
	w := r2.Sub(p, v1)

	c1 := r2.Dot(v, w)
	if c1 <= 0 {
		return r2.Norm2(w)
	}

	c2 := r2.Dot(v, v)
	if c1 >= c2 {
		return SquaredDistance(p, v2)
	}

	return SquaredDistance(p, r2.Add(v1, r2.Scale(c1/c2, v)))
}

// IsFinite reports whether both coordinates of p are finite.
func IsFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
