package geom

import "gonum.org/v1/gonum/spatial/r2"

// PointInRing reports whether p lies inside the closed ring using the
// even-odd ray casting rule. The ring may or may not repeat its first point
// at the end; a repeated point contributes a zero-length edge that never
// crosses the ray.
//
// See the package documentation for the boundary policy.
func PointInRing(p Point, ring []Point) bool {
	inside := false

	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}

	return inside
}

// Centroid returns the average of the ring vertices. If the ring repeats its
// first point at the end, the duplicate is ignored.
func Centroid(ring []Point) Point {
	n := len(ring)
	if n == 0 {
		return Point{}
	}
	if n > 1 && ring[0] == ring[n-1] {
		n--
	}

	var sum Point
	for _, v := range ring[:n] {
		sum = r2.Add(sum, v)
	}

	return r2.Scale(1/float64(n), sum)
}
