package testutil

import (
	"math"

	"github.com/hupe1980/polygo/geom"
	"github.com/hupe1980/polygo/store"
)

// NearestVertex returns the ordinal and squared distance of the vertex
// closest to p by scanning every vertex. Ties keep the first vertex; -1 is
// returned for an empty store.
func NearestVertex(s *store.Store, p geom.Point) (int, float64) {
	best, bestD := -1, math.Inf(1)
	for i := 0; i < s.VertexCount(); i++ {
		if d := geom.SquaredDistance(p, s.Vertex(i)); d < bestD {
			best, bestD = i, d
		}
	}
	return best, bestD
}

// NearestEdge returns the squared distance from p to the closest edge,
// including the closing edge of every ring.
func NearestEdge(s *store.Store, p geom.Point) float64 {
	bestD := math.Inf(1)
	for id := 0; id < s.Len(); id++ {
		ring := s.Ring(id)
		for i := range ring {
			d := geom.PointSegmentSquaredDistance(p, ring[i], ring[(i+1)%len(ring)])
			bestD = math.Min(bestD, d)
		}
	}
	return bestD
}

// MinCost returns the minimum of cost(distance, coefficients) over all
// vertices, where distance is the Euclidean distance to p. NaN costs are
// skipped; NaN is returned when no vertex has a comparable cost.
func MinCost(s *store.Store, p geom.Point, cost func(d float64, coefficients []float64) float64) float64 {
	best := math.NaN()
	for i := 0; i < s.VertexCount(); i++ {
		d := math.Sqrt(geom.SquaredDistance(p, s.Vertex(i)))
		c := cost(d, s.Coefficients(i))
		if math.IsNaN(c) {
			continue
		}
		if math.IsNaN(best) || c < best {
			best = c
		}
	}
	return best
}

// Contains reports whether p is inside any polygon without any filtering.
func Contains(s *store.Store, p geom.Point) bool {
	for id := 0; id < s.Len(); id++ {
		if geom.PointInRing(p, s.Ring(id)) {
			return true
		}
	}
	return false
}
