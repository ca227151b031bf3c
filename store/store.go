package store

import (
	"fmt"
	"math"

	"github.com/hupe1980/polygo/geom"
	"github.com/hupe1980/polygo/internal/conv"
)

// MinPoints is the smallest vertex count accepted for a polygon.
const MinPoints = 3

type polygon struct {
	start, end int // vertex ordinal range [start, end)
	bounds     geom.Box
}

// Store is an append-only collection of polygons.
//
// Store is not safe for concurrent mutation. Reads are safe once no more
// polygons are added.
type Store struct {
	k            int
	polygons     []polygon
	vertices     []geom.Point
	tags         []int
	coefficients []float64 // k values per vertex
}

// New creates an empty store whose vertices carry k coefficients each.
// k == 0 disables coefficients.
func New(k int) (*Store, error) {
	if k < 0 {
		return nil, ErrNegativeArity
	}
	return &Store{k: k}, nil
}

// Add validates and appends a polygon and returns its id.
//
// xs, ys and tags must have the same length of at least MinPoints. When the
// store carries coefficients, coefficients must hold k values per vertex;
// otherwise it is ignored. On error the store is left unchanged.
func (s *Store) Add(xs, ys []float64, tags []int, coefficients []float64) (int, error) {
	n := len(xs)
	if len(ys) != n {
		return 0, &ErrLengthMismatch{Field: "ys", Expected: n, Actual: len(ys)}
	}
	if len(tags) != n {
		return 0, &ErrLengthMismatch{Field: "tags", Expected: n, Actual: len(tags)}
	}
	if n < MinPoints {
		return 0, &ErrTooFewPoints{Count: n}
	}
	if s.k > 0 && len(coefficients) != s.k*n {
		return 0, &ErrLengthMismatch{Field: "coefficients", Expected: s.k * n, Actual: len(coefficients)}
	}
	for i := range xs {
		if !geom.IsFinite(geom.Point{X: xs[i], Y: ys[i]}) {
			return 0, &ErrInvalidCoordinate{Position: i}
		}
	}
	if s.k > 0 {
		for i, c := range coefficients {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return 0, &ErrInvalidCoefficient{Position: i / s.k, Index: i % s.k}
			}
		}
	}
	// Indexes address vertices with int32 ordinals.
	if _, err := conv.IntToInt32(len(s.vertices) + n); err != nil {
		return 0, fmt.Errorf("%w: too many vertices: %w", ErrInvalidArgument, err)
	}

	start := len(s.vertices)
	bounds := geom.EmptyBox()
	for i := range xs {
		p := geom.Point{X: xs[i], Y: ys[i]}
		s.vertices = append(s.vertices, p)
		bounds = bounds.Extend(p)
	}
	s.tags = append(s.tags, tags...)
	if s.k > 0 {
		s.coefficients = append(s.coefficients, coefficients...)
	}

	s.polygons = append(s.polygons, polygon{start: start, end: len(s.vertices), bounds: bounds})

	return len(s.polygons) - 1, nil
}

// CoefficientsPerPoint returns the configured coefficient arity.
func (s *Store) CoefficientsPerPoint() int { return s.k }

// Len returns the number of polygons.
func (s *Store) Len() int { return len(s.polygons) }

// VertexCount returns the number of vertices over all polygons.
func (s *Store) VertexCount() int { return len(s.vertices) }

// Ring returns the vertices of polygon id. The slice aliases store memory
// and must not be modified.
func (s *Store) Ring(id int) []geom.Point {
	p := s.polygons[id]
	return s.vertices[p.start:p.end:p.end]
}

// Bounds returns the bounding box of polygon id, computed when it was added.
func (s *Store) Bounds(id int) geom.Box { return s.polygons[id].bounds }

// VertexRange returns the ordinal range [start, end) of polygon id.
func (s *Store) VertexRange(id int) (start, end int) {
	p := s.polygons[id]
	return p.start, p.end
}

// Vertex returns the vertex with the given ordinal.
func (s *Store) Vertex(ordinal int) geom.Point { return s.vertices[ordinal] }

// Tag returns the caller tag of the vertex with the given ordinal.
func (s *Store) Tag(ordinal int) int { return s.tags[ordinal] }

// Coefficients returns the coefficient slice of the vertex with the given
// ordinal, or nil when the store carries no coefficients.
func (s *Store) Coefficients(ordinal int) []float64 {
	if s.k == 0 {
		return nil
	}
	lo := ordinal * s.k
	return s.coefficients[lo : lo+s.k : lo+s.k]
}

// Reset drops all polygons and releases the backing memory.
func (s *Store) Reset() {
	s.polygons = nil
	s.vertices = nil
	s.tags = nil
	s.coefficients = nil
}
