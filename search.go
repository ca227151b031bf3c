package polygo

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/polygo/geom"
	"github.com/hupe1980/polygo/internal/conv"
	"github.com/hupe1980/polygo/spatial"
)

// Query names reported to loggers and metrics collectors.
const (
	QueryContainsPoints        = "contains_points"
	QueryContainedPoints       = "contained_points"
	QueryDistancesToEdges      = "distances_to_edges"
	QueryDistancesToVertices   = "distances_to_vertices"
	QueryClosestVertexTags     = "closest_vertex_tags"
	QueryCustomVertexDistances = "custom_vertex_distances"
)

// Every query takes the points as parallel xs and ys slices and returns one
// result per point in the same order. On error no result is returned.
// Points with a NaN or infinite coordinate are never contained and yield
// NaN distances and NoTag.

// ContainsPoints reports for every point whether it lies inside any polygon.
// Points on a polygon boundary may resolve either way.
func (c *Context) ContainsPoints(ctx context.Context, xs, ys []float64) ([]bool, error) {
	start := time.Now()
	out, err := c.containsPoints(ctx, xs, ys)
	c.observe(ctx, QueryContainsPoints, len(xs), start, err)
	return out, err
}

// ContainedPoints returns the indices of the points that lie inside any
// polygon.
func (c *Context) ContainedPoints(ctx context.Context, xs, ys []float64) (*roaring.Bitmap, error) {
	start := time.Now()

	var bm *roaring.Bitmap
	inside, err := c.containsPoints(ctx, xs, ys)
	if err == nil {
		if _, cerr := conv.IntToUint32(len(inside)); cerr != nil {
			err = fmt.Errorf("%w: %w", ErrInvalidArgument, cerr)
		}
	}
	if err == nil {
		ids := make([]uint32, 0, len(inside)/4)
		for i, ok := range inside {
			if ok {
				ids = append(ids, uint32(i))
			}
		}
		bm = roaring.BitmapOf(ids...)
	}

	c.observe(ctx, QueryContainedPoints, len(xs), start, err)
	return bm, err
}

func (c *Context) containsPoints(ctx context.Context, xs, ys []float64) ([]bool, error) {
	if err := checkPoints(xs, ys); err != nil {
		return nil, err
	}
	ix, err := c.containmentIndex(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]bool, len(xs))
	if ix == nil {
		return out, nil
	}

	err = c.forEach(ctx, len(xs), func(lo, hi int, _ *spatial.Scratch) {
		for i := lo; i < hi; i++ {
			p := geom.Point{X: xs[i], Y: ys[i]}
			out[i] = geom.IsFinite(p) && ix.Contains(p)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DistancesToEdges returns the Euclidean distance from every point to the
// closest polygon edge, closing edges included. Points inside a polygon
// measure to its boundary. Fails with ErrEmpty before any polygon is added.
func (c *Context) DistancesToEdges(ctx context.Context, xs, ys []float64) ([]float64, error) {
	start := time.Now()
	out, err := c.distancesToEdges(ctx, xs, ys)
	c.observe(ctx, QueryDistancesToEdges, len(xs), start, err)
	return out, err
}

func (c *Context) distancesToEdges(ctx context.Context, xs, ys []float64) ([]float64, error) {
	if err := checkPoints(xs, ys); err != nil {
		return nil, err
	}
	ix, err := c.edgeIndex(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(xs))
	err = c.forEach(ctx, len(xs), func(lo, hi int, s *spatial.Scratch) {
		for i := lo; i < hi; i++ {
			out[i] = math.NaN()
			p := geom.Point{X: xs[i], Y: ys[i]}
			if !geom.IsFinite(p) {
				continue
			}
			if m, ok := ix.Nearest(p, s); ok {
				out[i] = math.Sqrt(m.SquaredDistance)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DistancesToVertices returns the Euclidean distance from every point to the
// closest polygon vertex. Fails with ErrEmpty before any polygon is added.
func (c *Context) DistancesToVertices(ctx context.Context, xs, ys []float64) ([]float64, error) {
	start := time.Now()
	out, err := c.distancesToVertices(ctx, xs, ys)
	c.observe(ctx, QueryDistancesToVertices, len(xs), start, err)
	return out, err
}

func (c *Context) distancesToVertices(ctx context.Context, xs, ys []float64) ([]float64, error) {
	if err := checkPoints(xs, ys); err != nil {
		return nil, err
	}
	ix, err := c.vertexIndex(ctx, false)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(xs))
	err = c.forEach(ctx, len(xs), func(lo, hi int, s *spatial.Scratch) {
		for i := lo; i < hi; i++ {
			out[i] = math.NaN()
			p := geom.Point{X: xs[i], Y: ys[i]}
			if !geom.IsFinite(p) {
				continue
			}
			if m, ok := ix.Nearest(p, s); ok {
				out[i] = math.Sqrt(m.SquaredDistance)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClosestVertexTags returns the tag of the vertex closest to every point, or
// NoTag when the context holds no vertices. Exact ties resolve to the vertex
// added first.
func (c *Context) ClosestVertexTags(ctx context.Context, xs, ys []float64) ([]int, error) {
	start := time.Now()
	out, err := c.closestVertexTags(ctx, xs, ys)
	c.observe(ctx, QueryClosestVertexTags, len(xs), start, err)
	return out, err
}

func (c *Context) closestVertexTags(ctx context.Context, xs, ys []float64) ([]int, error) {
	if err := checkPoints(xs, ys); err != nil {
		return nil, err
	}
	ix, err := c.vertexIndex(ctx, true)
	if err != nil {
		return nil, err
	}

	out := make([]int, len(xs))
	if ix == nil {
		for i := range out {
			out[i] = NoTag
		}
		return out, nil
	}

	err = c.forEach(ctx, len(xs), func(lo, hi int, s *spatial.Scratch) {
		for i := lo; i < hi; i++ {
			out[i] = NoTag
			p := geom.Point{X: xs[i], Y: ys[i]}
			if !geom.IsFinite(p) {
				continue
			}
			if m, ok := ix.Nearest(p, s); ok {
				out[i] = m.Tag
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CustomVertexDistances returns, for every point, the lowest cost over all
// vertices, where a vertex at distance d with coefficients c costs
// Distance(d) + Weight(c) of the configured cost (see WithCost).
//
// Fails with ErrNoCoefficients on a context without coefficients and with
// ErrEmpty before any polygon is added.
func (c *Context) CustomVertexDistances(ctx context.Context, xs, ys []float64) ([]float64, error) {
	start := time.Now()
	out, err := c.customVertexDistances(ctx, xs, ys)
	c.observe(ctx, QueryCustomVertexDistances, len(xs), start, err)
	return out, err
}

func (c *Context) customVertexDistances(ctx context.Context, xs, ys []float64) ([]float64, error) {
	if err := checkPoints(xs, ys); err != nil {
		return nil, err
	}
	if c.k == 0 {
		c.mu.Lock()
		err := c.usableLocked()
		c.mu.Unlock()
		if err != nil {
			return nil, err
		}
		return nil, ErrNoCoefficients
	}
	ix, err := c.vertexIndex(ctx, false)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(xs))
	err = c.forEach(ctx, len(xs), func(lo, hi int, s *spatial.Scratch) {
		for i := lo; i < hi; i++ {
			out[i] = math.NaN()
			p := geom.Point{X: xs[i], Y: ys[i]}
			if !geom.IsFinite(p) {
				continue
			}
			if m, ok := ix.NearestByCost(p, s); ok {
				out[i] = m.Cost
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func checkPoints(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return &ErrLengthMismatch{Field: "ys", Expected: len(xs), Actual: len(ys)}
	}
	return nil
}

func (c *Context) observe(ctx context.Context, query string, points int, start time.Time, err error) {
	duration := time.Since(start)
	c.metrics.RecordQuery(query, points, duration, err)
	c.logger.LogQuery(ctx, query, points, duration, err)
}
