package spatial

import (
	"testing"

	"github.com/hupe1980/polygo/geom"
	"github.com/hupe1980/polygo/store"
	"github.com/hupe1980/polygo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeIndex_Empty(t *testing.T) {
	s, err := store.New(0)
	require.NoError(t, err)

	ix := NewEdgeIndex(s, 0)
	assert.Equal(t, 0, ix.Len())

	_, ok := ix.Nearest(geom.Point{}, nil)
	assert.False(t, ok)
}

func TestEdgeIndex_ClosingEdge(t *testing.T) {
	s, err := store.New(0)
	require.NoError(t, err)
	mustAdd(t, s, []float64{0, 4, 4, 0}, []float64{0, 0, 4, 4}, []int{0, 1, 2, 3}, nil)

	ix := NewEdgeIndex(s, 0)
	assert.Equal(t, 4, ix.Len())

	// Left side is the closing edge (0,4)-(0,0).
	m, ok := ix.Nearest(geom.Point{X: -1, Y: 2}, nil)
	require.True(t, ok)
	assert.Equal(t, 0, m.Polygon)
	assert.Equal(t, 3, m.Edge)
	assert.InDelta(t, 1.0, m.SquaredDistance, 1e-12)

	// Inside points measure to the boundary, not zero.
	m, ok = ix.Nearest(geom.Point{X: 2, Y: 1}, nil)
	require.True(t, ok)
	assert.Equal(t, 0, m.Edge)
	assert.InDelta(t, 1.0, m.SquaredDistance, 1e-12)
}

func TestEdgeIndex_NearestMatchesBruteForce(t *testing.T) {
	rng := testutil.NewRNG(11)
	s := randomStore(t, rng, 200, 0)

	for _, capacity := range []int{3, 16} {
		ix := NewEdgeIndex(s, capacity)
		require.Equal(t, s.VertexCount(), ix.Len())

		scratch := AcquireScratch()
		xs, ys := rng.UniformPoints(500, geom.BoxOf(geom.Point{X: -10, Y: -10}, geom.Point{X: 110, Y: 110}))
		for i := range xs {
			p := geom.Point{X: xs[i], Y: ys[i]}

			m, ok := ix.Nearest(p, scratch)
			require.True(t, ok)

			want := testutil.NearestEdge(s, p)
			assert.LessOrEqual(t, testutil.RelativeError(want, m.SquaredDistance), 1e-9)

			ring := s.Ring(m.Polygon)
			got := geom.PointSegmentSquaredDistance(p, ring[m.Edge], ring[(m.Edge+1)%len(ring)])
			assert.Equal(t, m.SquaredDistance, got)
		}
		scratch.Release()
	}
}

func TestEdgeIndex_NotFartherThanVertex(t *testing.T) {
	rng := testutil.NewRNG(12)
	s := randomStore(t, rng, 50, 0)

	edges := NewEdgeIndex(s, 0)
	vertices := NewVertexIndex(s, 0, nil)

	xs, ys := rng.UniformPoints(200, world)
	for i := range xs {
		p := geom.Point{X: xs[i], Y: ys[i]}
		e, ok := edges.Nearest(p, nil)
		require.True(t, ok)
		v, ok := vertices.Nearest(p, nil)
		require.True(t, ok)
		assert.LessOrEqual(t, e.SquaredDistance, v.SquaredDistance)
	}
}

func TestEdgeIndex_SearchBox(t *testing.T) {
	s, err := store.New(0)
	require.NoError(t, err)
	mustAdd(t, s, []float64{0, 4, 4, 0}, []float64{0, 0, 4, 4}, []int{0, 1, 2, 3}, nil)
	mustAdd(t, s, []float64{10, 12, 11}, []float64{10, 10, 12}, []int{0, 1, 2}, nil)

	ix := NewEdgeIndex(s, 2)

	type hit struct{ polygon, edge int }
	var got []hit
	ix.SearchBox(geom.BoxOf(geom.Point{X: 3, Y: -1}, geom.Point{X: 5, Y: 1}), func(polygon, edge int) bool {
		got = append(got, hit{polygon, edge})
		return true
	})

	// Bottom edge and right edge of the square touch the query box.
	assert.ElementsMatch(t, []hit{{0, 0}, {0, 1}}, got)
}
