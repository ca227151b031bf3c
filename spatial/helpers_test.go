package spatial

import (
	"testing"

	"github.com/hupe1980/polygo/geom"
	"github.com/hupe1980/polygo/store"
	"github.com/hupe1980/polygo/testutil"
	"github.com/stretchr/testify/require"
)

var world = geom.BoxOf(geom.Point{X: 0, Y: 0}, geom.Point{X: 100, Y: 100})

// randomStore fills a store with n star polygons scattered over world.
func randomStore(t *testing.T, rng *testutil.RNG, n, k int) *store.Store {
	t.Helper()

	s, err := store.New(k)
	require.NoError(t, err)

	for i := range n {
		center := geom.Point{X: 5 + rng.Float64()*90, Y: 5 + rng.Float64()*90}
		m := 3 + rng.Intn(12)
		xs, ys := rng.StarPolygon(center, 1+rng.Float64()*6, m)

		coeffs := make([]float64, k*m)
		rng.FillUniformRange(coeffs, 0, 5)

		_, err := s.Add(xs, ys, testutil.Sequence(i*100, m), coeffs)
		require.NoError(t, err)
	}
	return s
}

func mustAdd(t *testing.T, s *store.Store, xs, ys []float64, tags []int, coeffs []float64) {
	t.Helper()
	_, err := s.Add(xs, ys, tags, coeffs)
	require.NoError(t, err)
}
