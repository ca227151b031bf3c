// Package testutil provides testing utilities for polygo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating polygons and query points, brute-force
// reference answers for every query, and a generator that reproduces the
// sequence of Python's random module.
//
// # Random Points
//
//	rng := testutil.NewRNG(seed)
//	xs, ys := rng.UniformPoints(1000, geom.BoxOf(geom.Point{}, geom.Point{X: 3, Y: 3}))
//
// # Ground Truth
//
//	ord, d2 := testutil.NearestVertex(s, p)
//	d2 := testutil.NearestEdge(s, p)
//
// # Python Compatibility
//
//	py := testutil.NewPyRandom(0)
//	x := py.Uniform(0, 3) // same value as random.seed(0); random.uniform(0, 3)
package testutil
