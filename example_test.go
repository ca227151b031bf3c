package polygo_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/polygo"
)

func Example() {
	ctx := context.Background()

	pc, err := polygo.New(2)
	if err != nil {
		panic(err)
	}
	defer pc.Close()

	// A 4x4 square; every vertex has coefficients (0.5, 0.25).
	err = pc.AddPolygon(
		[]float64{0, 4, 4, 0},
		[]float64{0, 0, 4, 4},
		[]int{10, 11, 12, 13},
		[]float64{0.5, 0.25, 0.5, 0.25, 0.5, 0.25, 0.5, 0.25},
	)
	if err != nil {
		panic(err)
	}

	xs := []float64{3, 6}
	ys := []float64{1, 2}

	inside, _ := pc.ContainsPoints(ctx, xs, ys)
	edges, _ := pc.DistancesToEdges(ctx, xs, ys)
	tags, _ := pc.ClosestVertexTags(ctx, xs, ys)

	for i := range xs {
		fmt.Printf("(%g, %g) inside=%t edge=%.1f tag=%d\n", xs[i], ys[i], inside[i], edges[i], tags[i])
	}

	// Output:
	// (3, 1) inside=true edge=1.0 tag=11
	// (6, 2) inside=false edge=2.0 tag=11
}

func ExampleContext_ContainedPoints() {
	pc, _ := polygo.New(0)
	defer pc.Close()

	_ = pc.AddPolygon([]float64{0, 2, 1}, []float64{0, 0, 2}, []int{0, 1, 2}, nil)

	bm, _ := pc.ContainedPoints(context.Background(),
		[]float64{1, 5, 1.2, -1},
		[]float64{0.5, 5, 1, 0},
	)
	fmt.Println(bm.ToArray())

	// Output:
	// [0 2]
}

func ExampleContext_CustomVertexDistances() {
	pc, _ := polygo.New(2)
	defer pc.Close()

	_ = pc.AddPolygon(
		[]float64{0, 10, 10},
		[]float64{0, 0, 10},
		[]int{0, 1, 2},
		[]float64{5, 5, 0, 0, 1, 1},
	)

	// Vertex (0,0) is closest but heavily weighted; (10,0) wins.
	d, _ := pc.CustomVertexDistances(context.Background(), []float64{1}, []float64{0})
	fmt.Printf("%.6f\n", d[0])

	// Output:
	// 8.962128
}
