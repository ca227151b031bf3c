// Package polygo answers batch spatial queries against a fixed set of
// polygons.
//
// A Context holds polygons given as coordinate rings, each vertex carrying an
// integer tag and optionally a vector of coefficients. Queries take large
// batches of points as parallel coordinate slices and answer, per point:
//
//   - containment: is the point inside any polygon (even-odd rule)
//   - the distance to the closest polygon edge
//   - the distance to, and the tag of, the closest polygon vertex
//   - a weighted vertex distance combining the Euclidean distance with the
//     coefficients of each vertex
//
// # Quick Start
//
//	ctx := context.Background()
//	pc, _ := polygo.New(2)
//	defer pc.Close()
//
//	_ = pc.AddPolygon(
//	    []float64{0, 4, 4, 0},             // xs
//	    []float64{0, 0, 4, 4},             // ys
//	    []int{10, 11, 12, 13},             // tags
//	    []float64{1, 0, 1, 0, 1, 0, 1, 0}, // two coefficients per vertex
//	)
//
//	inside, _ := pc.ContainsPoints(ctx, xs, ys)
//	edges, _ := pc.DistancesToEdges(ctx, xs, ys)
//	tags, _ := pc.ClosestVertexTags(ctx, xs, ys)
//	custom, _ := pc.CustomVertexDistances(ctx, xs, ys)
//
// # Lifecycle
//
// A context starts empty, accepts polygons, and builds each index lazily
// the first time a query needs it. The first query seals the context:
// AddPolygon then fails with ErrSealed. Containment never builds the vertex
// or edge index. A build that exceeds the memory limit (WithMemoryLimit)
// leaves the context failed with ErrResourceExhausted.
//
// # Boundaries
//
// Points exactly on a polygon boundary may be reported inside or outside.
// Which one depends on the ray casting arithmetic and is not specified.
//
// # Concurrency
//
// Queries on one context may run concurrently, and every batch is split
// across worker goroutines (WithWorkers, WithMinPartitionSize). AddPolygon
// and Close must not be interleaved with queries.
package polygo
