// Package spatial provides the search structures of a polygon context.
//
//   - VertexIndex: nearest vertex by distance or by a weighted cost.
//   - EdgeIndex: nearest polygon edge by point-segment distance.
//   - ContainmentIndex: union point-in-polygon over all polygons, with an
//     R-tree of polygon bounding boxes as the coarse filter.
//
// All indexes are immutable once built and safe for concurrent queries as
// long as every goroutine uses its own Scratch.
package spatial
