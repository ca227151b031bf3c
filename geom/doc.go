// Package geom provides the planar primitives used by the polygon indexes.
//
// Points are gonum r2 vectors. All distances are computed in squared form so
// that callers can compare them without taking square roots; the query layer
// takes the root once per result.
//
// # Boundary policy
//
// PointInRing implements the even-odd ray casting rule. A point that lies
// exactly on a ring edge may be classified as inside or outside depending on
// the edge orientation. Callers must not rely on either outcome.
package geom
