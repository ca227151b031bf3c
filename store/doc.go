// Package store holds the polygons of a query context.
//
// Vertices of all polygons are kept in flat, insertion-ordered slices so the
// indexes can address any vertex by a single ordinal. Ordinals are assigned
// polygon by polygon, so comparing ordinals compares (polygon id, vertex
// position) lexicographically.
package store
