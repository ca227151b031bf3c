package spatial

import (
	"math"
	"unsafe"

	"github.com/hupe1980/polygo/geom"
	"github.com/hupe1980/polygo/internal/rtree"
	"github.com/hupe1980/polygo/store"
)

// EdgeMatch is the result of a nearest-edge search.
type EdgeMatch struct {
	Polygon         int
	Edge            int // edge i joins vertex i and vertex (i+1) mod n
	SquaredDistance float64
}

// EdgeIndex answers nearest-edge queries over every edge of a store,
// including the closing edge of each ring.
//
// Edges share the ordinal of their first vertex; ties resolve to the lowest
// ordinal.
type EdgeIndex struct {
	tree    *rtree.Tree
	from    []geom.Point
	to      []geom.Point
	boxes   []geom.Box
	polygon []int32
	first   []int32 // first ordinal of each polygon
}

// NewEdgeIndex builds the index over all edges of s.
func NewEdgeIndex(s *store.Store, capacity int) *EdgeIndex {
	n := s.VertexCount()

	ix := &EdgeIndex{
		from:    make([]geom.Point, n),
		to:      make([]geom.Point, n),
		boxes:   make([]geom.Box, n),
		polygon: make([]int32, n),
		first:   make([]int32, s.Len()),
	}

	for id := 0; id < s.Len(); id++ {
		ring := s.Ring(id)
		start, _ := s.VertexRange(id)
		ix.first[id] = int32(start)

		for i, a := range ring {
			b := ring[(i+1)%len(ring)]
			ord := start + i
			ix.from[ord] = a
			ix.to[ord] = b
			ix.boxes[ord] = geom.BoxOf(a, b)
			ix.polygon[ord] = int32(id)
		}
	}

	ix.tree = rtree.Build(ix.boxes, capacity)

	return ix
}

// EstimateEdgeIndexBytes approximates the memory of an EdgeIndex over n edges.
func EstimateEdgeIndexBytes(n, capacity int) int64 {
	per := 2*int64(unsafe.Sizeof(geom.Point{})) + int64(unsafe.Sizeof(geom.Box{})) + 4
	return rtree.EstimateBytes(n, capacity) + int64(n)*per
}

// Len returns the number of indexed edges.
func (ix *EdgeIndex) Len() int { return ix.tree.Len() }

// Height returns the height of the underlying tree.
func (ix *EdgeIndex) Height() int { return ix.tree.Height() }

// Nearest returns the edge closest to p, or false if the index is empty.
// s may be nil.
func (ix *EdgeIndex) Nearest(p geom.Point, s *Scratch) (EdgeMatch, bool) {
	s, done := ensureScratch(s)
	defer done()

	v := &s.edge
	*v = edgeVisitor{ix: ix, q: p, best: math.Inf(1), ordinal: -1}
	ix.tree.Nearest(s.sc, v)

	if v.ordinal < 0 {
		return EdgeMatch{}, false
	}

	id := ix.polygon[v.ordinal]
	return EdgeMatch{
		Polygon:         int(id),
		Edge:            int(v.ordinal - ix.first[id]),
		SquaredDistance: v.best,
	}, true
}

// SearchBox calls fn for every edge whose bounding box intersects box until
// fn returns false.
func (ix *EdgeIndex) SearchBox(box geom.Box, fn func(polygon, edge int) bool) {
	ix.tree.Search(box, func(item int32) geom.Box {
		return ix.boxes[item]
	}, func(item int32) bool {
		id := ix.polygon[item]
		return fn(int(id), int(item-ix.first[id]))
	})
}

type edgeVisitor struct {
	ix      *EdgeIndex
	q       geom.Point
	best    float64
	ordinal int32
}

func (v *edgeVisitor) Bound(node int32) float64 {
	return v.ix.tree.Node(node).Box.SquaredDistanceTo(v.q)
}

func (v *edgeVisitor) Best() float64 { return v.best }

func (v *edgeVisitor) Visit(item int32) {
	d := geom.PointSegmentSquaredDistance(v.q, v.ix.from[item], v.ix.to[item])
	if v.ordinal < 0 || d < v.best || (d == v.best && item < v.ordinal) {
		v.best, v.ordinal = d, item
	}
}
