package spatial

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/hupe1980/polygo/geom"
	"github.com/hupe1980/polygo/store"
)

type polygonEntry struct {
	id   int
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *polygonEntry) Bounds() rtreego.Rect { return e.rect }

// ContainmentIndex answers point-in-polygon queries over all polygons of a
// store. Polygon bounding boxes live in an R-tree that serves as the coarse
// filter; surviving candidates run the exact ray casting test.
//
// The filter only keeps polygons whose box strictly contains the query
// point, so points on a bounding box side are reported as outside. Such a
// point can at most touch the polygon boundary, where the result is
// unspecified anyway.
type ContainmentIndex struct {
	src  *store.Store
	tree *rtreego.Rtree
}

// NewContainmentIndex builds the bounding box R-tree for s.
func NewContainmentIndex(s *store.Store, capacity int) (*ContainmentIndex, error) {
	if capacity < 2 {
		capacity = 25
	}

	objs := make([]rtreego.Spatial, 0, s.Len())
	for id := 0; id < s.Len(); id++ {
		b := s.Bounds(id)
		rect, err := rtreego.NewRectFromPoints(
			rtreego.Point{b.Min.X, b.Min.Y},
			rtreego.Point{b.Max.X, b.Max.Y},
		)
		if err != nil {
			return nil, err
		}
		objs = append(objs, &polygonEntry{id: id, rect: rect})
	}

	return &ContainmentIndex{
		src:  s,
		tree: rtreego.NewTree(2, max(1, capacity/2), capacity, objs...),
	}, nil
}

// EstimateContainmentIndexBytes approximates the memory of a
// ContainmentIndex over n polygons.
func EstimateContainmentIndexBytes(n int) int64 {
	// entry, rect coordinate slices and the tree entry per polygon.
	return int64(n) * 160
}

// Len returns the number of indexed polygons.
func (ix *ContainmentIndex) Len() int { return ix.tree.Size() }

// Contains reports whether p lies inside any polygon.
func (ix *ContainmentIndex) Contains(p geom.Point) bool {
	if ix.tree.Size() == 0 {
		return false
	}
	hits := ix.tree.SearchIntersect(queryRect(p), rtreego.LimitFilter(1), ix.insideFilter(p))
	return len(hits) > 0
}

// Containing returns the ids of all polygons containing p in ascending order.
func (ix *ContainmentIndex) Containing(p geom.Point) []int {
	if ix.tree.Size() == 0 {
		return nil
	}
	hits := ix.tree.SearchIntersect(queryRect(p), ix.insideFilter(p))

	ids := make([]int, len(hits))
	for i, h := range hits {
		ids[i] = h.(*polygonEntry).id
	}
	sort.Ints(ids)
	return ids
}

func (ix *ContainmentIndex) insideFilter(p geom.Point) rtreego.Filter {
	return func(_ []rtreego.Spatial, obj rtreego.Spatial) (refuse, abort bool) {
		e := obj.(*polygonEntry)
		return !geom.PointInRing(p, ix.src.Ring(e.id)), false
	}
}

func queryRect(p geom.Point) rtreego.Rect {
	return rtreego.Point{p.X, p.Y}.ToRect(0)
}
