package spatial

import (
	"math"
	"unsafe"

	"github.com/hupe1980/polygo/geom"
	"github.com/hupe1980/polygo/internal/rtree"
	"github.com/hupe1980/polygo/store"
)

// VertexMatch is the result of a nearest-vertex search.
type VertexMatch struct {
	Ordinal         int
	Tag             int
	SquaredDistance float64
}

// CostMatch is the result of a cost-ranked nearest-vertex search.
type CostMatch struct {
	Ordinal int
	Tag     int
	Cost    float64
}

// VertexIndex answers nearest-vertex queries over every vertex of a store.
//
// Exact ties resolve to the lowest vertex ordinal, i.e. the first polygon
// added and then the first vertex within it.
type VertexIndex struct {
	src  *store.Store
	tree *rtree.Tree

	cost      Cost
	weights   []float64 // per vertex ordinal
	minWeight []float64 // per tree node
}

// NewVertexIndex builds the index over all vertices of s. When cost is
// non-nil, per-vertex weights and per-node weight minima are precomputed for
// NearestByCost.
func NewVertexIndex(s *store.Store, capacity int, cost Cost) *VertexIndex {
	n := s.VertexCount()

	boxes := make([]geom.Box, n)
	for i := range boxes {
		boxes[i] = geom.BoxOf(s.Vertex(i))
	}

	ix := &VertexIndex{
		src:  s,
		tree: rtree.Build(boxes, capacity),
		cost: cost,
	}

	if cost != nil {
		ix.weights = make([]float64, n)
		for i := range ix.weights {
			ix.weights[i] = cost.Weight(s.Coefficients(i))
		}
		ix.minWeight = foldMinWeight(ix.tree, ix.weights)
	}

	return ix
}

func foldMinWeight(t *rtree.Tree, weights []float64) []float64 {
	nodes := t.Nodes()
	out := make([]float64, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		m := math.Inf(1)
		if n.Leaf {
			for _, item := range t.Items(n) {
				m = minBound(m, weights[item])
			}
		} else {
			for c := n.First; c < n.First+n.Count; c++ {
				m = minBound(m, out[c])
			}
		}
		out[i] = m
	}
	return out
}

// minBound is math.Min with NaN treated as -Inf, so a subtree whose weight
// cannot be bounded is always searched.
func minBound(a, b float64) float64 {
	if math.IsNaN(b) {
		return math.Inf(-1)
	}
	return math.Min(a, b)
}

// EstimateVertexIndexBytes approximates the memory of a VertexIndex over n
// vertices.
func EstimateVertexIndexBytes(n, capacity int, withCost bool) int64 {
	b := rtree.EstimateBytes(n, capacity) + int64(n)*int64(unsafe.Sizeof(geom.Box{}))
	if withCost {
		b += 2 * int64(n) * 8
	}
	return b
}

// Len returns the number of indexed vertices.
func (ix *VertexIndex) Len() int { return ix.tree.Len() }

// Height returns the height of the underlying tree.
func (ix *VertexIndex) Height() int { return ix.tree.Height() }

// Nearest returns the vertex closest to p, or false if the index is empty.
// s may be nil.
func (ix *VertexIndex) Nearest(p geom.Point, s *Scratch) (VertexMatch, bool) {
	s, done := ensureScratch(s)
	defer done()

	v := &s.vertex
	*v = vertexVisitor{ix: ix, q: p, best: math.Inf(1), ordinal: -1}
	ix.tree.Nearest(s.sc, v)

	if v.ordinal < 0 {
		return VertexMatch{}, false
	}
	return VertexMatch{
		Ordinal:         int(v.ordinal),
		Tag:             ix.src.Tag(int(v.ordinal)),
		SquaredDistance: v.best,
	}, true
}

// NearestByCost returns the vertex with the lowest cost for p. It returns
// false if the index is empty or was built without a cost.
//
// Subtrees are pruned with Distance(sqrt(box distance)) + minimum subtree
// weight, which is a valid bound only for monotonic costs; other costs are
// answered by scanning every vertex. Candidates are always scored exactly.
func (ix *VertexIndex) NearestByCost(p geom.Point, s *Scratch) (CostMatch, bool) {
	if ix.cost == nil || ix.tree.Len() == 0 {
		return CostMatch{}, false
	}
	if !ix.cost.Monotonic() {
		return ix.scanByCost(p), true
	}

	s, done := ensureScratch(s)
	defer done()

	v := &s.cost
	*v = costVisitor{ix: ix, q: p, best: math.Inf(1), ordinal: -1}
	ix.tree.Nearest(s.sc, v)

	if v.ordinal < 0 {
		// Every reachable cost was NaN.
		return ix.scanByCost(p), true
	}
	return CostMatch{Ordinal: int(v.ordinal), Tag: ix.src.Tag(int(v.ordinal)), Cost: v.best}, true
}

// scanByCost scores every vertex. NaN costs never win; if every cost is NaN
// the first vertex is reported with a NaN cost.
func (ix *VertexIndex) scanByCost(p geom.Point) CostMatch {
	best := CostMatch{Ordinal: 0, Cost: math.NaN()}
	for i := range ix.weights {
		c := ix.exactCost(p, int32(i))
		if betterCost(c, int32(i), best.Cost, int32(best.Ordinal)) {
			best.Ordinal, best.Cost = i, c
		}
	}
	best.Tag = ix.src.Tag(best.Ordinal)
	return best
}

// betterCost reports whether cost c of item beats the current best. A NaN
// best loses to any number.
func betterCost(c float64, item int32, best float64, ordinal int32) bool {
	if math.IsNaN(c) {
		return false
	}
	if math.IsNaN(best) {
		return true
	}
	return c < best || (c == best && item < ordinal)
}

func (ix *VertexIndex) exactCost(p geom.Point, ordinal int32) float64 {
	d := geom.SquaredDistance(p, ix.src.Vertex(int(ordinal)))
	return ix.cost.Distance(math.Sqrt(d)) + ix.weights[ordinal]
}

// SearchBox calls fn with the ordinal of every vertex inside box until fn
// returns false.
func (ix *VertexIndex) SearchBox(box geom.Box, fn func(ordinal int) bool) {
	ix.tree.Search(box, func(item int32) geom.Box {
		return geom.BoxOf(ix.src.Vertex(int(item)))
	}, func(item int32) bool {
		return fn(int(item))
	})
}

type vertexVisitor struct {
	ix      *VertexIndex
	q       geom.Point
	best    float64
	ordinal int32
}

func (v *vertexVisitor) Bound(node int32) float64 {
	return v.ix.tree.Node(node).Box.SquaredDistanceTo(v.q)
}

func (v *vertexVisitor) Best() float64 { return v.best }

func (v *vertexVisitor) Visit(item int32) {
	d := geom.SquaredDistance(v.q, v.ix.src.Vertex(int(item)))
	if v.ordinal < 0 || d < v.best || (d == v.best && item < v.ordinal) {
		v.best, v.ordinal = d, item
	}
}

type costVisitor struct {
	ix      *VertexIndex
	q       geom.Point
	best    float64
	ordinal int32
}

// Bound treats a NaN from the cost as -Inf so the subtree is searched.
func (v *costVisitor) Bound(node int32) float64 {
	d := v.ix.tree.Node(node).Box.SquaredDistanceTo(v.q)
	b := v.ix.cost.Distance(math.Sqrt(d)) + v.ix.minWeight[node]
	if math.IsNaN(b) {
		return math.Inf(-1)
	}
	return b
}

func (v *costVisitor) Best() float64 { return v.best }

// Visit ignores NaN costs, so best stays comparable for pruning.
func (v *costVisitor) Visit(item int32) {
	c := v.ix.exactCost(v.q, item)
	if math.IsNaN(c) {
		return
	}
	if v.ordinal < 0 || c < v.best || (c == v.best && item < v.ordinal) {
		v.best, v.ordinal = c, item
	}
}
