// Package rtree implements a static, bulk-loaded R-tree over bounding boxes.
//
// Trees are packed with the Sort-Tile-Recursive algorithm. Sorting uses box
// centers with the item id (or node position) as the last key, so the same
// input always produces the same tree. Nodes are stored in one slice with
// every child placed before its parent, which lets callers fold per-node
// aggregates with a single forward pass.
package rtree

import (
	"math"
	"sort"
	"unsafe"

	"github.com/hupe1980/polygo/geom"
	"github.com/hupe1980/polygo/internal/pool"
	"github.com/hupe1980/polygo/internal/queue"
)

// DefaultCapacity is the default maximum number of entries per node.
const DefaultCapacity = 16

// Node is a tree node. For leaves, [First, First+Count) indexes the leaf item
// slice; for inner nodes it indexes the node slice.
type Node struct {
	Box   geom.Box
	First int32
	Count int32
	Leaf  bool
}

// Tree is an immutable packed R-tree. It is safe for concurrent reads.
type Tree struct {
	nodes  []Node
	items  []int32
	root   int32 // last node, -1 when empty
	height int
}

type entry struct {
	box    geom.Box
	center geom.Point
	id     int32
}

// Build packs the boxes into a tree. Item ids are the positions in boxes.
// capacity values below 2 fall back to DefaultCapacity.
func Build(boxes []geom.Box, capacity int) *Tree {
	if capacity < 2 {
		capacity = DefaultCapacity
	}

	t := &Tree{root: -1}
	if len(boxes) == 0 {
		return t
	}

	entries := make([]entry, len(boxes))
	for i, b := range boxes {
		entries[i] = entry{box: b, center: b.Center(), id: int32(i)}
	}

	t.items = make([]int32, 0, len(boxes))
	t.nodes = make([]Node, 0, estimateNodes(len(boxes), capacity))

	// Leaf level: groups of items.
	level := make([]Node, 0, ceilDiv(len(entries), capacity))
	for _, group := range tile(entries, capacity) {
		first := int32(len(t.items))
		box := geom.EmptyBox()
		for _, e := range group {
			t.items = append(t.items, e.id)
			box = box.Union(e.box)
		}
		level = append(level, Node{Box: box, First: first, Count: int32(len(group)), Leaf: true})
	}
	t.height = 1

	// Inner levels: children of each parent are appended contiguously.
	for len(level) > 1 {
		entries = entries[:0]
		for i, n := range level {
			entries = append(entries, entry{box: n.Box, center: n.Box.Center(), id: int32(i)})
		}

		next := make([]Node, 0, ceilDiv(len(level), capacity))
		for _, group := range tile(entries, capacity) {
			first := int32(len(t.nodes))
			box := geom.EmptyBox()
			for _, e := range group {
				t.nodes = append(t.nodes, level[e.id])
				box = box.Union(e.box)
			}
			next = append(next, Node{Box: box, First: first, Count: int32(len(group))})
		}
		level = next
		t.height++
	}

	t.nodes = append(t.nodes, level[0])
	t.root = int32(len(t.nodes) - 1)

	return t
}

// tile sorts entries into STR order and splits them into groups of at most
// capacity entries. The returned groups alias entries.
func tile(entries []entry, capacity int) [][]entry {
	groups := ceilDiv(len(entries), capacity)
	slabs := int(math.Ceil(math.Sqrt(float64(groups))))
	slabSize := slabs * capacity

	sort.Slice(entries, func(i, j int) bool { return lessX(entries[i], entries[j]) })
	for lo := 0; lo < len(entries); lo += slabSize {
		hi := min(lo+slabSize, len(entries))
		slab := entries[lo:hi]
		sort.Slice(slab, func(i, j int) bool { return lessY(slab[i], slab[j]) })
	}

	out := make([][]entry, 0, groups)
	for lo := 0; lo < len(entries); lo += capacity {
		hi := min(lo+capacity, len(entries))
		out = append(out, entries[lo:hi])
	}
	return out
}

func lessX(a, b entry) bool {
	if a.center.X != b.center.X {
		return a.center.X < b.center.X
	}
	if a.center.Y != b.center.Y {
		return a.center.Y < b.center.Y
	}
	return a.id < b.id
}

func lessY(a, b entry) bool {
	if a.center.Y != b.center.Y {
		return a.center.Y < b.center.Y
	}
	if a.center.X != b.center.X {
		return a.center.X < b.center.X
	}
	return a.id < b.id
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

func estimateNodes(items, capacity int) int {
	total := 0
	for n := ceilDiv(items, capacity); ; n = ceilDiv(n, capacity) {
		total += n
		if n <= 1 {
			return total
		}
	}
}

// EstimateBytes returns the approximate memory footprint of a tree over n
// items, used to reserve memory before a build.
func EstimateBytes(n, capacity int) int64 {
	if capacity < 2 {
		capacity = DefaultCapacity
	}
	if n == 0 {
		return 0
	}
	nodeBytes := int64(unsafe.Sizeof(Node{}))
	entryBytes := int64(unsafe.Sizeof(entry{}))
	return int64(estimateNodes(n, capacity))*nodeBytes + int64(n)*(4+entryBytes)
}

// Len returns the number of items.
func (t *Tree) Len() int { return len(t.items) }

// Height returns the number of levels, 0 for an empty tree.
func (t *Tree) Height() int { return t.height }

// Nodes returns all nodes, children before parents. The slice must not be
// modified.
func (t *Tree) Nodes() []Node { return t.nodes }

// Node returns the node at index i.
func (t *Tree) Node(i int32) *Node { return &t.nodes[i] }

// Items returns the item ids of a leaf node.
func (t *Tree) Items(n *Node) []int32 {
	return t.items[n.First : n.First+n.Count]
}

// Search calls fn for every item whose box intersects query, until fn
// returns false.
func (t *Tree) Search(query geom.Box, boxOf func(item int32) geom.Box, fn func(item int32) bool) {
	if t.root < 0 {
		return
	}
	t.search(t.root, query, boxOf, fn)
}

func (t *Tree) search(i int32, query geom.Box, boxOf func(item int32) geom.Box, fn func(item int32) bool) bool {
	n := &t.nodes[i]
	if !n.Box.Intersects(query) {
		return true
	}
	if n.Leaf {
		for _, item := range t.Items(n) {
			if boxOf(item).Intersects(query) && !fn(item) {
				return false
			}
		}
		return true
	}
	for c := n.First; c < n.First+n.Count; c++ {
		if !t.search(c, query, boxOf, fn) {
			return false
		}
	}
	return true
}

// Visitor scores items during a best-first search.
type Visitor interface {
	// Bound returns a lower bound on the score of every item below node.
	Bound(node int32) float64

	// Visit scores item exactly and records it if it improves the result.
	Visit(item int32)

	// Best returns the score of the current result, +Inf if none.
	Best() float64
}

// Nearest runs a best-first branch-and-bound search. Nodes are expanded in
// increasing bound order; a node is skipped only when its bound strictly
// exceeds Best, so items tied with the current result are still visited and
// the visitor can apply a deterministic tie-break.
func (t *Tree) Nearest(sc *pool.SearchContext, v Visitor) {
	if t.root < 0 {
		return
	}

	frontier := sc.Frontier
	frontier.Reset()
	frontier.Push(queue.Item{Node: t.root, Bound: v.Bound(t.root)})

	for {
		top, ok := frontier.Pop()
		if !ok || top.Bound > v.Best() {
			return
		}

		n := &t.nodes[top.Node]
		sc.NodesVisited++

		if n.Leaf {
			for _, item := range t.Items(n) {
				sc.ItemsScored++
				v.Visit(item)
			}
			continue
		}

		for c := n.First; c < n.First+n.Count; c++ {
			if b := v.Bound(c); b <= v.Best() {
				frontier.Push(queue.Item{Node: c, Bound: b})
			}
		}
	}
}
