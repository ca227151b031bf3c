// Package queue provides the frontier that drives best-first tree traversal.
package queue

// Item is a tree node waiting to be expanded.
type Item struct {
	Node  int32   // Node is the index of the tree node.
	Bound float64 // Bound is the lower bound used as priority.
}

// before orders items by bound, then by node index so that the expansion
// order does not depend on push order.
func (a Item) before(b Item) bool {
	if a.Bound != b.Bound {
		return a.Bound < b.Bound
	}
	return a.Node < b.Node
}

// PriorityQueue is a binary min-heap of Items. Items are stored by value.
type PriorityQueue struct {
	items []Item
}

// NewMin returns an empty queue with room for capacity items.
func NewMin(capacity int) *PriorityQueue {
	return &PriorityQueue{items: make([]Item, 0, capacity)}
}

// Len returns the number of queued items.
func (pq *PriorityQueue) Len() int { return len(pq.items) }

// Cap returns the capacity of the backing slice.
func (pq *PriorityQueue) Cap() int { return cap(pq.items) }

// Push adds an item.
func (pq *PriorityQueue) Push(item Item) {
	pq.items = append(pq.items, item)

	// Move the hole up instead of swapping at every level.
	i := len(pq.items) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !item.before(pq.items[parent]) {
			break
		}
		pq.items[i] = pq.items[parent]
		i = parent
	}
	pq.items[i] = item
}

// Pop removes and returns the item with the smallest bound.
func (pq *PriorityQueue) Pop() (Item, bool) {
	n := len(pq.items) - 1
	if n < 0 {
		return Item{}, false
	}
	top := pq.items[0]
	last := pq.items[n]
	pq.items = pq.items[:n]
	if n == 0 {
		return top, true
	}

	i := 0
	for {
		child := 2*i + 1
		if child >= n {
			break
		}
		if r := child + 1; r < n && pq.items[r].before(pq.items[child]) {
			child = r
		}
		if !pq.items[child].before(last) {
			break
		}
		pq.items[i] = pq.items[child]
		i = child
	}
	pq.items[i] = last

	return top, true
}

// Reset empties the queue and keeps its capacity.
func (pq *PriorityQueue) Reset() {
	pq.items = pq.items[:0]
}
