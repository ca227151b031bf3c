// Package pool provides pooled traversal state for zero-allocation queries.
// Uses sync.Pool so every query worker reuses its frontier queue.
package pool

import (
	"sync"

	"github.com/hupe1980/polygo/internal/queue"
)

const (
	// DefaultQueueCapacity is the initial frontier capacity. Best-first R-tree
	// descent rarely queues more than a few hundred nodes.
	DefaultQueueCapacity = 256

	// maxRetainedCapacity bounds the frontier kept across Put calls.
	maxRetainedCapacity = DefaultQueueCapacity * 64
)

// SearchContext holds the reusable state of one tree traversal.
// It is NOT thread-safe; one goroutine owns it between Get and Put.
type SearchContext struct {
	// Frontier holds the nodes waiting to be expanded, lowest bound first.
	Frontier *queue.PriorityQueue

	// NodesVisited counts expanded tree nodes since the last Reset.
	NodesVisited int

	// ItemsScored counts exact leaf evaluations since the last Reset.
	ItemsScored int
}

var searchContextPool = sync.Pool{
	New: func() interface{} {
		return New()
	},
}

// New allocates a SearchContext outside the pool.
func New() *SearchContext {
	return &SearchContext{
		Frontier: queue.NewMin(DefaultQueueCapacity),
	}
}

// Get retrieves a SearchContext from the pool.
func Get() *SearchContext {
	ctx := searchContextPool.Get().(*SearchContext)
	ctx.Reset()
	return ctx
}

// Put returns a SearchContext to the pool for reuse.
func Put(ctx *SearchContext) {
	if ctx == nil {
		return
	}
	if ctx.Frontier.Cap() > maxRetainedCapacity {
		ctx.Frontier = queue.NewMin(DefaultQueueCapacity)
	}
	searchContextPool.Put(ctx)
}

// Reset clears the SearchContext for reuse.
func (sc *SearchContext) Reset() {
	sc.Frontier.Reset()
	sc.NodesVisited = 0
	sc.ItemsScored = 0
}

// SearchContextStats returns statistics about the SearchContext.
type SearchContextStats struct {
	FrontierLen  int
	FrontierCap  int
	NodesVisited int
	ItemsScored  int
}

// Stats returns current statistics about this SearchContext.
func (sc *SearchContext) Stats() SearchContextStats {
	return SearchContextStats{
		FrontierLen:  sc.Frontier.Len(),
		FrontierCap:  sc.Frontier.Cap(),
		NodesVisited: sc.NodesVisited,
		ItemsScored:  sc.ItemsScored,
	}
}
