package polygo

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/polygo/spatial"
)

// Index names reported to loggers and metrics collectors.
const (
	IndexVertex      = "vertex"
	IndexEdge        = "edge"
	IndexContainment = "containment"
)

// usableLocked returns the error every query reports in the current state.
func (c *Context) usableLocked() error {
	switch c.state {
	case StateClosed:
		return ErrClosed
	case StateFailed:
		return c.failure
	}
	return nil
}

// containmentIndex returns the containment index, building it on first use.
// An empty context yields a nil index.
func (c *Context) containmentIndex(ctx context.Context) (*spatial.ContainmentIndex, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.usableLocked(); err != nil {
		return nil, err
	}
	if c.state == StateEmpty {
		return nil, nil
	}

	if c.containment == nil {
		n := c.store.Len()
		err := c.buildLocked(ctx, IndexContainment, n, spatial.EstimateContainmentIndexBytes(n), func() error {
			ix, err := spatial.NewContainmentIndex(c.store, c.opts.nodeCapacity)
			if err != nil {
				return err
			}
			c.containment = ix
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	c.state = StateIndexesBuilt
	return c.containment, nil
}

// vertexIndex returns the vertex index, building it on first use. An empty
// context yields a nil index unless allowEmpty is false, which reports ErrEmpty.
func (c *Context) vertexIndex(ctx context.Context, allowEmpty bool) (*spatial.VertexIndex, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.usableLocked(); err != nil {
		return nil, err
	}
	if c.state == StateEmpty {
		if allowEmpty {
			return nil, nil
		}
		return nil, ErrEmpty
	}

	if c.vertices == nil {
		var cost spatial.Cost
		if c.k > 0 {
			cost = c.opts.cost
		}
		n := c.store.VertexCount()
		bytes := spatial.EstimateVertexIndexBytes(n, c.opts.nodeCapacity, cost != nil)
		err := c.buildLocked(ctx, IndexVertex, n, bytes, func() error {
			c.vertices = spatial.NewVertexIndex(c.store, c.opts.nodeCapacity, cost)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	c.state = StateIndexesBuilt
	return c.vertices, nil
}

// edgeIndex returns the edge index, building it on first use.
func (c *Context) edgeIndex(ctx context.Context) (*spatial.EdgeIndex, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.usableLocked(); err != nil {
		return nil, err
	}
	if c.state == StateEmpty {
		return nil, ErrEmpty
	}

	if c.edges == nil {
		n := c.store.VertexCount()
		err := c.buildLocked(ctx, IndexEdge, n, spatial.EstimateEdgeIndexBytes(n, c.opts.nodeCapacity), func() error {
			c.edges = spatial.NewEdgeIndex(c.store, c.opts.nodeCapacity)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	c.state = StateIndexesBuilt
	return c.edges, nil
}

// buildLocked charges bytes to the memory limit and runs build. Builds are
// not cancellable; any failure moves the context to StateFailed.
func (c *Context) buildLocked(ctx context.Context, name string, items int, bytes int64, build func() error) error {
	start := time.Now()

	err := c.reserveLocked(name, bytes)
	if err == nil {
		err = build()
	}
	if err != nil {
		c.releaseLocked()
		c.state = StateFailed
		c.failure = fmt.Errorf("build %s index: %w", name, err)
		err = c.failure
	}

	duration := time.Since(start)
	c.metrics.RecordBuild(name, items, duration, err)
	c.logger.LogBuild(ctx, name, items, bytes, duration, err)

	return err
}

func (c *Context) reserveLocked(name string, bytes int64) error {
	if err := c.rc.AcquireMemory(bytes); err != nil {
		return fmt.Errorf("%w: %s index needs about %d bytes, %d of %d already reserved: %w",
			ErrResourceExhausted, name, bytes, c.rc.MemoryUsage(), c.rc.MemoryLimit(), err)
	}
	c.reserved += bytes
	return nil
}
