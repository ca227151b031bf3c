package polygo

import "context"

// Close releases the polygons and indexes held by this context and returns
// their reservation to the memory limit. Every later call, including Close,
// fails with ErrClosed.
//
// Close must not be called while queries are running.
func (c *Context) Close() error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateClosed {
		return ErrClosed
	}

	polygons, vertices := c.store.Len(), c.store.VertexCount()

	c.releaseLocked()
	c.store.Reset()
	c.store = nil
	c.state = StateClosed
	c.failure = nil

	c.logger.LogClose(context.Background(), polygons, vertices)
	return nil
}

// releaseLocked drops every index and its memory reservation.
func (c *Context) releaseLocked() {
	c.vertices = nil
	c.edges = nil
	c.containment = nil
	c.rc.ReleaseMemory(c.reserved)
	c.reserved = 0
}
