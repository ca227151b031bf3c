package polygo

import (
	"context"

	"github.com/hupe1980/polygo/spatial"
	"golang.org/x/sync/errgroup"
)

// chunkSize is the number of points processed between cancellation checks.
const chunkSize = 1024

type span struct {
	lo, hi int
}

// partitions splits [0, n) into at most workers contiguous spans of at
// least minSize points each (except when n itself is smaller).
func partitions(n, workers, minSize int) []span {
	if n == 0 {
		return nil
	}

	parts := min(workers, n/minSize)
	if parts < 1 {
		parts = 1
	}

	size := (n + parts - 1) / parts
	out := make([]span, 0, parts)
	for lo := 0; lo < n; lo += size {
		out = append(out, span{lo: lo, hi: min(lo+size, n)})
	}
	return out
}

// forEach calls fn over contiguous ranges covering [0, n). Each partition
// owns a Scratch and writes only its own range. Worker slots are shared by
// all batches running on the context; when one is free the caller's
// goroutine processes the first partition itself.
func (c *Context) forEach(ctx context.Context, n int, fn func(lo, hi int, s *spatial.Scratch)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	workers := c.rc.MaxWorkers()
	parts := partitions(n, workers, c.opts.minPartitionSize)
	if len(parts) <= 1 {
		return c.runSpan(ctx, span{hi: n}, fn)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inline := c.rc.TryAcquireWorker()
	rest := parts
	if inline {
		rest = parts[1:]
	}

	// len(parts) <= workers, so Go never blocks here.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, p := range rest {
		g.Go(func() error {
			return c.runSpan(gctx, p, fn)
		})
	}

	var inlineErr error
	if inline {
		inlineErr = c.processSpan(gctx, parts[0], fn)
		c.rc.ReleaseWorker()
		if inlineErr != nil {
			cancel()
		}
	}

	if err := g.Wait(); err != nil && inlineErr == nil {
		return err
	}
	return inlineErr
}

// runSpan holds one worker slot of the context while it processes p.
func (c *Context) runSpan(ctx context.Context, p span, fn func(lo, hi int, s *spatial.Scratch)) error {
	if err := c.rc.AcquireWorker(ctx); err != nil {
		return err
	}
	defer c.rc.ReleaseWorker()

	return c.processSpan(ctx, p, fn)
}

// processSpan runs fn chunk by chunk over p. The caller holds a worker slot.
func (c *Context) processSpan(ctx context.Context, p span, fn func(lo, hi int, s *spatial.Scratch)) error {
	s := spatial.AcquireScratch()
	defer s.Release()

	for lo := p.lo; lo < p.hi; lo += chunkSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		hi := min(lo+chunkSize, p.hi)
		if err := c.rc.AcquirePoints(ctx, hi-lo); err != nil {
			return err
		}
		fn(lo, hi, s)
	}
	return nil
}
