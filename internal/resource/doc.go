// Package resource implements the per-context limits of polygo.
//
// A Controller manages three resource types:
//
//   - Memory: an estimated byte budget for index builds (non-blocking, fail-fast)
//   - Concurrency: worker slots shared by every batch running on a context
//   - Throughput: an optional points-per-second token bucket for batch queries
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and atomic counters
// for usage tracking. AcquireMemory is non-blocking and returns immediately
// with ErrMemoryLimitExceeded if the limit would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if err := rc.AcquireMemory(estimate); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//
// # Worker Limits
//
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
//
// # Throughput Limiting
//
//	rc := resource.NewController(resource.Config{
//	    PointsPerSecond: 1_000_000,
//	})
//
//	if err := rc.AcquirePoints(ctx, len(chunk)); err != nil {
//	    return err
//	}
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
