package polygo

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/hupe1980/polygo/internal/rtree"
	"github.com/hupe1980/polygo/spatial"
)

// DefaultMinPartitionSize is the smallest number of points a batch worker
// receives.
const DefaultMinPartitionSize = 4096

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	workers          int
	minPartitionSize int
	nodeCapacity     int
	cost             spatial.Cost
	memoryLimit      int64
	pointsPerSecond  int64
}

// Option configures a Context.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &polygo.BasicMetricsCollector{}
//	pc, _ := polygo.New(2, polygo.WithMetricsCollector(metrics))
//	// ... use pc ...
//	stats := metrics.GetStats()
//	fmt.Printf("Queries: %d, Avg latency: %dns\n", stats.QueryCount, stats.QueryAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := polygo.NewJSONLogger(slog.LevelInfo)
//	pc, _ := polygo.New(0, polygo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithWorkers sets the number of worker slots shared by all batch queries
// on a context. Zero means runtime.GOMAXPROCS(0); one runs every batch on the
// caller's goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMinPartitionSize sets the smallest partition handed to a worker.
// Batches shorter than two partitions run on a single goroutine.
func WithMinPartitionSize(n int) Option {
	return func(o *options) {
		o.minPartitionSize = n
	}
}

// WithNodeCapacity sets the maximum fan-out of the index trees.
func WithNodeCapacity(n int) Option {
	return func(o *options) {
		o.nodeCapacity = n
	}
}

// WithCost replaces the cost used by CustomVertexDistances. The default is
// spatial.DefaultCost: 0.995792*d plus the sum of the first two coefficients.
//
// Non-monotonic costs are answered by an exhaustive scan. A cost with a
// Validate() error method is checked by New.
func WithCost(c spatial.Cost) Option {
	return func(o *options) {
		o.cost = c
	}
}

// WithMemoryLimit bounds the estimated memory of all indexes of a context.
// A build that would exceed the limit fails with ErrResourceExhausted and
// leaves the context unusable. Zero disables the limit.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithThroughputLimit caps the rate at which batch queries on a context
// process points. Zero disables the limit.
func WithThroughputLimit(pointsPerSecond int64) Option {
	return func(o *options) {
		o.pointsPerSecond = pointsPerSecond
	}
}

func applyOptions(optFns []Option) (options, error) {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		minPartitionSize: DefaultMinPartitionSize,
		nodeCapacity:     rtree.DefaultCapacity,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	switch {
	case o.workers < 0:
		return o, fmt.Errorf("%w: workers must not be negative, got %d", ErrConfiguration, o.workers)
	case o.minPartitionSize < 1:
		return o, fmt.Errorf("%w: min partition size must be positive, got %d", ErrConfiguration, o.minPartitionSize)
	case o.nodeCapacity < 2:
		return o, fmt.Errorf("%w: node capacity must be at least 2, got %d", ErrConfiguration, o.nodeCapacity)
	case o.memoryLimit < 0:
		return o, fmt.Errorf("%w: memory limit must not be negative, got %d", ErrConfiguration, o.memoryLimit)
	case o.pointsPerSecond < 0:
		return o, fmt.Errorf("%w: throughput limit must not be negative, got %d", ErrConfiguration, o.pointsPerSecond)
	}

	if v, ok := o.cost.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return o, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
	}

	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.cost == nil {
		o.cost = spatial.DefaultCost()
	}

	return o, nil
}
