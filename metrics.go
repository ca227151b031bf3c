package polygo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    queryHistogram *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordQuery(query string, points int, duration time.Duration, err error) {
//	    p.queryHistogram.WithLabelValues(query).Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordAddPolygon is called after each AddPolygon call.
	// err is nil if the polygon was added.
	RecordAddPolygon(duration time.Duration, err error)

	// RecordBuild is called after each lazy index build.
	// index names the index, items is the number of indexed entries.
	RecordBuild(index string, items int, duration time.Duration, err error)

	// RecordQuery is called after each batch query.
	// query names the operation, points is the batch size.
	RecordQuery(query string, points int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAddPolygon(time.Duration, error)         {}
func (NoopMetricsCollector) RecordBuild(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordQuery(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddPolygonCount  atomic.Int64
	AddPolygonErrors atomic.Int64
	BuildCount       atomic.Int64
	BuildErrors      atomic.Int64
	BuildTotalNanos  atomic.Int64
	QueryCount       atomic.Int64
	QueryErrors      atomic.Int64
	QueryPoints      atomic.Int64
	QueryTotalNanos  atomic.Int64
}

// RecordAddPolygon implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAddPolygon(duration time.Duration, err error) {
	b.AddPolygonCount.Add(1)
	if err != nil {
		b.AddPolygonErrors.Add(1)
	}
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(index string, items int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(query string, points int, duration time.Duration, err error) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.QueryErrors.Add(1)
		return
	}
	b.QueryPoints.Add(int64(points))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddPolygonCount:  b.AddPolygonCount.Load(),
		AddPolygonErrors: b.AddPolygonErrors.Load(),
		BuildCount:       b.BuildCount.Load(),
		BuildErrors:      b.BuildErrors.Load(),
		QueryCount:       b.QueryCount.Load(),
		QueryErrors:      b.QueryErrors.Load(),
		QueryPoints:      b.QueryPoints.Load(),
		QueryAvgNanos:    b.getAvgQueryNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgQueryNanos() int64 {
	count := b.QueryCount.Load()
	if count == 0 {
		return 0
	}
	return b.QueryTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddPolygonCount  int64
	AddPolygonErrors int64
	BuildCount       int64
	BuildErrors      int64
	QueryCount       int64
	QueryErrors      int64
	QueryPoints      int64
	QueryAvgNanos    int64
}
