package cullgo

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
//	    cullCounter   prometheus.Counter
//	    cullHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordCull(objects, visible int, duration time.Duration) {
//	    p.cullCounter.Inc()
//	    // ... record visible ratio, duration, etc.
//	}
type MetricsCollector interface {
	// RecordCull is called after each culling call. objects is the
	// input count, visible the number that survived all planes.
	RecordCull(objects, visible int, duration time.Duration)

	// RecordExtract is called after each plane extraction. degenerate
	// is the number of planes skipped as degenerate (usually zero).
	RecordExtract(degenerate int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCull(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordExtract(int, time.Duration)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CullCount        atomic.Int64
	CullObjects      atomic.Int64
	CullVisible      atomic.Int64
	CullTotalNanos   atomic.Int64
	ExtractCount     atomic.Int64
	ExtractDegen     atomic.Int64
	ExtractTotalNano atomic.Int64
}

// RecordCull implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCull(objects, visible int, duration time.Duration) {
	b.CullCount.Add(1)
	b.CullObjects.Add(int64(objects))
	b.CullVisible.Add(int64(visible))
	b.CullTotalNanos.Add(duration.Nanoseconds())
}

// RecordExtract implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExtract(degenerate int, duration time.Duration) {
	b.ExtractCount.Add(1)
	b.ExtractDegen.Add(int64(degenerate))
	b.ExtractTotalNano.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CullCount:         b.CullCount.Load(),
		CullObjects:       b.CullObjects.Load(),
		CullVisible:       b.CullVisible.Load(),
		CullAvgNanos:      b.getAvgCullNanos(),
		ExtractCount:      b.ExtractCount.Load(),
		ExtractDegenerate: b.ExtractDegen.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgCullNanos() int64 {
	count := b.CullCount.Load()
	if count == 0 {
		return 0
	}
	return b.CullTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CullCount         int64
	CullObjects       int64
	CullVisible       int64
	CullAvgNanos      int64
	ExtractCount      int64
	ExtractDegenerate int64
}
