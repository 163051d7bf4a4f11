package cullgo

import (
	"log/slog"
	"runtime"
)

type options struct {
	logger  *Logger
	metrics MetricsCollector
	workers int
}

// Option configures Culler construction behavior.
//
// The active SIMD path is not an option: it is process-wide, detected
// once at startup, and forced only via the CULLGO_SIMD environment
// variable.
type Option func(*options)

// WithLogger configures structured logging for culling operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := cullgo.NewJSONLogger(slog.LevelInfo)
//	c := cullgo.New(cullgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
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

// WithMetricsCollector configures a metrics collector for monitoring
// culling throughput. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &cullgo.BasicMetricsCollector{}
//	c := cullgo.New(cullgo.WithMetricsCollector(metrics))
//	// ... cull ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}

// WithWorkers configures the worker count used by CullParallel.
// Values below 1 are clamped to 1. The default is GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
		workers: runtime.GOMAXPROCS(0),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}
	return o
}
