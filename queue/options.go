package queue

import (
	"github.com/davidvella/keyq/metrics"
	"github.com/davidvella/keyq/monitoring"
)

const (
	DefaultInitialCapacity = 64
	DefaultIndexSize       = 1 << 14
)

// options defines all configuration options for a queue.
type options struct {
	initialCapacity int // Heap slots allocated up front
	indexSize       int // Starting number of key index cells

	logger   monitoring.Logger
	registry *metrics.Registry
}

// Option is a function that configures the queue options.
type Option func(*options)

// WithInitialCapacity sets the number of heap slots allocated by New.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

// WithIndexSize sets the starting size of the key index. It is rounded up to
// a power of two.
func WithIndexSize(n int) Option {
	return func(o *options) {
		o.indexSize = n
	}
}

// WithLogger sets the logger for queue lifecycle events.
func WithLogger(l monitoring.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRegistry enables statistics recorded in r.
func WithRegistry(r *metrics.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		initialCapacity: DefaultInitialCapacity,
		indexSize:       DefaultIndexSize,
		logger:          monitoring.NewNopLogger(),
		registry:        nil,
	}
}

func (o *options) normalize() {
	d := defaultOptions()
	if o.initialCapacity <= 0 {
		o.initialCapacity = d.initialCapacity
	}
	if o.indexSize <= 0 {
		o.indexSize = d.indexSize
	}
	if o.logger == nil {
		o.logger = d.logger
	}
}
