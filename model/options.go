package model

import (
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/ti/recordstore/log"
)

// DefaultPrimaryKey is the primary-key field used when none is configured.
const DefaultPrimaryKey = "id"

// Options are the loadable settings of a Model, see config.Load.
type Options struct {
	PrimaryKey string `json:"primaryKey,omitempty" yaml:"primaryKey"`
}

type options struct {
	Options
	idGenerator   IDGenerator
	cacheCapacity uint64
	logger        log.StdLogger
	registerer    prom.Registerer
}

func evaluateOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.PrimaryKey == "" {
		o.PrimaryKey = DefaultPrimaryKey
	}
	return o
}

// Option the option for a Model.
type Option func(*options)

// WithPrimaryKey sets the field treated as the unique identifier.
func WithPrimaryKey(key string) Option {
	return func(o *options) {
		o.PrimaryKey = key
	}
}

// WithOptions applies loaded Options, empty fields keep their defaults.
func WithOptions(opts Options) Option {
	return func(o *options) {
		if opts.PrimaryKey != "" {
			o.PrimaryKey = opts.PrimaryKey
		}
	}
}

// WithIDGenerator replaces the per-model counter used for missing primary keys.
func WithIDGenerator(g IDGenerator) Option {
	return func(o *options) {
		o.idGenerator = g
	}
}

// WithLookupCache keeps up to capacity primary-key positions in a LRU index.
func WithLookupCache(capacity uint64) Option {
	return func(o *options) {
		o.cacheCapacity = capacity
	}
}

// WithLogger sets a fixed logger. By default the model derives one from the
// current log default on every write, labelled with its instance id, so
// log.SetOutput and log.SetLevel apply to existing models; a logger passed
// here keeps whatever writer it was built with.
func WithLogger(logger log.StdLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics counts model operations on the registerer. Models sharing a
// registerer share the counters. New panics, like prometheus.MustRegister,
// when reg holds a different collector named
// recordstore_model_operations_total.
func WithMetrics(reg prom.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}
