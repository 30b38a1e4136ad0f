package hydrate

import "go.uber.org/zap"

// DefaultBucket is the overflow bucket used when none is named.
const DefaultBucket = "data"

type config struct {
	bucket   string
	dynamic  bool
	fallback any
	logger   *zap.Logger
}

// Option tunes a fill. Options passed to For apply to every fill of that
// Hydrator; options passed to a fill call are applied after them.
type Option func(c *config)

// WithBucket names the overflow bucket for push fills. A scalar source is
// stored under this name as well.
func WithBucket(name string) Option {
	return func(c *config) {
		c.bucket = name
	}
}

// WithDynamicFields lets push fills accept keys the host does not declare.
// They are kept in Fillable.Dynamic instead of the overflow bucket.
func WithDynamicFields() Option {
	return func(c *config) {
		c.dynamic = true
	}
}

// WithDefault sets the value pull fills use for keys the source lacks.
func WithDefault(v any) Option {
	return func(c *config) {
		c.fallback = v
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts ...Option) config {
	c := config{
		bucket: DefaultBucket,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}
