package exactcover

import "context"

// Option configures an Iterator at construction. Options are applied in the
// order passed to Coverings.
type Option[T comparable] func(*iteratorConfig[T])

type iteratorConfig[T comparable] struct {
	ctx     context.Context
	options *Options
}

// WithContext makes the search responsive to cancellation. The search loop
// checks ctx.Err() once per step of the algorithm, so a long-running search
// over a hard instance can be stopped from outside without waiting for it
// to finish naturally. If omitted, the iterator uses context.Background
// and is never cancelled this way.
func WithContext[T comparable](ctx context.Context) Option[T] {
	return func(c *iteratorConfig[T]) {
		c.ctx = ctx
	}
}

// WithOptions attaches solve-statistics settings to the iterator. If
// omitted, the iterator behaves as though DefaultOptions() was passed:
// statistics collection is disabled and Stats reports only the
// cheaply-known initial matrix size.
func WithOptions[T comparable](options *Options) Option[T] {
	return func(c *iteratorConfig[T]) {
		c.options = options
	}
}
