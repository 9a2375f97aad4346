package exactcover

import (
	"context"
	"time"
)

// action is the result of one step() of the search: whether the search
// descended, hit a dead end, or completed a cover.
type action int

const (
	actionContinue action = iota
	actionBackup
	actionSolution
)

// RowTag is the row identity reported for each row participating in a
// yielded solution: the Tag field of the Subset that produced it.
type RowTag = any

// Iterator drains the exact covers of a matrix one at a time. A zero
// Iterator is not usable; obtain one from Coverings.
type Iterator[T comparable] struct {
	ctx     context.Context
	options *Options

	root *column[T]

	solution  []*node[T]
	first     bool
	closed    bool
	err       error
	startedAt time.Time

	stats Stats
}

// Options configures solve-time statistics collection. Unlike Option
// (construction-time functional options), Options is a plain struct of
// knobs constructed with DefaultOptions, the same shape as
// internal/solver/dancing_links_util.go's DancingLinksOptions.
type Options struct {
	// EnableDebugging, when true, causes Stats to be populated as the
	// search runs instead of staying zeroed. Collecting statistics costs a
	// counter increment per step and per backup, which is why it is
	// opt-in.
	EnableDebugging bool
}

// DefaultOptions returns an Options with statistics collection disabled.
func DefaultOptions() *Options {
	return &Options{EnableDebugging: false}
}

// Stats reports search-progress counters. InitialColumns and InitialRows are
// always set; the other fields are zero unless the iterator was constructed
// with WithOptions and EnableDebugging set.
type Stats struct {
	StepsTaken     int
	BacktrackCount int
	SolutionsFound int
	TimeElapsed    time.Duration
	InitialColumns int
	InitialRows    int
}

// Coverings builds the exact-cover matrix for subsets and returns an
// iterator over its solutions. Subsets are consumed in order; see Subset
// for how elements and row-tags relate. An error here is always a
// *BuildError wrapping one of the Err* sentinels, and means no iterator was
// returned.
func Coverings[T comparable](subsets []Subset[T], opts ...Option[T]) (*Iterator[T], error) {
	cfg := &iteratorConfig[T]{ctx: context.Background(), options: DefaultOptions()}
	for _, opt := range opts {
		opt(cfg)
	}

	m, err := Build(subsets)
	if err != nil {
		return nil, err
	}

	it := &Iterator[T]{
		ctx:       cfg.ctx,
		options:   cfg.options,
		root:      m.root,
		solution:  make([]*node[T], 0, columnCount(m.root)),
		first:     true,
		startedAt: time.Now(),
	}
	it.stats.InitialColumns = columnCount(m.root)
	it.stats.InitialRows = m.rows
	return it, nil
}

// Next advances the search and returns the row-tags of the next exact
// cover, in the order the rows were pushed onto the solution stack (which
// is not necessarily the order subsets were passed to Coverings). The
// second return value is false once the search is exhausted or the
// iterator has been closed; subsequent calls continue to return false.
func (it *Iterator[T]) Next() ([]RowTag, bool) {
	if it.closed || it.err != nil {
		return nil, false
	}

	if it.first {
		it.first = false
	} else if !it.backup() {
		it.finish()
		return nil, false
	}

	for {
		if err := it.ctx.Err(); err != nil {
			it.err = err
			it.finish()
			return nil, false
		}

		switch it.step() {
		case actionContinue:
			continue
		case actionBackup:
			if !it.backup() {
				it.finish()
				return nil, false
			}
		case actionSolution:
			return it.currentSolution(), true
		}
	}
}

// step advances the search by one level: it chooses the column with the
// fewest remaining rows, tries that column's first remaining row, and
// reports what happened.
func (it *Iterator[T]) step() action {
	if it.options.EnableDebugging {
		it.stats.StepsTaken++
	}

	c := smallestColumn(it.root)
	if c == nil {
		return actionSolution
	}
	if c.count == 0 {
		return actionBackup
	}

	r := c.down
	coverRow(r)
	it.solution = append(it.solution, r)
	return actionContinue
}

// backup retreats from the most recently chosen row, either advancing it to
// the next candidate row in the same column or popping it and retreating
// further. It reports false when the stack empties, meaning the search is
// exhausted.
func (it *Iterator[T]) backup() bool {
	for len(it.solution) > 0 {
		if it.options.EnableDebugging {
			it.stats.BacktrackCount++
		}

		top := len(it.solution) - 1
		r := it.solution[top]
		uncoverRow(r)

		next := r.down
		if next == &r.column.node {
			it.solution = it.solution[:top]
			continue
		}

		coverRow(next)
		it.solution[top] = next
		return true
	}
	return false
}

// currentSolution copies the row-tags of the current solution stack into a
// slice owned by the caller.
func (it *Iterator[T]) currentSolution() []RowTag {
	if it.options.EnableDebugging {
		it.stats.SolutionsFound++
	}
	out := make([]RowTag, len(it.solution))
	for i, r := range it.solution {
		out[i] = r.tag
	}
	return out
}

// finish restores the matrix to its as-built state by uncovering every row
// still on the solution stack, in LIFO order, and marks the iterator
// closed. It is idempotent.
func (it *Iterator[T]) finish() {
	if it.closed {
		return
	}
	for i := len(it.solution) - 1; i >= 0; i-- {
		uncoverRow(it.solution[i])
	}
	it.solution = nil
	it.closed = true
}

// Close releases the iterator, restoring the matrix to its as-built state
// if the search was not already exhausted. It is idempotent and safe to
// defer; a drained iterator's Close is a no-op beyond the idempotence
// check, since draining already performed the equivalent restore.
func (it *Iterator[T]) Close() error {
	it.finish()
	return it.err
}

// Err returns the error, if any, that stopped the search early. A nil
// return after Next reports false means the search ran to exhaustion
// normally; a non-nil return means the context passed via WithContext was
// cancelled.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Stats returns a snapshot of the iterator's progress counters.
func (it *Iterator[T]) Stats() Stats {
	if it.options.EnableDebugging {
		it.stats.TimeElapsed = time.Since(it.startedAt)
	}
	return it.stats
}
