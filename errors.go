package exactcover

import (
	"errors"
	"fmt"
)

// Sentinel errors identify the category of a build failure. Wrap one of
// these with fmt.Errorf's %w verb, or compare against it with errors.Is —
// BuildError.Kind is always one of these three values.
var (
	// ErrIteration means the caller's subset or element source signalled a
	// failure while being consumed. Build takes a plain []Subset[T], which
	// cannot itself fail to iterate, so this kind is unreachable through
	// the current Build signature; it is kept as part of the error
	// taxonomy for a future source that can fail mid-iteration (a channel
	// or a file reader, for instance).
	ErrIteration = errors.New("exactcover: subset iteration failed")

	// ErrComparison means label equality comparison itself failed. The
	// comparable constraint's built-in == never fails, so this kind is
	// likewise unreachable today; it exists for the same reason as
	// ErrIteration.
	ErrComparison = errors.New("exactcover: label comparison failed")

	// ErrDuplicateElement is returned when a single subset repeats the same
	// element. The search correctness proof depends on each row visiting
	// each column at most once; a repeated element would make cover and
	// uncover within that row no longer exact inverses of each other.
	ErrDuplicateElement = errors.New("exactcover: duplicate element within a subset")
)

// BuildError reports a failure while constructing the matrix from the
// caller's subsets. Index identifies which subset (0-based, in the order
// passed to Coverings) triggered the failure; Kind classifies which of the
// sentinel errors above it corresponds to; Err is the underlying cause,
// which Kind wraps (for the kinds this package currently produces, Err is
// Kind itself).
type BuildError struct {
	Index int
	Kind  error
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("exactcover: building subset %d: %v", e.Index, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
