package cfg

import "errors"

// Construction-time contract violations. All are fail-fast: they indicate a
// caller defect, not a transient condition, and abort the in-progress
// generation session.
var (
	// ErrInvalidArgument is returned for malformed prefetch target
	// combinations, non-positive degrees, wrong fan-out arity, and
	// out-of-range probabilities.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateEntity is returned when a function id is registered twice.
	ErrDuplicateEntity = errors.New("duplicate entity")

	// ErrEmptyCollection is returned when selecting from an empty set.
	ErrEmptyCollection = errors.New("empty collection")
)
