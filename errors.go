package pool_seeding

import "errors"

var (
	// ErrInvalidConfig marks input that can never produce a search: bad pool
	// count, empty roster, out of range rates.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvariantViolation means an operator produced an impossible
	// individual. It always indicates a bug, never bad input.
	ErrInvariantViolation = errors.New("invariant violation")
)
