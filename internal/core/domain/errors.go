package domain

import "errors"

// Domain errors represent model failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input, such as a
	// non-alphabetic character passed to a write.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState indicates an operation that does not apply to the
	// square's current state, such as reading the letter of a block.
	ErrInvalidState = errors.New("invalid state")

	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrInvalidDimensions indicates a non-positive row or column count.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// Session Errors.

	// ErrNoGrid indicates an editing session has no grid yet.
	ErrNoGrid = errors.New("no grid")

	// ErrRateLimited indicates the caller exceeded the allowed edit rate.
	ErrRateLimited = errors.New("rate limited")
)
