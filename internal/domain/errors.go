package domain

import "errors"

// Sentinel error kinds. Wrap with fmt.Errorf("...: %w", ErrX) at the
// point of detection so callers can errors.Is against these.
var (
	// ErrInvalidDimension: grid shape inconsistent with dimension, or N
	// cannot be decomposed into integer R*C.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrOutOfRange: cell value outside [0, N].
	ErrOutOfRange = errors.New("cell value out of range")
	// ErrContradictoryInput: givens violate Sudoku constraints at the start.
	ErrContradictoryInput = errors.New("contradictory input")
	// ErrResourceExhausted: arena or working-set allocation failed.
	ErrResourceExhausted = errors.New("resource exhausted")
)
