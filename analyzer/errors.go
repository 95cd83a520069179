package analyzer

import "errors"

// Common analyzer errors
var (
	// ErrInvalidContextWindow indicates a context window below 1
	ErrInvalidContextWindow = errors.New("context window must be positive")

	// ErrNoTerminators indicates an empty sentence-terminator set
	ErrNoTerminators = errors.New("at least one sentence terminator is required")
)
