package splitter

import "errors"

// Common splitter errors
var (
	// ErrInvalidWidth indicates a chunk width below 1
	ErrInvalidWidth = errors.New("width must be positive")

	// ErrInvalidOverlap indicates a negative overlap
	ErrInvalidOverlap = errors.New("overlap must be non-negative")

	// ErrOverlapTooLarge indicates overlap >= width
	ErrOverlapTooLarge = errors.New("overlap must be less than width")

	// ErrInvalidTargetSize indicates a target size below 1
	ErrInvalidTargetSize = errors.New("target size must be positive")

	// ErrInvalidMaxSize indicates a max size below 1
	ErrInvalidMaxSize = errors.New("max size must be positive")

	// ErrTargetExceedsMax indicates target size > max size
	ErrTargetExceedsMax = errors.New("target size cannot exceed max size")

	// ErrNoTerminators indicates an empty sentence-terminator set
	ErrNoTerminators = errors.New("at least one sentence terminator is required")

	// ErrInvalidMaxTokens indicates max tokens is invalid (<=0)
	ErrInvalidMaxTokens = errors.New("max tokens must be positive")

	// ErrInvalidChunkSize indicates token chunk size is invalid (<=0)
	ErrInvalidChunkSize = errors.New("chunk size must be positive")

	// ErrChunkSizeExceedsMax indicates token chunk size exceeds max tokens
	ErrChunkSizeExceedsMax = errors.New("chunk size cannot exceed max tokens")

	// ErrTokenizerFailed indicates tokenization failed
	ErrTokenizerFailed = errors.New("tokenization failed")
)
