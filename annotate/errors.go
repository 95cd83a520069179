package annotate

import "errors"

// ErrInvalidPreviewWidth indicates a neighbor preview width below 1.
var ErrInvalidPreviewWidth = errors.New("preview width must be positive")
