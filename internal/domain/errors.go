package domain

import "errors"

// ValidationError indicates invalid input
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is allows errors.Is() to match against ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Sentinel errors - use with errors.Is()
var (
	ErrValidation = errors.New("validation failed")

	// ErrEmptyCompletion is returned when a provider answers without any text.
	ErrEmptyCompletion = errors.New("empty completion")

	// ErrUnsupportedStore is returned for an unknown HISTORY_STORE backend.
	ErrUnsupportedStore = errors.New("unsupported history store")
)
