package reembed

import "errors"

var (
	// ErrInvalidMaxAttempts is returned by RetryWithBackoff when asked
	// for zero or fewer attempts.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")
)
