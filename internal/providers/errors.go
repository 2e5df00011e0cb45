package providers

import "errors"

type authError struct {
	message string
}

func (e *authError) Error() string {
	return "authentication error: " + e.message
}

// NewAuthError wraps a message as an authentication error.
func NewAuthError(message string) error {
	return &authError{message: message}
}

// IsAuthError checks if an error is an authentication error, unwrapping as
// needed. Auth failures are not per-file conditions: every subsequent call
// would fail the same way, so callers abort the run on them.
func IsAuthError(err error) bool {
	var ae *authError
	return errors.As(err, &ae)
}
