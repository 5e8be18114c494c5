package sanitize

import "errors"

// Sentinel kinds for validation errors. Callers map any ErrInvalid to a
// single generic client-facing message.
var (
	ErrInvalid = errors.New("invalid submission")
)
