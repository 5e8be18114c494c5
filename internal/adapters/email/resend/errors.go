package resend

import "errors"

// ErrNotConfigured indicates the notifier lacks an API key or recipient.
var ErrNotConfigured = errors.New("resend notifier not configured")
