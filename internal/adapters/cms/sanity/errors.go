package sanity

import "errors"

// ErrNotConfigured indicates the client lacks a project ID or write token.
var ErrNotConfigured = errors.New("sanity client not configured")
