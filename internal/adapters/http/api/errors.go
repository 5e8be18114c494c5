package api

import "errors"

// Sentinel kinds for API errors. Dependencies implementations return these
// so handlers can map pipeline outcomes onto status codes.
var (
	ErrBadRequest  = errors.New("bad request")
	ErrRateLimited = errors.New("rate limited")
	ErrStoreFailed = errors.New("lead store failed")
)
