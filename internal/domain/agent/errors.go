package agent

import "errors"

var (
	// ErrNotConfigured indicates the model provider has no API key.
	ErrNotConfigured = errors.New("chat agent not configured")

	// ErrEmptyTranscript indicates the caller supplied no messages.
	ErrEmptyTranscript = errors.New("empty transcript")

	// ErrEmptyCompletion indicates the provider returned no choices.
	ErrEmptyCompletion = errors.New("empty completion")
)
