// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults, Load(ctx) to layer
//   file and environment sources on top.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
	"time"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// OpenAIAPIKey authenticates model calls. Empty disables the chat widget.
	OpenAIAPIKey string `koanf:"openai_api_key"`

	// OpenAIModel selects the completion model.
	OpenAIModel string `koanf:"openai_model"`

	// OpenAIMaxTokens caps completion length.
	OpenAIMaxTokens int `koanf:"openai_max_tokens"`

	// UpstreamTimeout bounds each model provider call.
	UpstreamTimeout time.Duration `koanf:"upstream_timeout"`

	// MaxTranscriptTurns bounds the chat window forwarded to the model.
	MaxTranscriptTurns int `koanf:"max_transcript_turns"`

	// SanityProjectID, SanityDataset, SanityAPIVersion and SanityToken
	// locate and authenticate the lead dataset. Missing project or token
	// disables persistence.
	SanityProjectID  string `koanf:"sanity_project_id"`
	SanityDataset    string `koanf:"sanity_dataset"`
	SanityAPIVersion string `koanf:"sanity_api_version"`
	SanityToken      string `koanf:"sanity_token"`

	// ResendAPIKey authenticates notification sends. Empty disables email.
	ResendAPIKey string `koanf:"resend_api_key"`

	// EmailFrom and EmailTo are the notification sender and recipient.
	EmailFrom string `koanf:"email_from"`
	EmailTo   string `koanf:"email_to"`

	// SiteURL is named in the notification email footer.
	SiteURL string `koanf:"site_url"`

	// RateLimitWindow and RateLimitMax shape the per-IP form limiter.
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	RateLimitMax    int           `koanf:"rate_limit_max"`

	// NotifyQueueSize bounds the in-memory notification queue.
	NotifyQueueSize int `koanf:"notify_queue_size"`

	// NotifyWorkers sets the number of notification delivery workers.
	NotifyWorkers int `koanf:"notify_workers"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		OpenAIModel:        "gpt-4o-mini",
		OpenAIMaxTokens:    400,
		UpstreamTimeout:    30 * time.Second,
		MaxTranscriptTurns: 12,
		SanityDataset:      "production",
		SanityAPIVersion:   "2024-01-01",
		EmailFrom:          "noreply@lixantech.com",
		EmailTo:            "admin.2026@lixantech.com",
		SiteURL:            "lixantech.com",
		RateLimitWindow:    10 * time.Minute,
		RateLimitMax:       3,
		NotifyQueueSize:    1024,
		NotifyWorkers:      runtime.NumCPU(),
	}
}
