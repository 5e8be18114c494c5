package service

import (
	"time"

	"github.com/lixantech/leadgate/internal/domain/agent"
	"github.com/lixantech/leadgate/internal/domain/lead"
	"github.com/lixantech/leadgate/internal/domain/ratelimit"
	"github.com/lixantech/leadgate/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithOpenAI sets the model provider credentials.
func WithOpenAI(creds OpenAICredentials) Option {
	return func(s *Service) {
		s.openAI = creds
	}
}

// WithSanity sets the lead store credentials.
func WithSanity(creds SanityCredentials) Option {
	return func(s *Service) {
		s.sanityCreds = creds
	}
}

// WithResend sets the notification credentials.
func WithResend(creds ResendCredentials) Option {
	return func(s *Service) {
		s.resendCreds = creds
	}
}

// WithRateLimit shapes the per-IP form limiter.
func WithRateLimit(window time.Duration, maxHits int) Option {
	return func(s *Service) {
		if window > 0 {
			s.rateLimitWindow = window
		}
		if maxHits > 0 {
			s.rateLimitMax = maxHits
		}
	}
}

// WithQueueSize sets the maximum size of the notification queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithWorkerCount sets the number of notification workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithMaxTranscriptTurns bounds the chat window forwarded to the model.
func WithMaxTranscriptTurns(turns int) Option {
	return func(s *Service) {
		if turns > 0 {
			s.maxTranscriptTurns = turns
		}
	}
}

// WithStore injects a lead store, replacing the Sanity client.
func WithStore(store lead.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithNotifier injects a notifier, replacing the Resend client.
func WithNotifier(notifier lead.Notifier) Option {
	return func(s *Service) {
		if notifier != nil {
			s.notifier = notifier
		}
	}
}

// WithCompleter injects a chat completer, replacing the OpenAI client.
func WithCompleter(completer agent.ChatCompleter) Option {
	return func(s *Service) {
		if completer != nil {
			s.completer = completer
		}
	}
}

// WithLimiter injects a rate limiter.
func WithLimiter(limiter ratelimit.Limiter) Option {
	return func(s *Service) {
		if limiter != nil {
			s.limiter = limiter
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
