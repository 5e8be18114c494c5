// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/lixantech/leadgate/internal/adapters/cms/sanity"
	"github.com/lixantech/leadgate/internal/adapters/email/resend"
	"github.com/lixantech/leadgate/internal/adapters/http/api"
	llm "github.com/lixantech/leadgate/internal/adapters/llm/openai"
	notifyqueue "github.com/lixantech/leadgate/internal/adapters/mq/queue"
	workerpool "github.com/lixantech/leadgate/internal/adapters/mq/worker"
	"github.com/lixantech/leadgate/internal/domain/agent"
	"github.com/lixantech/leadgate/internal/domain/lead"
	"github.com/lixantech/leadgate/internal/domain/ratelimit"
	"github.com/lixantech/leadgate/internal/domain/sanitize"
	"github.com/lixantech/leadgate/pkg/logger"
	"github.com/lixantech/leadgate/pkg/metrics"
)

// OpenAICredentials configures the model provider adapter.
type OpenAICredentials struct {
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// SanityCredentials configures the lead store adapter.
type SanityCredentials struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
}

// ResendCredentials configures the notification adapter.
type ResendCredentials struct {
	APIKey  string
	From    string
	To      string
	SiteURL string
}

// Service implements the API dependencies for the lead capture pipeline.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    lead.Store
	notifier lead.Notifier
	limiter  ratelimit.Limiter
	agent    *agent.Agent
	queue    notifyqueue.Queue
	pool     *workerpool.Pool

	// Injected chat completer, mainly for tests. Built from the OpenAI
	// credentials when nil.
	completer agent.ChatCompleter

	// Configuration
	openAI             OpenAICredentials
	sanityCreds        SanityCredentials
	resendCreds        ResendCredentials
	rateLimitWindow    time.Duration
	rateLimitMax       int
	queueSize          int
	workerCount        int
	maxTranscriptTurns int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		rateLimitWindow:    10 * time.Minute,
		rateLimitMax:       3,
		queueSize:          1024,
		workerCount:        runtime.NumCPU(),
		maxTranscriptTurns: 12,
		logger:             nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting lead capture service...")

	if s.limiter == nil {
		s.limiter = ratelimit.New(
			ratelimit.WithWindow(s.rateLimitWindow),
			ratelimit.WithMaxHits(s.rateLimitMax),
		)
	}
	if s.store == nil {
		s.store = sanity.New(s.sanityCreds.ProjectID, s.sanityCreds.Token,
			sanity.WithDataset(s.sanityCreds.Dataset),
			sanity.WithAPIVersion(s.sanityCreds.APIVersion),
		)
	}
	if s.notifier == nil {
		s.notifier = resend.New(s.resendCreds.APIKey, s.resendCreds.To,
			resend.WithFrom(s.resendCreds.From),
			resend.WithSiteURL(s.resendCreds.SiteURL),
		)
	}
	if s.completer == nil {
		s.completer = llm.New(s.openAI.APIKey,
			llm.WithModel(s.openAI.Model),
			llm.WithMaxTokens(s.openAI.MaxTokens),
			llm.WithTimeout(s.openAI.Timeout),
		)
	}

	capturer := agent.NewLeadCapturer(s.store)
	s.agent = agent.New(s.completer, capturer,
		agent.WithMaxTurns(s.maxTranscriptTurns),
	)

	s.queue = notifyqueue.NewInMemoryQueue(
		notifyqueue.WithCapacity(s.queueSize),
		notifyqueue.WithBufferSize(s.queueSize),
	)
	s.pool = workerpool.NewPool(s.workerCount, s.queue, s.notifier)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "lead capture service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Bool("chatConfigured", s.completer.Configured()),
		logger.Bool("storeConfigured", s.store.Configured()),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping lead capture service...")

	// Stop worker pool; the pool closes the queue so drained workers exit.
	if s.pool != nil {
		_ = s.pool.Shutdown(context.Background())
	}

	s.started = false
	s.logger.Info(context.Background(), "lead capture service stopped")
}

// Chat runs one conversation cycle for the chat widget.
func (s *Service) Chat(ctx context.Context, transcript []agent.Message) (string, error) {
	reply, err := s.agent.Reply(ctx, transcript)
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	return reply, nil
}

// SubmitForm runs the contact form pipeline: honeypot absorption,
// validation and sanitization, rate limiting, persistence, and a
// best-effort notification enqueue.
func (s *Service) SubmitForm(ctx context.Context, clientIP string, sub sanitize.FormSubmission) error {
	// Trapped submissions succeed from the caller's point of view so
	// automated senders get no detection signal.
	if sub.Trapped() {
		metrics.RecordHoneypotDrop()
		s.logger.Info(ctx, "honeypot submission dropped",
			logger.String("clientIP", clientIP),
		)
		return nil
	}

	safe, err := sanitize.ValidateForm(sub)
	if err != nil {
		// Field-level detail stays in the logs; the handler sends a
		// generic message.
		s.logger.Info(ctx, "form submission rejected",
			logger.String("clientIP", clientIP),
			logger.Error(err),
		)
		return fmt.Errorf("submit form: %w", err)
	}

	if !s.limiter.Allow(ctx, clientIP) {
		metrics.RecordRateLimited()
		s.logger.Warn(ctx, "form submission rate limited",
			logger.String("clientIP", clientIP),
		)
		return fmt.Errorf("submit form: %w", api.ErrRateLimited)
	}

	l := lead.Lead{
		Name:       safe.Name,
		Email:      safe.Email,
		Company:    safe.Company,
		Interest:   sanitize.ServiceToInterest(safe.Service),
		Notes:      safe.Message,
		Source:     lead.SourceContactForm,
		CapturedAt: time.Now().UTC(),
	}

	if err := s.store.Create(ctx, l); err != nil {
		s.logger.Error(ctx, "form lead persistence failed",
			logger.String("interest", string(l.Interest)),
			logger.Error(err),
		)
		return fmt.Errorf("submit form: %w: %w", api.ErrStoreFailed, err)
	}

	metrics.RecordLeadCaptured(string(lead.SourceContactForm))
	s.logger.Info(ctx, "form lead captured",
		logger.String("interest", string(l.Interest)),
	)

	// Notification delivery is best-effort; a full queue is logged and
	// dropped, never surfaced to the submitter.
	n := lead.Notification{
		Name:    safe.Name,
		Email:   safe.Email,
		Company: safe.Company,
		Service: safe.Service,
		Message: safe.Message,
	}
	if ok := s.queue.Enqueue(ctx, n); !ok {
		s.logger.Warn(ctx, "notification queue full, dropping notification")
	}

	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
	}

	if s.started {
		queueLen := s.queue.Len(ctx)
		stats["queueLength"] = queueLen
		stats["rateLimiterSize"] = s.limiter.Size()
		stats["chatConfigured"] = s.completer.Configured()
		stats["storeConfigured"] = s.store.Configured()

		// Update metrics
		metrics.UpdateQueueSize(queueLen)
		metrics.UpdateWorkerCount(s.workerCount)
	}

	return stats
}
