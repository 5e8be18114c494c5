package agent

import (
	"context"
	"encoding/json"
	"time"
	"unicode/utf8"

	"github.com/lixantech/leadgate/internal/domain/lead"
	"github.com/lixantech/leadgate/internal/domain/sanitize"
	"github.com/lixantech/leadgate/pkg/logger"
	"github.com/lixantech/leadgate/pkg/metrics"
)

// Field limits for chat-captured leads.
const (
	maxNameRunes  = 100
	maxNotesRunes = 1000

	fallbackName = "Sin nombre"
)

// Tool result strings fed back to the model. Spanish, matching the persona.
const (
	resultSaved      = "Prospecto guardado correctamente en el CRM."
	resultStoreError = "No se pudo guardar el prospecto (error de CMS)."
	resultBadArgs    = "Error al guardar el prospecto."
)

// captureArgs is the wire shape of the capture_lead tool arguments. The
// model is instructed to fill every required field but nothing here trusts
// that it did.
type captureArgs struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Interest string `json:"interest"`
	Notes    string `json:"notes"`
}

// LeadCapturer persists model-captured leads through the lead store.
type LeadCapturer struct {
	store  lead.Store
	now    func() time.Time
	logger logger.Logger
}

// NewLeadCapturer creates the capture_lead tool executor.
func NewLeadCapturer(store lead.Store, opts ...CapturerOption) *LeadCapturer {
	c := &LeadCapturer{
		store:  store,
		now:    time.Now,
		logger: logger.Get().Named("capture"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CapturerOption applies a configuration option to the LeadCapturer.
type CapturerOption func(*LeadCapturer)

// WithCaptureClock overrides the capture timestamp source, mainly for tests.
func WithCaptureClock(now func() time.Time) CapturerOption {
	return func(c *LeadCapturer) {
		if now != nil {
			c.now = now
		}
	}
}

// WithCapturerLogger sets a custom logger for the capturer.
func WithCapturerLogger(l logger.Logger) CapturerOption {
	return func(c *LeadCapturer) {
		if l != nil {
			c.logger = l
		}
	}
}

// Capture parses the raw tool arguments, coerces them into a Lead and
// persists it. The returned string goes back to the model verbatim;
// failures never surface as errors.
func (c *LeadCapturer) Capture(ctx context.Context, rawArgs string) string {
	var args captureArgs
	if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
		c.logger.Warn(ctx, "malformed tool arguments", logger.Error(err))
		metrics.RecordErrorByComponent("capture", "bad_arguments")
		return resultBadArgs
	}

	l := lead.Lead{
		Name:       clampRunes(sanitize.Strip(args.Name), maxNameRunes),
		Email:      sanitize.Strip(args.Email),
		Phone:      sanitize.Strip(args.Phone),
		Interest:   lead.ParseInterest(args.Interest),
		Notes:      clampRunes(sanitize.Strip(args.Notes), maxNotesRunes),
		Source:     lead.SourceChatWidget,
		CapturedAt: c.now().UTC(),
	}
	if utf8.RuneCountInString(l.Name) < 2 {
		l.Name = fallbackName
	}

	if err := c.store.Create(ctx, l); err != nil {
		c.logger.Error(ctx, "chat lead persistence failed",
			logger.String("interest", string(l.Interest)),
			logger.Error(err),
		)
		metrics.RecordLeadStoreError()
		return resultStoreError
	}

	metrics.RecordLeadCaptured(string(lead.SourceChatWidget))
	c.logger.Info(ctx, "chat lead captured",
		logger.String("interest", string(l.Interest)),
	)

	return resultSaved
}

// clampRunes truncates s to at most n runes.
func clampRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
