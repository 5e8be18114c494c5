// Package lead contains the prospect record passed between layers.
package lead

import (
	"context"
	"time"
)

// Interest is the closed set of services a prospect can ask about.
// Unrecognized values must be coerced to InterestOther before persistence.
type Interest string

// Interest values mirror the CMS lead schema.
const (
	InterestLandingPage Interest = "landing_page"
	InterestWebsite     Interest = "website"
	InterestAutomation  Interest = "automation"
	InterestChatbot     Interest = "chatbot"
	InterestCMS         Interest = "cms"
	InterestIntegration Interest = "integration"
	InterestOther       Interest = "other"
)

// ParseInterest maps a raw value onto the closed set, falling back to
// InterestOther for anything it does not recognize.
func ParseInterest(s string) Interest {
	switch Interest(s) {
	case InterestLandingPage, InterestWebsite, InterestAutomation,
		InterestChatbot, InterestCMS, InterestIntegration, InterestOther:
		return Interest(s)
	default:
		return InterestOther
	}
}

// Source records which funnel produced the lead. It is always stamped by the
// server, never taken from the client.
type Source string

const (
	SourceChatWidget  Source = "chat_widget"
	SourceContactForm Source = "contact_form"
)

// Lead is the unit of value this pipeline produces. Name and Interest are
// always present at persistence time; Email and Phone may be empty when the
// lead came from the chat widget.
type Lead struct {
	Name       string
	Email      string
	Phone      string
	Company    string
	Interest   Interest
	Notes      string
	Source     Source
	CapturedAt time.Time
}

// Store persists leads to the external content store. It is write-only; the
// record is owned by the CMS after creation.
type Store interface {
	// Create writes exactly one lead document.
	Create(ctx context.Context, l Lead) error

	// Configured reports whether write credentials are present. When false,
	// callers must degrade gracefully instead of calling Create.
	Configured() bool
}

// Notification is the payload for the lead-notification email. It carries the
// form fields as submitted (post-sanitization), including the human-readable
// service label rather than the normalized interest value.
type Notification struct {
	Name    string
	Email   string
	Company string
	Service string
	Message string
}

// Notifier delivers a lead notification through an external channel.
// Failures are non-fatal by contract; callers log and move on.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}
