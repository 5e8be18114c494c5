// Package resend delivers lead notification emails through the Resend API.
package resend

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	resendapi "github.com/resend/resend-go/v2"

	"github.com/lixantech/leadgate/internal/domain/lead"
	"github.com/lixantech/leadgate/pkg/logger"
)

// Default sender configuration constants.
const (
	defaultFrom    = "noreply@lixantech.com"
	defaultSiteURL = "lixantech.com"
)

// bodyTemplate renders the notification email. html/template escapes every
// interpolated field, so form content cannot inject markup into the email.
var bodyTemplate = template.Must(template.New("lead").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8" /><meta name="viewport" content="width=device-width, initial-scale=1.0" /></head>
<body style="font-family: ui-sans-serif, system-ui, sans-serif; background: #f9f9fb; padding: 32px;">
  <div style="max-width: 560px; margin: 0 auto; background: #fff; border-radius: 12px; padding: 32px; border: 1px solid #e5e7eb;">
    <h1 style="margin: 0 0 24px; font-size: 20px; color: #111;">New Lead from Lixan</h1>
    <table style="width: 100%; border-collapse: collapse; font-size: 15px; color: #374151;">
      <tr>
        <td style="padding: 8px 0; font-weight: 600; width: 130px;">Name</td>
        <td style="padding: 8px 0;">{{.Name}}</td>
      </tr>
      <tr>
        <td style="padding: 8px 0; font-weight: 600;">Email</td>
        <td style="padding: 8px 0;"><a href="mailto:{{.Email}}" style="color: #6d3df7;">{{.Email}}</a></td>
      </tr>
      {{- if .Company}}
      <tr>
        <td style="padding: 8px 0; font-weight: 600;">Company</td>
        <td style="padding: 8px 0;">{{.Company}}</td>
      </tr>
      {{- end}}
      {{- if .Service}}
      <tr>
        <td style="padding: 8px 0; font-weight: 600;">Service</td>
        <td style="padding: 8px 0;">{{.Service}}</td>
      </tr>
      {{- end}}
    </table>
    <hr style="margin: 24px 0; border: none; border-top: 1px solid #e5e7eb;" />
    <p style="font-weight: 600; margin: 0 0 8px; color: #111;">Message</p>
    <p style="margin: 0; color: #374151; white-space: pre-wrap;">{{.Message}}</p>
    <p style="margin: 32px 0 0; font-size: 12px; color: #9ca3af;">Sent via the contact form at {{.SiteURL}}</p>
  </div>
</body>
</html>
`))

type bodyData struct {
	lead.Notification
	SiteURL string
}

// Notifier sends lead notification emails to the configured recipient.
type Notifier struct {
	client  *resendapi.Client
	apiKey  string
	from    string
	to      string
	siteURL string

	logger logger.Logger
}

// New creates a notifier. An empty API key or recipient yields an
// unconfigured notifier whose Send fails cleanly.
func New(apiKey, to string, opts ...Option) *Notifier {
	n := &Notifier{
		client:  resendapi.NewClient(apiKey),
		apiKey:  apiKey,
		from:    defaultFrom,
		to:      to,
		siteURL: defaultSiteURL,
		logger:  logger.Get().Named("resend"),
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Configured reports whether the notifier can send email.
func (n *Notifier) Configured() bool {
	return strings.TrimSpace(n.apiKey) != "" && strings.TrimSpace(n.to) != ""
}

// Subject builds the notification subject line for a lead.
func Subject(notification lead.Notification) string {
	subject := "New lead from " + notification.Name
	if notification.Company != "" {
		subject += " · " + notification.Company
	}
	return subject
}

// Send renders and delivers a single notification email.
func (n *Notifier) Send(ctx context.Context, notification lead.Notification) error {
	if !n.Configured() {
		return ErrNotConfigured
	}

	var body strings.Builder
	if err := bodyTemplate.Execute(&body, bodyData{Notification: notification, SiteURL: n.siteURL}); err != nil {
		return fmt.Errorf("render notification body: %w", err)
	}

	params := &resendapi.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		ReplyTo: notification.Email,
		Subject: Subject(notification),
		Html:    body.String(),
	}

	if _, err := n.client.Emails.SendWithContext(ctx, params); err != nil {
		n.logger.Error(ctx, "notification send failed",
			logger.String("to", n.to),
			logger.Error(err),
		)
		return fmt.Errorf("send notification: %w", err)
	}

	return nil
}
