// Package sanitize normalizes and validates raw form submissions before
// anything downstream is allowed to touch them.
package sanitize

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lixantech/leadgate/internal/domain/lead"
)

// Field length limits for the contact form.
const (
	minNameLen    = 2
	maxNameLen    = 100
	maxEmailLen   = 254
	minMessageLen = 10
	maxMessageLen = 2000
	maxCompanyLen = 100
)

// tagPattern matches any markup tag. Plain removal keeps Strip idempotent;
// entity-escaping sanitizers would re-escape on every pass.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// validServices is the allow-list for the form's service selector. The empty
// value is a legal "no selection".
var validServices = map[string]struct{}{
	"Automatizaciones": {},
	"Diseño Web":       {},
	"IA & Chatbots":    {},
	"Integraciones":    {},
	"Analytics":        {},
	"Email Marketing":  {},
	"Otro":             {},
	"":                 {},
}

// Strip removes all markup tags from s and trims surrounding whitespace.
// Applying Strip to already-stripped text returns it unchanged.
func Strip(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}

// FormSubmission carries the raw contact-form fields. Website is the honeypot
// field; legitimate clients never fill it.
type FormSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Company string `json:"company"`
	Service string `json:"service"`
	Website string `json:"website"`
}

// Trapped reports whether the honeypot field was filled. Callers absorb this
// silently rather than rejecting, so automated senders get no signal.
func (f FormSubmission) Trapped() bool {
	return f.Website != ""
}

// ValidateForm strips markup from the free-text fields and checks every field
// against the form schema. The returned error wraps ErrInvalid with the
// violated constraint; that detail is for server logs only and must never be
// echoed to the client.
func ValidateForm(raw FormSubmission) (FormSubmission, error) {
	safe := raw
	safe.Name = Strip(raw.Name)
	safe.Message = Strip(raw.Message)
	safe.Company = Strip(raw.Company)

	// Length limits count characters, not bytes.
	switch {
	case utf8.RuneCountInString(safe.Name) < minNameLen || utf8.RuneCountInString(safe.Name) > maxNameLen:
		return FormSubmission{}, fmt.Errorf("%w: name length", ErrInvalid)
	case safe.Email == "" || len(safe.Email) > maxEmailLen:
		return FormSubmission{}, fmt.Errorf("%w: email length", ErrInvalid)
	case utf8.RuneCountInString(safe.Message) < minMessageLen || utf8.RuneCountInString(safe.Message) > maxMessageLen:
		return FormSubmission{}, fmt.Errorf("%w: message length", ErrInvalid)
	case utf8.RuneCountInString(safe.Company) > maxCompanyLen:
		return FormSubmission{}, fmt.Errorf("%w: company length", ErrInvalid)
	}

	addr, err := mail.ParseAddress(safe.Email)
	if err != nil || addr.Address != safe.Email {
		return FormSubmission{}, fmt.Errorf("%w: email format", ErrInvalid)
	}

	if _, ok := validServices[safe.Service]; !ok {
		return FormSubmission{}, fmt.Errorf("%w: unknown service", ErrInvalid)
	}

	return safe, nil
}

// ServiceToInterest maps the form's service label onto the CMS interest enum.
func ServiceToInterest(service string) lead.Interest {
	switch service {
	case "Automatizaciones":
		return lead.InterestAutomation
	case "Diseño Web":
		return lead.InterestWebsite
	case "IA & Chatbots":
		return lead.InterestChatbot
	case "Integraciones":
		return lead.InterestIntegration
	default:
		return lead.InterestOther
	}
}
