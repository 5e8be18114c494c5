package resend

import (
	"strings"

	"github.com/lixantech/leadgate/pkg/logger"
)

// Option applies a configuration option to the Notifier.
type Option func(*Notifier)

// WithFrom sets the sender address.
func WithFrom(from string) Option {
	return func(n *Notifier) {
		if strings.TrimSpace(from) != "" {
			n.from = from
		}
	}
}

// WithSiteURL sets the site named in the email footer.
func WithSiteURL(siteURL string) Option {
	return func(n *Notifier) {
		if strings.TrimSpace(siteURL) != "" {
			n.siteURL = siteURL
		}
	}
}

// WithLogger sets a custom logger for the notifier.
func WithLogger(l logger.Logger) Option {
	return func(n *Notifier) {
		if l != nil {
			n.logger = l
		}
	}
}
