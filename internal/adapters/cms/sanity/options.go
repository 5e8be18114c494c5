package sanity

import (
	"net/http"
	"strings"
	"time"

	"github.com/lixantech/leadgate/pkg/logger"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithDataset selects the target dataset.
func WithDataset(dataset string) Option {
	return func(c *Client) {
		if strings.TrimSpace(dataset) != "" {
			c.dataset = dataset
		}
	}
}

// WithAPIVersion pins the mutation API version.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		if strings.TrimSpace(version) != "" {
			c.apiVersion = strings.TrimPrefix(version, "v")
		}
	}
}

// WithBaseURL overrides the API host, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if strings.TrimSpace(baseURL) != "" {
			c.baseURL = baseURL
		}
	}
}

// WithTimeout bounds each mutation request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets a custom logger for the client.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}
