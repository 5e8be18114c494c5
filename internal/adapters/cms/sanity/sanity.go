// Package sanity persists captured leads as documents in a Sanity dataset
// through the HTTP mutation API.
package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lixantech/leadgate/internal/domain/lead"
	"github.com/lixantech/leadgate/pkg/logger"
	"github.com/lixantech/leadgate/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultAPIVersion = "2024-01-01"
	defaultDataset    = "production"
	defaultTimeout    = 10 * time.Second

	maxErrorBody = 2048
)

// Client writes lead documents to a Sanity project.
type Client struct {
	projectID  string
	dataset    string
	apiVersion string
	token      string
	baseURL    string

	httpClient *http.Client
	logger     logger.Logger
}

// New creates a Sanity client. Missing project or token credentials yield an
// unconfigured client; Create fails cleanly in that case and callers can
// check Configured up front.
func New(projectID, token string, opts ...Option) *Client {
	c := &Client{
		projectID:  projectID,
		dataset:    defaultDataset,
		apiVersion: defaultAPIVersion,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger.Get().Named("sanity"),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		c.baseURL = fmt.Sprintf("https://%s.api.sanity.io", c.projectID)
	}

	return c
}

// Configured reports whether the client has credentials to write documents.
func (c *Client) Configured() bool {
	return strings.TrimSpace(c.projectID) != "" && strings.TrimSpace(c.token) != ""
}

// document is the wire shape of a lead in the dataset. Optional contact
// fields are omitted rather than stored as empty strings.
type document struct {
	Type       string `json:"_type"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Company    string `json:"company,omitempty"`
	Interest   string `json:"interest"`
	Notes      string `json:"notes"`
	Source     string `json:"source"`
	CapturedAt string `json:"capturedAt"`
}

type mutationsPayload struct {
	Mutations []mutation `json:"mutations"`
}

type mutation struct {
	Create document `json:"create"`
}

// Create stores a lead as a new document via the mutation endpoint.
func (c *Client) Create(ctx context.Context, l lead.Lead) error {
	if !c.Configured() {
		return fmt.Errorf("create lead: %w", ErrNotConfigured)
	}

	start := time.Now()
	defer func() {
		latency := time.Since(start).Milliseconds()
		metrics.RecordLeadStoreLatency(float64(latency))
	}()

	capturedAt := l.CapturedAt
	if capturedAt.IsZero() {
		capturedAt = time.Now().UTC()
	}

	payload := mutationsPayload{
		Mutations: []mutation{{
			Create: document{
				Type:       "lead",
				Name:       l.Name,
				Email:      l.Email,
				Phone:      l.Phone,
				Company:    l.Company,
				Interest:   string(l.Interest),
				Notes:      l.Notes,
				Source:     string(l.Source),
				CapturedAt: capturedAt.Format(time.RFC3339),
			},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal mutation: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v%s/data/mutate/%s",
		strings.TrimRight(c.baseURL, "/"), c.apiVersion, c.dataset)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build mutation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordLeadStoreError()
		metrics.RecordErrorByComponent("sanity", "request_error")
		return fmt.Errorf("sanity request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		metrics.RecordLeadStoreError()
		metrics.RecordErrorByComponent("sanity", "mutation_error")
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error(ctx, "lead mutation rejected",
			logger.Int("status", resp.StatusCode),
			logger.String("body", string(errBody)),
		)
		return fmt.Errorf("sanity mutation: status %d", resp.StatusCode)
	}

	return nil
}
