// Package openai wraps the OpenAI chat completion API behind a small client
// that carries the model defaults used by the conversation agent.
package openai

import (
	"context"
	"fmt"
	"time"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/lixantech/leadgate/pkg/logger"
	"github.com/lixantech/leadgate/pkg/metrics"
)

// Default model configuration constants.
const (
	defaultModel     = "gpt-4o-mini"
	defaultMaxTokens = 400
	defaultTimeout   = 30 * time.Second
)

// Client is a configured OpenAI chat completion client.
type Client struct {
	api       *gopenai.Client
	apiKey    string
	model     string
	maxTokens int
	timeout   time.Duration

	logger logger.Logger
}

// New creates a client. An empty API key yields an unconfigured client;
// callers must check Configured before issuing completions.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:    apiKey,
		model:     defaultModel,
		maxTokens: defaultMaxTokens,
		timeout:   defaultTimeout,
		logger:    logger.Get().Named("openai"),
	}

	for _, opt := range opts {
		opt(c)
	}

	cfg := gopenai.DefaultConfig(apiKey)
	c.api = gopenai.NewClientWithConfig(cfg)

	return c
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// MaxTokens returns the configured completion token cap.
func (c *Client) MaxTokens() int {
	return c.maxTokens
}

// CreateChatCompletion issues a completion request, filling in the client's
// model and token defaults when the request leaves them unset.
func (c *Client) CreateChatCompletion(ctx context.Context, req gopenai.ChatCompletionRequest) (gopenai.ChatCompletionResponse, error) {
	if req.Model == "" {
		req.Model = c.model
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = c.maxTokens
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, req)
	latency := time.Since(start).Milliseconds()

	metrics.RecordChatModelLatency(float64(latency))

	if err != nil {
		metrics.RecordChatModelError()
		metrics.RecordErrorByComponent("openai", "completion_error")
		c.logger.Error(ctx, "chat completion failed",
			logger.String("model", req.Model),
			logger.Error(err),
		)
		return gopenai.ChatCompletionResponse{}, fmt.Errorf("chat completion: %w", err)
	}

	return resp, nil
}
