// Package agent runs the chat widget's conversation loop: a persona-driven
// model exchange with a single lead-capture tool the model may invoke.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/lixantech/leadgate/pkg/logger"
	"github.com/lixantech/leadgate/pkg/metrics"
)

// Default conversation configuration constants.
const (
	toolName = "capture_lead"

	defaultMaxTurns    = 12
	defaultTemperature = 0.72
)

// Message is one turn of the widget transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompleter issues chat completion requests against the model provider.
type ChatCompleter interface {
	Configured() bool
	CreateChatCompletion(ctx context.Context, req gopenai.ChatCompletionRequest) (gopenai.ChatCompletionResponse, error)
}

// Capturer executes the capture_lead tool. It returns a short result string
// for the model to continue from and never fails the conversation.
type Capturer interface {
	Capture(ctx context.Context, rawArgs string) string
}

// leadTool is the single tool offered on the first provider call.
var leadTool = gopenai.Tool{
	Type: gopenai.ToolTypeFunction,
	Function: &gopenai.FunctionDefinition{
		Name: toolName,
		Description: "Guarda los datos de contacto de un prospecto interesado en el CRM. " +
			"Llamá esta función cuando el usuario haya dado su nombre Y al menos un dato de contacto (email o teléfono), " +
			"o cuando haya expresado interés claro en un servicio y proporcionado su nombre.",
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"name": {"type": "string", "description": "Nombre del prospecto"},
				"email": {"type": "string", "description": "Email del prospecto (si lo proporcionó)"},
				"phone": {"type": "string", "description": "Teléfono del prospecto (si lo proporcionó)"},
				"interest": {
					"type": "string",
					"enum": ["landing_page", "website", "automation", "chatbot", "cms", "integration", "other"],
					"description": "Servicio o área de interés principal"
				},
				"notes": {"type": "string", "description": "Resumen breve del problema o necesidad que describió el usuario"}
			},
			"required": ["name", "interest", "notes"]
		}`),
	},
}

// Agent drives the two-phase conversation cycle.
type Agent struct {
	completer   ChatCompleter
	capturer    Capturer
	maxTurns    int
	temperature float32

	logger logger.Logger
}

// New creates an agent with configuration options.
func New(completer ChatCompleter, capturer Capturer, opts ...Option) *Agent {
	a := &Agent{
		completer:   completer,
		capturer:    capturer,
		maxTurns:    defaultMaxTurns,
		temperature: defaultTemperature,
		logger:      logger.Get().Named("agent"),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Reply runs one conversation cycle over the transcript and returns the
// assistant's reply. When the model requests the capture tool, the first
// tool call is executed and a follow-up completion without tools produces
// the final text.
func (a *Agent) Reply(ctx context.Context, transcript []Message) (string, error) {
	if !a.completer.Configured() {
		return "", ErrNotConfigured
	}
	if len(transcript) == 0 {
		return "", ErrEmptyTranscript
	}

	metrics.RecordChatRequest()

	// Only the most recent turns are forwarded; older context is dropped
	// to bound token usage.
	recent := transcript
	if len(recent) > a.maxTurns {
		recent = recent[len(recent)-a.maxTurns:]
	}

	msgs := make([]gopenai.ChatCompletionMessage, 0, len(recent)+1)
	msgs = append(msgs, gopenai.ChatCompletionMessage{
		Role:    gopenai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range recent {
		msgs = append(msgs, gopenai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := a.completer.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Messages:    msgs,
		Temperature: a.temperature,
		Tools:       []gopenai.Tool{leadTool},
		ToolChoice:  "auto",
	})
	if err != nil {
		return "", fmt.Errorf("initial completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("initial completion: %w", ErrEmptyCompletion)
	}

	choice := resp.Choices[0]
	if choice.FinishReason == gopenai.FinishReasonToolCalls && len(choice.Message.ToolCalls) > 0 {
		return a.completeToolCall(ctx, msgs, choice.Message)
	}

	return strings.TrimSpace(choice.Message.Content), nil
}

// completeToolCall executes the first requested tool call and issues the
// follow-up completion that turns the tool result into a user-facing reply.
// Additional tool calls in the same response are ignored.
func (a *Agent) completeToolCall(ctx context.Context, msgs []gopenai.ChatCompletionMessage, assistant gopenai.ChatCompletionMessage) (string, error) {
	call := assistant.ToolCalls[0]

	result := "ok"
	if call.Function.Name == toolName {
		metrics.RecordChatToolInvocation()
		result = a.capturer.Capture(ctx, call.Function.Arguments)
	} else {
		a.logger.Warn(ctx, "model requested unknown tool",
			logger.String("tool", call.Function.Name),
		)
	}

	followup := make([]gopenai.ChatCompletionMessage, 0, len(msgs)+2)
	followup = append(followup, msgs...)
	followup = append(followup, assistant)
	followup = append(followup, gopenai.ChatCompletionMessage{
		Role:       gopenai.ChatMessageRoleTool,
		ToolCallID: call.ID,
		Content:    result,
	})

	// No tools offered this time so the cycle terminates here.
	resp, err := a.completer.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Messages:    followup,
		Temperature: a.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("followup completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("followup completion: %w", ErrEmptyCompletion)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
