// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lixantech/leadgate/internal/domain/agent"
	"github.com/lixantech/leadgate/internal/domain/sanitize"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Chat runs one conversation cycle and returns the assistant reply.
	Chat(ctx context.Context, transcript []agent.Message) (string, error)

	// SubmitForm runs the contact form pipeline for one submission.
	// A trapped honeypot submission returns nil so callers cannot tell
	// it apart from a genuine success.
	SubmitForm(ctx context.Context, clientIP string, sub sanitize.FormSubmission) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	chatHandler    *ChatHandler
	contactHandler *ContactHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		chatHandler:    NewChatHandler(deps),
		contactHandler: NewContactHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/chat", RequestIDMiddleware(MetricsMiddleware(s.chatHandler.HandleChat, "chat")))
	mux.HandleFunc("/api/contact", RequestIDMiddleware(MetricsMiddleware(s.contactHandler.HandleContact, "contact")))
}

// chatErrorResponse mirrors the widget's error wire shape.
type chatErrorResponse struct {
	Error string `json:"error"`
}

// formResponse mirrors the contact form wire shape.
type formResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeChatError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, chatErrorResponse{Error: msg})
}

func writeFormError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, formResponse{Success: false, Error: msg})
}
