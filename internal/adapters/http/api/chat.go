// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lixantech/leadgate/internal/domain/agent"
)

// User-facing messages for the chat endpoint. Spanish, matching the widget.
const (
	msgChatUnavailable = "Chat no disponible en este momento."
	msgChatBadRequest  = "Solicitud inválida."
	msgChatNoMessages  = "Se requiere al menos un mensaje."
	msgChatUpstream    = "No se pudo obtener respuesta. Intenta de nuevo."
)

// chatRequest mirrors the widget's request wire shape.
type chatRequest struct {
	Messages []agent.Message `json:"messages"`
}

// chatResponse mirrors the widget's reply wire shape.
type chatResponse struct {
	Reply string `json:"reply"`
}

// ChatHandler handles chat widget requests.
type ChatHandler struct {
	deps Dependencies
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(deps Dependencies) *ChatHandler {
	return &ChatHandler{deps: deps}
}

// HandleChat handles POST /api/chat requests.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeChatError(w, http.StatusMethodNotAllowed, msgChatBadRequest)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeChatError(w, http.StatusBadRequest, msgChatBadRequest)
		return
	}
	if len(req.Messages) == 0 {
		writeChatError(w, http.StatusBadRequest, msgChatNoMessages)
		return
	}
	for _, m := range req.Messages {
		if m.Role != "user" && m.Role != "assistant" {
			writeChatError(w, http.StatusBadRequest, msgChatBadRequest)
			return
		}
	}

	reply, err := h.deps.Chat(r.Context(), req.Messages)
	if err != nil {
		if errors.Is(err, agent.ErrNotConfigured) {
			writeChatError(w, http.StatusServiceUnavailable, msgChatUnavailable)
			return
		}
		writeChatError(w, http.StatusBadGateway, msgChatUpstream)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}
