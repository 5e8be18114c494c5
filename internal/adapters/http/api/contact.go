// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/lixantech/leadgate/internal/domain/sanitize"
)

// User-facing messages for the contact endpoint. Spanish, matching the site.
// Validation failures get one generic message; field-level detail stays in
// server logs.
const (
	msgFormMethod      = "Method not allowed"
	msgFormContentType = "Content-Type debe ser application/json"
	msgFormBadJSON     = "Cuerpo JSON inválido"
	msgFormInvalid     = "Datos inválidos. Revisá los campos e intentá de nuevo."
	msgFormRateLimited = "Demasiados intentos. Intenta en unos minutos."
	msgFormInternal    = "Ocurrió un error. Intentá de nuevo más tarde."
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	deps Dependencies
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(deps Dependencies) *ContactHandler {
	return &ContactHandler{deps: deps}
}

// HandleContact handles POST /api/contact requests.
func (h *ContactHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeFormError(w, http.StatusMethodNotAllowed, msgFormMethod)
		return
	}

	if ct := r.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		writeFormError(w, http.StatusUnsupportedMediaType, msgFormContentType)
		return
	}

	var sub sanitize.FormSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeFormError(w, http.StatusBadRequest, msgFormBadJSON)
		return
	}

	if err := h.deps.SubmitForm(r.Context(), clientIP(r), sub); err != nil {
		switch {
		case errors.Is(err, sanitize.ErrInvalid):
			writeFormError(w, http.StatusUnprocessableEntity, msgFormInvalid)
		case errors.Is(err, ErrRateLimited):
			writeFormError(w, http.StatusTooManyRequests, msgFormRateLimited)
		default:
			writeFormError(w, http.StatusInternalServerError, msgFormInternal)
		}
		return
	}

	writeJSON(w, http.StatusOK, formResponse{Success: true})
}
