package consent

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/conversation"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// ConsentHandler holds the dependencies for the consent endpoint.
type ConsentHandler struct {
	Gate *conversation.Gate
}

// NewConsentHandler creates a new ConsentHandler.
func NewConsentHandler(gate *conversation.Gate) *ConsentHandler {
	return &ConsentHandler{Gate: gate}
}

type consentRequest struct {
	UserID string `json:"user_id"`
	Tier   string `json:"tier"`
}

type consentResponse struct {
	Status    string     `json:"status"`
	ActiveAt  *time.Time `json:"active_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Consent handles POST /consent/{matchId}.
func (h *ConsentHandler) Consent(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchId")

	var req consentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" || matchID == "" {
		http.Error(w, "user_id and matchId are required", http.StatusBadRequest)
		return
	}
	tier, err := models.ParseTier(req.Tier)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Gate.Consent(r.Context(), matchID, req.UserID, tier)
	if err != nil {
		writeGateError(w, r, err)
		return
	}

	resp := consentResponse{Status: "consent_recorded"}
	if result.Activated {
		resp.Status = "active"
		resp.ActiveAt = result.Conversation.ActiveAt
		resp.ExpiresAt = result.Conversation.ExpiresAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
	}
}

// writeGateError maps the gate's error taxonomy onto the HTTP surface.
// NotFound and Gone read as "this match is no longer available";
// PaymentRequired and Conflict carry enough detail to be actionable.
func writeGateError(w http.ResponseWriter, r *http.Request, err error) {
	var shortErr *storage.InsufficientCreditsError
	var limitErr *storage.ActiveLimitError

	switch {
	case errors.Is(err, storage.ErrMatchNotFound):
		http.Error(w, "Match not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrConversationTerminal):
		http.Error(w, "This match is no longer available", http.StatusGone)
	case errors.As(err, &shortErr):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]any{"short_user_ids": shortErr.ShortUserIDs})
	case errors.As(err, &limitErr):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{
			"user_id": limitErr.UserID,
			"count":   limitErr.Count,
			"limit":   limitErr.Limit,
		})
	default:
		slog.Error("consent failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Something went wrong, please try again", http.StatusInternalServerError)
	}
}
