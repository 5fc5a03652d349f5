package matches

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/conversation"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// MatchesHandler holds the dependencies for the termination endpoints.
type MatchesHandler struct {
	Terminator *conversation.Terminator
}

// NewMatchesHandler creates a new MatchesHandler.
func NewMatchesHandler(terminator *conversation.Terminator) *MatchesHandler {
	return &MatchesHandler{Terminator: terminator}
}

type terminationRequest struct {
	UserID string `json:"user_id"`
}

type terminationResponse struct {
	ContactShared bool `json:"contact_shared"`
	WasActive     bool `json:"was_active"`
	CreditsSpent  bool `json:"credits_spent"`
}

// Unmatch handles POST /unmatch/{matchId}.
func (h *MatchesHandler) Unmatch(w http.ResponseWriter, r *http.Request) {
	h.terminate(w, r, h.Terminator.Unmatch)
}

// Block handles POST /block/{matchId}.
func (h *MatchesHandler) Block(w http.ResponseWriter, r *http.Request) {
	h.terminate(w, r, h.Terminator.Block)
}

// WeMet handles POST /we-met/{matchId}.
func (h *MatchesHandler) WeMet(w http.ResponseWriter, r *http.Request) {
	h.terminate(w, r, h.Terminator.WeMet)
}

func (h *MatchesHandler) terminate(w http.ResponseWriter, r *http.Request,
	action func(context.Context, string, string) (*conversation.TerminationResult, error)) {

	matchID := chi.URLParam(r, "matchId")

	var req terminationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" || matchID == "" {
		http.Error(w, "user_id and matchId are required", http.StatusBadRequest)
		return
	}

	result, err := action(r.Context(), matchID, req.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrMatchNotFound) {
			http.Error(w, "Match not found", http.StatusNotFound)
			return
		}
		slog.Error("termination failed", "path", r.URL.Path, "match_id", matchID, "error", err)
		http.Error(w, "Something went wrong, please try again", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(terminationResponse{
		ContactShared: result.ContactShared,
		WasActive:     result.WasActive,
		CreditsSpent:  result.CreditsSpent,
	}); err != nil {
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
	}
}
