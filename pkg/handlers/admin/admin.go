// Package admin holds the support-tooling endpoints. These are privileged
// operations deliberately kept off the client surface: force-reopening a
// terminal conversation and issuing a credit refund. Refund requests reach
// this service only after the support system consumed a single-use token,
// which is what keeps refunds at-most-once per real-world event.
package admin

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// AdminHandler holds the dependencies for the support endpoints.
type AdminHandler struct {
	Conversations storage.ConversationStore
	Ledger        storage.LedgerWriter
	Secret        string
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(conversations storage.ConversationStore, ledger storage.LedgerWriter, secret string) *AdminHandler {
	return &AdminHandler{Conversations: conversations, Ledger: ledger, Secret: secret}
}

func (h *AdminHandler) authorized(w http.ResponseWriter, r *http.Request) bool {
	if subtle.ConstantTimeCompare([]byte(r.Header.Get("X-Admin-Secret")), []byte(h.Secret)) != 1 {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return false
	}
	return true
}

// Reopen handles POST /admin/reopen/{matchId}: the only sanctioned path
// out of TERMINAL.
func (h *AdminHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	matchID := chi.URLParam(r, "matchId")
	if matchID == "" {
		http.Error(w, "matchId is required", http.StatusBadRequest)
		return
	}

	if err := h.Conversations.ForceReopen(r.Context(), matchID); err != nil {
		slog.Error("force-reopen failed", "match_id", matchID, "error", err)
		http.Error(w, "Failed to reopen conversation", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type refundRequest struct {
	UserID      string `json:"user_id"`
	MatchID     string `json:"match_id"`
	AmountCents int64  `json:"amount_cents"`
	Reason      string `json:"reason"`
}

// Refund handles POST /admin/refund.
func (h *AdminHandler) Refund(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	var req refundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.MatchID == "" || req.AmountCents <= 0 || req.Reason == "" {
		http.Error(w, "user_id, match_id, amount_cents and reason are required", http.StatusBadRequest)
		return
	}

	if err := h.Ledger.Refund(r.Context(), req.UserID, req.MatchID, req.Reason, req.AmountCents); err != nil {
		slog.Error("refund failed", "user_id", req.UserID, "match_id", req.MatchID, "error", err)
		http.Error(w, "Failed to apply refund", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type adjustRequest struct {
	UserID      string `json:"user_id"`
	AmountCents int64  `json:"amount_cents"`
	Reason      string `json:"reason"`
}

// Adjust handles POST /admin/adjust. The amount is signed: a negative
// amount claws credit back.
func (h *AdminHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	var req adjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.AmountCents == 0 || req.Reason == "" {
		http.Error(w, "user_id, amount_cents and reason are required", http.StatusBadRequest)
		return
	}

	if err := h.Ledger.Adjust(r.Context(), req.UserID, req.Reason, req.AmountCents); err != nil {
		slog.Error("adjustment failed", "user_id", req.UserID, "reason", req.Reason, "error", err)
		http.Error(w, "Failed to apply adjustment", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
