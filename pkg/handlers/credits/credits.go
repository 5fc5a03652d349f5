package credits

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/storage"
)

// CreditsStore is the slice of storage the credits endpoints need.
type CreditsStore interface {
	storage.WalletStore
	storage.LedgerWriter
	storage.EscrowReleaser
}

// CreditsHandler holds the dependencies for the wallet endpoints.
type CreditsHandler struct {
	Store   CreditsStore
	Catalog models.ProductCatalog
}

// NewCreditsHandler creates a new CreditsHandler.
func NewCreditsHandler(store CreditsStore, catalog models.ProductCatalog) *CreditsHandler {
	return &CreditsHandler{Store: store, Catalog: catalog}
}

type statusResponse struct {
	BalanceCents int64 `json:"balance_cents"`
	Credits      int64 `json:"credits"`
	MaxCredits   int64 `json:"max_credits"`
}

type claimRequest struct {
	UserID        string `json:"user_id"`
	TransactionID string `json:"transaction_id"`
	ProductID     string `json:"product_id"`
}

type claimResponse struct {
	AlreadyApplied bool  `json:"already_applied"`
	Credits        int64 `json:"credits"`
	MaxCredits     int64 `json:"max_credits"`
	BalanceCents   int64 `json:"balance_cents"`
}

// Status handles GET /credits/status. Every status read first runs the
// legacy escrow migration for the user; the release is atomically guarded
// in storage so concurrent reads cannot double-credit.
func (h *CreditsHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	released, err := h.Store.ReleaseEscrow(r.Context(), userID)
	if err != nil {
		slog.Error("escrow release failed", "user_id", userID, "error", err)
		http.Error(w, "Something went wrong, please try again", http.StatusInternalServerError)
		return
	}
	if released > 0 {
		slog.Info("released legacy escrow", "user_id", userID, "amount_cents", released)
	}

	wallet, err := h.Store.EnsureWallet(r.Context(), userID)
	if err != nil {
		slog.Error("failed to read wallet", "user_id", userID, "error", err)
		http.Error(w, "Something went wrong, please try again", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(statusResponse{
		BalanceCents: wallet.BalanceCents,
		Credits:      wallet.Credits(),
		MaxCredits:   models.MaxDisplayCredits,
	}); err != nil {
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
	}
}

// Claim handles POST /credits/claim: the billing collaborator's callback
// for a completed store purchase, idempotent on the transaction id.
func (h *CreditsHandler) Claim(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.TransactionID == "" {
		http.Error(w, "user_id and transaction_id are required", http.StatusBadRequest)
		return
	}

	amountCents, ok := h.Catalog[req.ProductID]
	if !ok {
		http.Error(w, storage.ErrUnknownProduct.Error(), http.StatusBadRequest)
		return
	}

	alreadyApplied, err := h.Store.Purchase(r.Context(), req.UserID, req.TransactionID, req.ProductID, amountCents)
	if err != nil {
		slog.Error("purchase claim failed", "user_id", req.UserID, "transaction_id", req.TransactionID, "error", err)
		http.Error(w, "Something went wrong, please try again", http.StatusInternalServerError)
		return
	}

	wallet, err := h.Store.EnsureWallet(r.Context(), req.UserID)
	if err != nil {
		slog.Error("failed to read wallet after claim", "user_id", req.UserID, "error", err)
		http.Error(w, "Something went wrong, please try again", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(claimResponse{
		AlreadyApplied: alreadyApplied,
		Credits:        wallet.Credits(),
		MaxCredits:     models.MaxDisplayCredits,
		BalanceCents:   wallet.BalanceCents,
	}); err != nil {
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
	}
}
