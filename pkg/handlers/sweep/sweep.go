package sweep

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/sweeper"
)

// SweepHandler exposes the countdown sweep to the scheduler. The endpoint
// is not for clients; callers authenticate with a shared secret header.
type SweepHandler struct {
	Sweeper *sweeper.Sweeper
	Secret  string
}

// NewSweepHandler creates a new SweepHandler.
func NewSweepHandler(sw *sweeper.Sweeper, secret string) *SweepHandler {
	return &SweepHandler{Sweeper: sw, Secret: secret}
}

// Sweep handles GET /sweep.
func (h *SweepHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	if subtle.ConstantTimeCompare([]byte(r.Header.Get("X-Sweep-Secret")), []byte(h.Secret)) != 1 {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	report := h.Sweeper.Sweep(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
	}
}
