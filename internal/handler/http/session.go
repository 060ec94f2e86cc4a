package http

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/utils"
	"github.com/MKhiriev/go-secret-notes/models"
)

// login exchanges the master password for a session token, returned in the
// Authorization header. Wrong passwords and lockouts carry Retry-After.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, "*Handler.login", ErrInvalidJSON)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), req.Password)
	if err != nil {
		writeServiceError(w, r, "*Handler.login", err)
		return
	}

	logger.FromRequest(r).Info().Str("session_id", token.SessionID).Msg("session opened")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) invalidate(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, "*Handler.invalidate", ErrNoSession)
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), sessionID); err != nil {
		writeServiceError(w, r, "*Handler.invalidate", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// lockout reports how long the next login attempt would be refused.
func (h *Handler) lockout(w http.ResponseWriter, r *http.Request) {
	remaining, err := h.services.LoginGate.Remaining(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.lockout", err)
		return
	}

	var seconds int64
	if remaining > 0 {
		seconds = int64(math.Ceil(remaining.Seconds()))
	}
	_, _ = utils.WriteJSON(w, models.LockoutResponse{RetryAfter: seconds}, http.StatusOK)
}
