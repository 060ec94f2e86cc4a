package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-secret-notes/internal/utils"
	"github.com/MKhiriev/go-secret-notes/internal/validators"
	"github.com/MKhiriev/go-secret-notes/models"
)

func (h *Handler) passwordState(w http.ResponseWriter, r *http.Request) {
	state, err := h.services.MasterPassword.State(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.passwordState", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.PasswordStateResponse{State: state.String()}, http.StatusOK)
}

// setPassword stores the first master password. A weak password is
// answered with 422 and the failed rule.
func (h *Handler) setPassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, "*Handler.setPassword", ErrInvalidJSON)
		return
	}

	if err := h.services.MasterPassword.Set(r.Context(), req.Password); err != nil {
		writeServiceError(w, r, "*Handler.setPassword", err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// validatePassword runs the strength rules and returns the prompt hint for
// the current password state. It never compares against the stored hash.
func (h *Handler) validatePassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, "*Handler.validatePassword", ErrInvalidJSON)
		return
	}

	state, err := h.services.MasterPassword.State(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.validatePassword", err)
		return
	}

	_, _ = utils.WriteJSON(w, validators.Describe(req.Password, state), http.StatusOK)
}
