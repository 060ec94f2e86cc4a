package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/service"
	"github.com/MKhiriev/go-secret-notes/internal/utils"
	"github.com/MKhiriev/go-secret-notes/models"
	"github.com/go-chi/chi/v5"
)

// listNotes returns every stored note in creation order. Private fields stay
// encrypted.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.listNotes", err)
		return
	}

	notes, err := h.services.NoteService.List(r.Context(), session)
	if err != nil {
		writeServiceError(w, r, "*Handler.listNotes", err)
		return
	}

	_, _ = utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.createNote", err)
		return
	}

	var req models.CreateNoteRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, "*Handler.createNote", ErrInvalidJSON)
		return
	}

	note, err := h.services.NoteService.Create(r.Context(), session, req.Password, req.Note)
	if errors.Is(err, service.ErrWrongPassword) {
		// 401 is reserved for the session itself on authenticated routes.
		logger.FromRequest(r).Warn().Str("func", "*Handler.createNote").Msg("note password differs from the master password")
		utils.WriteError(w, http.StatusForbidden, err.Error(), 0)
		return
	}
	if err != nil {
		writeServiceError(w, r, "*Handler.createNote", err)
		return
	}

	_, _ = utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) openNote(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.openNote", err)
		return
	}

	var req models.OpenNoteRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, "*Handler.openNote", ErrInvalidJSON)
		return
	}

	opened, err := h.services.NoteService.Open(r.Context(), session, chi.URLParam(r, "id"), req.Password)
	if err != nil {
		writeServiceError(w, r, "*Handler.openNote", err)
		return
	}

	_, _ = utils.WriteJSON(w, opened, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteNote", err)
		return
	}

	if err = h.services.NoteService.Delete(r.Context(), session, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, "*Handler.deleteNote", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
