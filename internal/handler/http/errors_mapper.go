package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secret-notes/internal/crypto"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/service"
	"github.com/MKhiriev/go-secret-notes/internal/store"
	"github.com/MKhiriev/go-secret-notes/internal/utils"
	"github.com/MKhiriev/go-secret-notes/internal/validators"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is checked in order, so domain errors come before the
// low-level store errors they may be wrapped in.
var errorStatuses = []errorStatus{
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrRateLimited, http.StatusTooManyRequests},
	{service.ErrAttemptInProgress, http.StatusConflict},
	{service.ErrNotAuthenticated, http.StatusUnauthorized},
	{service.ErrSessionNotFound, http.StatusUnauthorized},
	{ErrNoSession, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrPasswordNotSet, http.StatusPreconditionFailed},
	{service.ErrPasswordAlreadySet, http.StatusConflict},
	{service.ErrAlgorithmMismatch, http.StatusConflict},

	{validators.ErrWeakPassword, http.StatusUnprocessableEntity},
	{validators.ErrEmptyContent, http.StatusBadRequest},
	{validators.ErrEmptyNoteID, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},

	{crypto.ErrDecodeFailure, http.StatusForbidden},

	{store.ErrNoteNotFound, http.StatusNotFound},
	{store.ErrNoteAlreadyExists, http.StatusConflict},
	{store.ErrNoteNotSaved, http.StatusInternalServerError},

	{crypto.ErrMalformedContext, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// retryAfterFromError returns the whole seconds a client must wait before
// the next login attempt, or 0.
func retryAfterFromError(err error) int64 {
	var limited *service.RateLimitedError
	if errors.As(err, &limited) {
		return limited.Seconds()
	}
	var wrong *service.WrongPasswordError
	if errors.As(err, &wrong) {
		return wrong.Seconds()
	}
	return 0
}

// writeServiceError logs err and writes the mapped status. Internal errors
// are reported with the generic status text only.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("unexpected error")
		message = http.StatusText(status)
	} else {
		log.Warn().Err(err).Str("func", funcName).Int("status", status).Send()
	}

	utils.WriteError(w, status, message, retryAfterFromError(err))
}
