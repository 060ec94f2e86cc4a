package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/service"
	"github.com/MKhiriev/go-secret-notes/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that binds the request to a live daemon session.
//
// It extracts the bearer token from the "Authorization" header, resolves it
// through [service.AuthService.Authenticate] and stores the session ID in the
// request context under [utils.SessionIDCtxKey]. The request logger gains a
// "session_id" field.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent or malformed, when the token is expired or forged, and when the
// session behind a valid token was invalidated.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error(), 0)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, http.StatusUnauthorized, err.Error(), 0)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpiredOrInvalid), errors.Is(err, service.ErrNotAuthenticated):
				log.Err(err).Msg("request is not authenticated")
				utils.WriteError(w, http.StatusUnauthorized, err.Error(), 0)
			default:
				log.Err(err).Msg("error occurred during authentication")
				utils.WriteError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), 0)
			}
			return
		}

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("session_id", session.ID())
		})
		ctx = l.WithContext(utils.WithSessionID(ctx, session.ID()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFromRequest returns the live session the auth middleware bound
// to r.
func (h *Handler) sessionFromRequest(r *http.Request) (*service.Session, error) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		return nil, ErrNoSession
	}

	session, err := h.services.Sessions.Get(sessionID)
	if errors.Is(err, service.ErrSessionNotFound) {
		return nil, service.ErrNotAuthenticated
	}
	return session, err
}
