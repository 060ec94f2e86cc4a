package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/service"
	"github.com/MKhiriev/go-secret-notes/internal/utils"
	"github.com/MKhiriev/go-secret-notes/internal/validators"
	"github.com/MKhiriev/go-secret-notes/models"
	"github.com/go-resty/resty/v2"
)

var noteIDErrors = map[int]error{http.StatusBadRequest: validators.ErrEmptyNoteID}

// lockoutPollInterval caps the sleep between lockout polls in WaitLockout.
const lockoutPollInterval = 30 * time.Second

type httpNotesAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPNotesAdapter constructs the daemon-backed [NotesAdapter]. The base
// URL is taken from cfg.HTTPAddress; a missing scheme defaults to http.
//
// Returns ErrInvalidAddress if the address is empty or cannot be parsed.
func NewHTTPNotesAdapter(cfg config.Adapter, logger *logger.Logger) (NotesAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpNotesAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpNotesAdapter) setToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpNotesAdapter) getToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authedRequest returns a request carrying the session token, or
// service.ErrNotAuthenticated before Login.
func (h *httpNotesAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.getToken()
	if token == "" {
		return nil, service.ErrNotAuthenticated
	}
	return h.client.WithToken(token).SetContext(ctx), nil
}

func (h *httpNotesAdapter) PasswordState(ctx context.Context) (models.PasswordState, error) {
	var body models.PasswordStateResponse
	resp, err := h.client.R().SetContext(ctx).SetResult(&body).Get("/api/password/state")
	if err != nil {
		return models.NoPasswordSet, fmt.Errorf("password state request: %w", err)
	}
	if err = mapHTTPError(resp, nil); err != nil {
		return models.NoPasswordSet, err
	}

	state, ok := models.ParsePasswordState(body.State)
	if !ok {
		return models.NoPasswordSet, fmt.Errorf("%w: password state %q", ErrUnexpectedResponse, body.State)
	}
	return state, nil
}

func (h *httpNotesAdapter) SetPassword(ctx context.Context, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.PasswordRequest{Password: password}).
		Post("/api/password")
	if err != nil {
		return fmt.Errorf("set password request: %w", err)
	}

	return mapHTTPError(resp, map[int]error{http.StatusConflict: service.ErrPasswordAlreadySet})
}

func (h *httpNotesAdapter) ValidatePassword(ctx context.Context, password string) (models.ValidationResponse, error) {
	var body models.ValidationResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.PasswordRequest{Password: password}).
		SetResult(&body).
		Post("/api/password/validate")
	if err != nil {
		return models.ValidationResponse{}, fmt.Errorf("validate password request: %w", err)
	}
	if err = mapHTTPError(resp, nil); err != nil {
		return models.ValidationResponse{}, err
	}
	return body, nil
}

func (h *httpNotesAdapter) Lockout(ctx context.Context) (time.Duration, error) {
	var body models.LockoutResponse
	resp, err := h.client.R().SetContext(ctx).SetResult(&body).Get("/api/session/lockout")
	if err != nil {
		return 0, fmt.Errorf("lockout request: %w", err)
	}
	if err = mapHTTPError(resp, nil); err != nil {
		return 0, err
	}
	return time.Duration(body.RetryAfter) * time.Second, nil
}

// WaitLockout polls the daemon, since the lockout may be extended by other
// clients while this one sleeps.
func (h *httpNotesAdapter) WaitLockout(ctx context.Context) error {
	for {
		remaining, err := h.Lockout(ctx)
		if err != nil {
			return err
		}
		if remaining <= 0 {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(min(remaining, lockoutPollInterval)):
		}
	}
}

// Login POSTs the master password to /api/session/login and keeps the
// bearer token from the Authorization response header.
func (h *httpNotesAdapter) Login(ctx context.Context, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.PasswordRequest{Password: password}).
		Post("/api/session/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	err = mapHTTPError(resp, map[int]error{
		http.StatusUnauthorized: service.ErrWrongPassword,
		http.StatusConflict:     service.ErrAttemptInProgress,
	})
	if err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.setToken(token)
	return nil
}

func (h *httpNotesAdapter) Logout(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil
	}
	defer h.setToken("")

	resp, err := req.Post("/api/session/invalidate")
	if err != nil {
		return fmt.Errorf("invalidate request: %w", err)
	}
	return mapHTTPError(resp, nil)
}

func (h *httpNotesAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var notes []models.Note
	resp, err := req.SetResult(&notes).Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp, nil); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func (h *httpNotesAdapter) CreateNote(ctx context.Context, password string, draft models.NoteDraft) (models.Note, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Note{}, err
	}

	var note models.Note
	resp, err := req.
		SetBody(models.CreateNoteRequest{Password: password, Note: draft}).
		SetResult(&note).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp, map[int]error{
		http.StatusBadRequest: validators.ErrEmptyContent,
		http.StatusForbidden:  service.ErrWrongPassword,
	}); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (h *httpNotesAdapter) OpenNote(ctx context.Context, id, password string) (models.DecipheredNote, error) {
	if id == "" {
		return models.DecipheredNote{}, validators.ErrEmptyNoteID
	}
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.DecipheredNote{}, err
	}

	var opened models.DecipheredNote
	resp, err := req.
		SetPathParam("id", id).
		SetBody(models.OpenNoteRequest{Password: password}).
		SetResult(&opened).
		Post("/api/notes/{id}/open")
	if err != nil {
		return models.DecipheredNote{}, fmt.Errorf("open note request: %w", err)
	}
	if err = mapHTTPError(resp, noteIDErrors); err != nil {
		return models.DecipheredNote{}, err
	}
	return opened, nil
}

func (h *httpNotesAdapter) DeleteNote(ctx context.Context, id string) error {
	if id == "" {
		return validators.ErrEmptyNoteID
	}
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetPathParam("id", id).Delete("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}
	return mapHTTPError(resp, noteIDErrors)
}
