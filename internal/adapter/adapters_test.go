package adapter

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/crypto"
	httpHandler "github.com/MKhiriev/go-secret-notes/internal/handler/http"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/service"
	"github.com/MKhiriev/go-secret-notes/internal/store"
	"github.com/MKhiriev/go-secret-notes/internal/validators"
	"github.com/MKhiriev/go-secret-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) *service.Services {
	t.Helper()
	cfg := &config.StructuredConfig{
		App: config.App{
			Version:       "test",
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "notesd",
			TokenDuration: time.Minute,
		},
		Crypto: config.Crypto{KDFIterations: 1},
		Storage: config.Storage{DB: config.DB{
			Driver: config.DriverSQLite,
			DSN:    filepath.Join(t.TempDir(), "notes.db"),
		}},
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(context.Background(), storages, cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	return services
}

// backends runs the same scenario against the in-process adapter and the
// HTTP adapter talking to a real daemon router.
func backends(t *testing.T) map[string]func(t *testing.T) NotesAdapter {
	return map[string]func(t *testing.T) NotesAdapter{
		"local": func(t *testing.T) NotesAdapter {
			return NewLocalNotesAdapter(newTestServices(t), logger.Nop())
		},
		"http": func(t *testing.T) NotesAdapter {
			services := newTestServices(t)
			srv := httptest.NewServer(httpHandler.NewHandler(services, logger.Nop()).Init())
			t.Cleanup(srv.Close)

			a, err := NewHTTPNotesAdapter(config.Adapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
			require.NoError(t, err)
			return a
		},
	}
}

func TestNotesAdapter_Lifecycle(t *testing.T) {
	for name, newAdapter := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			a := newAdapter(t)

			state, err := a.PasswordState(ctx)
			require.NoError(t, err)
			assert.Equal(t, models.NoPasswordSet, state)

			hint, err := a.ValidatePassword(ctx, "short")
			require.NoError(t, err)
			assert.Equal(t, "too_short", hint.Result)

			assert.ErrorIs(t, a.SetPassword(ctx, "weakpassword"), validators.ErrWeakPassword)
			require.NoError(t, a.SetPassword(ctx, "Secret1"))
			assert.ErrorIs(t, a.SetPassword(ctx, "Secret2"), service.ErrPasswordAlreadySet)

			_, err = a.ListNotes(ctx)
			assert.ErrorIs(t, err, service.ErrNotAuthenticated)

			require.NoError(t, a.Login(ctx, "Secret1"))

			title := "shopping"
			created, err := a.CreateNote(ctx, "Secret1", models.NoteDraft{PublicTitle: &title, Content: "buy milk"})
			require.NoError(t, err)
			assert.NotEmpty(t, created.ID)

			_, err = a.CreateNote(ctx, "Other12", models.NoteDraft{Content: "x"})
			assert.ErrorIs(t, err, service.ErrWrongPassword)

			_, err = a.CreateNote(ctx, "Secret1", models.NoteDraft{})
			assert.ErrorIs(t, err, validators.ErrEmptyContent)

			notes, err := a.ListNotes(ctx)
			require.NoError(t, err)
			require.Len(t, notes, 1)
			assert.Equal(t, created.ID, notes[0].ID)
			assert.Equal(t, &title, notes[0].PublicTitle)

			opened, err := a.OpenNote(ctx, created.ID, "Secret1")
			require.NoError(t, err)
			assert.Equal(t, "buy milk", opened.Content)

			_, err = a.OpenNote(ctx, "missing", "Secret1")
			assert.ErrorIs(t, err, store.ErrNoteNotFound)

			require.NoError(t, a.DeleteNote(ctx, created.ID))
			assert.ErrorIs(t, a.DeleteNote(ctx, created.ID), store.ErrNoteNotFound)

			require.NoError(t, a.Logout(ctx))
			_, err = a.ListNotes(ctx)
			assert.ErrorIs(t, err, service.ErrNotAuthenticated)
			require.NoError(t, a.Logout(ctx))
		})
	}
}

func TestNotesAdapter_OpenWithWrongPassword(t *testing.T) {
	for name, newAdapter := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			a := newAdapter(t)

			require.NoError(t, a.SetPassword(ctx, "Secret1"))
			require.NoError(t, a.Login(ctx, "Secret1"))
			created, err := a.CreateNote(ctx, "Secret1", models.NoteDraft{Content: "a fairly long secret body"})
			require.NoError(t, err)

			_, err = a.OpenNote(ctx, created.ID, "Wrong12")
			assert.ErrorIs(t, err, crypto.ErrDecodeFailure)
		})
	}
}

func TestNotesAdapter_Backoff(t *testing.T) {
	for name, newAdapter := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			a := newAdapter(t)
			require.NoError(t, a.SetPassword(ctx, "Secret1"))

			err := a.Login(ctx, "Wrong12")
			var wrong *service.WrongPasswordError
			require.ErrorAs(t, err, &wrong)
			assert.Zero(t, wrong.Seconds())

			err = a.Login(ctx, "Wrong12")
			require.ErrorAs(t, err, &wrong)
			assert.Equal(t, int64(2), wrong.Seconds())

			remaining, err := a.Lockout(ctx)
			require.NoError(t, err)
			assert.Greater(t, remaining, time.Duration(0))
			assert.LessOrEqual(t, remaining, 2*time.Second)

			err = a.Login(ctx, "Secret1")
			var limited *service.RateLimitedError
			require.ErrorAs(t, err, &limited)
			assert.ErrorIs(t, err, service.ErrRateLimited)

			require.NoError(t, a.WaitLockout(ctx))
			require.NoError(t, a.Login(ctx, "Secret1"))
		})
	}
}
