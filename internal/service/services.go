package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/crypto"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/store"
	"github.com/MKhiriev/go-secret-notes/models"
)

// Services wires every service of one process around a single set of
// storages. Sessions is shared by AuthService and the session sweeper.
type Services struct {
	MasterPassword MasterPasswordService
	LoginGate      LoginGate
	NoteService    NoteService
	AuthService    AuthService
	AppInfo        AppInfoService
	Sessions       *SessionManager
}

// NewServices fails with ErrKDFMismatch when the configured key derivation
// differs from the one the stored notes were written with.
func NewServices(ctx context.Context, storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	deriver, err := crypto.NewKeyDeriver(cfg.Crypto.KDFAlgorithm, cfg.Crypto.KDFIterations)
	if err != nil {
		return nil, fmt.Errorf("error creating key deriver: %w", err)
	}
	if err = pinKDF(ctx, storages.Preferences, storages.NoteRepository, cfg.Crypto); err != nil {
		return nil, err
	}
	cipher := crypto.NewNoteCipher(deriver, crypto.WithRedactedKey(cfg.Crypto.RedactStoredKey))

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	passwords := NewMasterPasswordService(storages.Preferences, cfg.App, logger)
	gate := NewLoginGate(passwords, storages.Preferences, logger)
	sessions := NewSessionManager(SystemClock())

	noteService := NewNoteService(storages.NoteRepository, cipher, passwords, logger)
	noteService = NewNoteLoggingService(logger).Wrap(noteService)

	return &Services{
		MasterPassword: passwords,
		LoginGate:      gate,
		NoteService:    noteService,
		AuthService:    NewAuthService(gate, sessions, cfg.App, logger),
		AppInfo:        appInfo,
		Sessions:       sessions,
	}, nil
}
