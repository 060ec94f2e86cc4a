package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
)

// Storages aggregates the note repository and the preference store opened
// from one [config.Storage]. It owns the database handle; call Close when
// done.
type Storages struct {
	NoteRepository NoteRepository
	Preferences    PreferenceStore

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories. Preferences go to cfg.Preferences.File when it is
// set, otherwise to the preferences table.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate note database: %w", err)
	}

	var prefs PreferenceStore
	if cfg.Preferences.File != "" {
		prefs, err = NewFilePreferenceStore(cfg.Preferences.File)
		if err != nil {
			db.Close()
			return nil, err
		}
	} else {
		prefs = NewSQLPreferenceStore(db, log)
	}

	return &Storages{
		NoteRepository: NewNoteRepository(db, log),
		Preferences:    prefs,
		db:             db,
	}, nil
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
