package store

import (
	"context"

	"github.com/MKhiriev/go-secret-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/storemock/store_mock.go -package=storemock

// NoteRepository persists encrypted notes. It never sees plaintext.
type NoteRepository interface {
	// InsertNote stores a new note. A note with the same ID yields
	// ErrNoteAlreadyExists.
	InsertNote(ctx context.Context, note models.Note) error

	// GetNote returns the note with id or ErrNoteNotFound.
	GetNote(ctx context.Context, id string) (models.Note, error)

	// GetAllNotes returns every note ordered by creation time, then id.
	GetAllNotes(ctx context.Context) ([]models.Note, error)

	// DeleteNote removes the note with id or returns ErrNoteNotFound.
	DeleteNote(ctx context.Context, id string) error
}

// PreferenceStore is a small string key-value store holding the master
// password record, the login backoff and the pinned key derivation settings.
type PreferenceStore interface {
	// Get returns the value of key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put writes all values atomically.
	Put(ctx context.Context, values map[string]string) error

	// Remove deletes keys. Missing keys are ignored.
	Remove(ctx context.Context, keys ...string) error
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
