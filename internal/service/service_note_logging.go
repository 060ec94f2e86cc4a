package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/models"
)

// NoteLoggingService logs the outcome and duration of every NoteService
// call. Passwords and plaintext are never logged.
type NoteLoggingService struct {
	inner  NoteService
	logger *logger.Logger
}

func NewNoteLoggingService(logger *logger.Logger) NoteServiceWrapper {
	return &NoteLoggingService{logger: logger}
}

func (l *NoteLoggingService) Wrap(inner NoteService) NoteService {
	l.inner = inner
	return l
}

func (l *NoteLoggingService) Create(ctx context.Context, session *Session, password string, draft models.NoteDraft) (models.Note, error) {
	start := time.Now()
	note, err := l.inner.Create(ctx, session, password, draft)
	l.log(ctx, "Create", note.ID, start, err)
	return note, err
}

func (l *NoteLoggingService) List(ctx context.Context, session *Session) ([]models.Note, error) {
	start := time.Now()
	notes, err := l.inner.List(ctx, session)
	logger.FromContext(ctx).Debug().
		Str("func", "NoteService.List").
		Int("count", len(notes)).
		Dur("took", time.Since(start)).
		AnErr("error", err).
		Msg("note service call")
	return notes, err
}

func (l *NoteLoggingService) Open(ctx context.Context, session *Session, id, password string) (models.DecipheredNote, error) {
	start := time.Now()
	note, err := l.inner.Open(ctx, session, id, password)
	l.log(ctx, "Open", id, start, err)
	return note, err
}

func (l *NoteLoggingService) Delete(ctx context.Context, session *Session, id string) error {
	start := time.Now()
	err := l.inner.Delete(ctx, session, id)
	l.log(ctx, "Delete", id, start, err)
	return err
}

func (l *NoteLoggingService) log(ctx context.Context, method, id string, start time.Time, err error) {
	logger.FromContext(ctx).Debug().
		Str("func", "NoteService."+method).
		Str("id", id).
		Dur("took", time.Since(start)).
		AnErr("error", err).
		Msg("note service call")
}
