package adapter

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/service"
	"github.com/MKhiriev/go-secret-notes/internal/validators"
	"github.com/MKhiriev/go-secret-notes/models"
)

// localNotesAdapter calls the services in-process. Its session is never
// registered in services.Sessions, it lives only as long as the adapter.
type localNotesAdapter struct {
	services *service.Services

	mu      sync.Mutex
	session *service.Session

	logger *logger.Logger
}

// NewLocalNotesAdapter constructs a [NotesAdapter] over services opened on
// the local store.
func NewLocalNotesAdapter(services *service.Services, logger *logger.Logger) NotesAdapter {
	return &localNotesAdapter{services: services, logger: logger}
}

func (l *localNotesAdapter) current() (*service.Session, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.session == nil {
		return nil, service.ErrNotAuthenticated
	}
	return l.session, nil
}

func (l *localNotesAdapter) PasswordState(ctx context.Context) (models.PasswordState, error) {
	return l.services.MasterPassword.State(ctx)
}

func (l *localNotesAdapter) SetPassword(ctx context.Context, password string) error {
	return l.services.MasterPassword.Set(ctx, password)
}

func (l *localNotesAdapter) ValidatePassword(ctx context.Context, password string) (models.ValidationResponse, error) {
	state, err := l.services.MasterPassword.State(ctx)
	if err != nil {
		return models.ValidationResponse{}, err
	}
	return validators.Describe(password, state), nil
}

func (l *localNotesAdapter) Lockout(ctx context.Context) (time.Duration, error) {
	return l.services.LoginGate.Remaining(ctx)
}

func (l *localNotesAdapter) WaitLockout(ctx context.Context) error {
	return l.services.LoginGate.Wait(ctx)
}

// Login replaces any previous session, which is invalidated first.
func (l *localNotesAdapter) Login(ctx context.Context, password string) error {
	session, err := l.services.LoginGate.Login(ctx, password)
	if err != nil {
		return err
	}

	l.mu.Lock()
	previous := l.session
	l.session = session
	l.mu.Unlock()

	if previous != nil {
		previous.Invalidate()
	}
	return nil
}

func (l *localNotesAdapter) Logout(ctx context.Context) error {
	l.mu.Lock()
	session := l.session
	l.session = nil
	l.mu.Unlock()

	if session != nil {
		session.Invalidate()
		logger.FromContext(ctx).Debug().Str("func", "*localNotesAdapter.Logout").Msg("session invalidated")
	}
	return nil
}

func (l *localNotesAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	session, err := l.current()
	if err != nil {
		return nil, err
	}
	return l.services.NoteService.List(ctx, session)
}

func (l *localNotesAdapter) CreateNote(ctx context.Context, password string, draft models.NoteDraft) (models.Note, error) {
	session, err := l.current()
	if err != nil {
		return models.Note{}, err
	}
	return l.services.NoteService.Create(ctx, session, password, draft)
}

func (l *localNotesAdapter) OpenNote(ctx context.Context, id, password string) (models.DecipheredNote, error) {
	session, err := l.current()
	if err != nil {
		return models.DecipheredNote{}, err
	}
	return l.services.NoteService.Open(ctx, session, id, password)
}

func (l *localNotesAdapter) DeleteNote(ctx context.Context, id string) error {
	session, err := l.current()
	if err != nil {
		return err
	}
	return l.services.NoteService.Delete(ctx, session, id)
}
