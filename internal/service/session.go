package service

import (
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-secret-notes/models"
)

// Session is one authenticated period between a successful login and
// Invalidate. It keeps the notes opened during the period in memory.
//
// All methods are safe for concurrent use. Once invalidated a session never
// becomes authenticated again.
type Session struct {
	id    string
	clock Clock

	mu       sync.RWMutex
	state    models.LoginState
	lastUsed time.Time
	opened   map[string]models.DecipheredNote
}

// NewSession returns an authenticated session with a random ID.
func NewSession(clock Clock) *Session {
	if clock == nil {
		clock = SystemClock()
	}
	return &Session{
		id:       uuid.NewString(),
		clock:    clock,
		state:    models.Authenticated,
		lastUsed: clock.Now(),
		opened:   make(map[string]models.DecipheredNote),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() models.LoginState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Touch records use of the session. It fails with ErrNotAuthenticated after
// Invalidate.
func (s *Session) Touch() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != models.Authenticated {
		return ErrNotAuthenticated
	}
	s.lastUsed = s.clock.Now()
	return nil
}

// LastUsed returns the time of the last successful Touch.
func (s *Session) LastUsed() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUsed
}

// Invalidate drops every decrypted note held by the session and flips it to
// Unauthenticated. Calling it more than once is a no-op.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.opened)
	s.opened = nil
	s.state = models.Unauthenticated
}

// Remember keeps an opened note until Forget or Invalidate.
func (s *Session) Remember(note models.DecipheredNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != models.Authenticated {
		return ErrNotAuthenticated
	}
	s.opened[note.ID] = note
	return nil
}

// Opened returns a note previously passed to Remember.
func (s *Session) Opened(id string) (models.DecipheredNote, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != models.Authenticated {
		return models.DecipheredNote{}, false, ErrNotAuthenticated
	}
	note, ok := s.opened[id]
	return note, ok, nil
}

// OpenedCount returns how many decrypted notes the session holds.
func (s *Session) OpenedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.opened)
}

func (s *Session) Forget(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.opened, id)
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return now.Sub(s.lastUsed)
}

// SessionManager indexes the live sessions of the daemon by ID.
type SessionManager struct {
	clock Clock

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionManager(clock Clock) *SessionManager {
	if clock == nil {
		clock = SystemClock()
	}
	return &SessionManager{
		clock:    clock,
		sessions: make(map[string]*Session),
	}
}

func (m *SessionManager) Register(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = s
}

// Get returns the live session with id and touches it. Invalidated sessions
// are dropped and reported as ErrNotAuthenticated.
func (m *SessionManager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	if err := s.Touch(); err != nil {
		m.remove(id)
		return nil, err
	}
	return s, nil
}

// Invalidate invalidates and removes the session with id. It reports whether
// the session existed.
func (m *SessionManager) Invalidate(id string) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		s.Invalidate()
	}
	return ok
}

// InvalidateAll invalidates every session and returns how many there were.
func (m *SessionManager) InvalidateAll() int {
	m.mu.Lock()
	sessions := maps.Clone(m.sessions)
	clear(m.sessions)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Invalidate()
	}
	return len(sessions)
}

// Sweep invalidates sessions unused for longer than idle and returns how many
// were removed.
func (m *SessionManager) Sweep(idle time.Duration) int {
	now := m.clock.Now()

	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if s.State() != models.Authenticated || s.idleSince(now) > idle {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.Invalidate()
	}
	return len(expired)
}

func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *SessionManager) remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
