package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secret-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PasswordHasher turns a master password into the string kept in the
// preference store.
type PasswordHasher interface {
	// Algorithm is the name stored under the password_hashing_method key.
	Algorithm() string

	// Hash returns the hex digest of password. deviceID is ignored by
	// algorithms that do not salt.
	Hash(password, deviceID string) string
}

// MasterPasswordService owns the master password record.
type MasterPasswordService interface {
	// State reports whether a master password is stored.
	State(ctx context.Context) (models.PasswordState, error)

	// Load returns the stored record. An unset password has a nil hash.
	Load(ctx context.Context) (models.MasterPassword, error)

	// Set validates and stores a new master password. It fails with
	// ErrPasswordAlreadySet once a password exists.
	Set(ctx context.Context, password string) error

	// Check compares candidate with the stored hash.
	Check(ctx context.Context, candidate string) (bool, error)

	// DeviceID returns the identifier mixed into salted hashes.
	DeviceID(ctx context.Context) (string, error)
}

// LoginGate authenticates the master password with exponential backoff.
type LoginGate interface {
	// Login opens a new session when candidate matches. See RateLimitedError
	// and WrongPasswordError for the refusal cases.
	Login(ctx context.Context, candidate string) (*Session, error)

	// Remaining returns how long logins stay locked. Zero means open.
	Remaining(ctx context.Context) (time.Duration, error)

	// Wait blocks until the lockout window is over or ctx is done.
	Wait(ctx context.Context) error
}

// NoteService creates, lists, opens and deletes notes for an
// authenticated session.
type NoteService interface {
	Create(ctx context.Context, session *Session, password string, draft models.NoteDraft) (models.Note, error)
	List(ctx context.Context, session *Session) ([]models.Note, error)
	Open(ctx context.Context, session *Session, id, password string) (models.DecipheredNote, error)
	Delete(ctx context.Context, session *Session, id string) error
}

// AuthService binds daemon sessions to signed tokens.
type AuthService interface {
	// Login runs the login gate and returns a token for the new session.
	Login(ctx context.Context, password string) (models.Token, error)

	// Authenticate validates tokenString and returns its live session.
	Authenticate(ctx context.Context, tokenString string) (*Session, error)

	// Logout invalidates the session the token belongs to.
	Logout(ctx context.Context, sessionID string) error

	CreateToken(ctx context.Context, session *Session) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}

// Clock is the time source of the login gate and sessions.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}
