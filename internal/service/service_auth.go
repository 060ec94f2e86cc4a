package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/utils"
	"github.com/MKhiriev/go-secret-notes/models"
)

// authService is the concrete implementation of AuthService.
// It turns successful logins into registered sessions and signs a JWT
// whose subject is the session ID.
type authService struct {
	// gate authenticates the master password.
	gate LoginGate

	// sessions holds every live daemon session.
	sessions *SessionManager

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService on top of gate and sessions
// with token parameters from cfg.
func NewAuthService(gate LoginGate, sessions *SessionManager, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		gate:          gate,
		sessions:      sessions,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login authenticates password through the login gate, registers the new
// session and returns its token. Gate errors (RateLimitedError,
// WrongPasswordError, ErrAttemptInProgress) are returned unchanged.
func (a *authService) Login(ctx context.Context, password string) (models.Token, error) {
	session, err := a.gate.Login(ctx, password)
	if err != nil {
		return models.Token{}, err
	}

	token, err := a.CreateToken(ctx, session)
	if err != nil {
		session.Invalidate()
		return models.Token{}, err
	}

	a.sessions.Register(session)
	return token, nil
}

// Authenticate resolves tokenString to its live session.
//
// Returns ErrTokenIsExpiredOrInvalid for bad tokens and ErrNotAuthenticated
// for tokens whose session is gone.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (*Session, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	session, err := a.sessions.Get(token.SessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (a *authService) Logout(ctx context.Context, sessionID string) error {
	if !a.sessions.Invalidate(sessionID) {
		return ErrNotAuthenticated
	}
	logger.FromContext(ctx).Info().Str("func", "*authService.Logout").Msg("session invalidated")
	return nil
}

// CreateToken issues a signed JWT for session.
func (a *authService) CreateToken(ctx context.Context, session *Session) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, session.ID(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
