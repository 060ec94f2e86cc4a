package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued by the daemon after a successful login.
//
// The "sub" claim carries the identifier of the in-memory session the
// token belongs to. Invalidating the session makes the token useless
// even before it expires.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// SessionID is a cached copy of the "sub" claim.
	SessionID string `json:"-"`
}

// GetSessionID returns the session identifier stored in the "sub" claim.
func (t *Token) GetSessionID() (string, error) {
	sessionID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting session id from token: %w", err)
	}
	if sessionID == "" {
		return "", fmt.Errorf("token has empty subject")
	}
	return sessionID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
