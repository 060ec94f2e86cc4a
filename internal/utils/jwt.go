package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-secret-notes/models"
)

// ErrInvalidAuthorizationHeader is returned by ParseBearerToken for headers
// that are not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT bound to a daemon session.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the daemon that issued the token
//   - Subject   (sub): the session ID
//   - ID        (jti): a random token identifier
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("notesd", session.ID(), 15*time.Minute, "secret")
func GenerateJWTToken(issuer, sessionID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || sessionID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   sessionID,
		ID:        NewUUIDGenerator().Generate(),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		SessionID:        sessionID,
	}, nil
}

// ValidateAndParseJWTToken verifies the signature, the issuer, the expiry
// and the presence of a session subject, and returns the decoded token.
//
// Only HS256 is accepted; tokens signed with any other method are rejected
// before the key is consulted.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	parsed := models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString}
	sessionID, err := parsed.GetSessionID()
	if err != nil {
		return models.Token{}, err
	}
	parsed.SessionID = sessionID

	return parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
