// Package utils provides general-purpose helpers shared by the daemon and
// the CLI: type-safe context keys, JSON response writing, the resty HTTP
// client, session token generation and validation, and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key the auth middleware stores the authenticated
// session ID under.
var SessionIDCtxKey = contextKey("sessionID")

// WithSessionID returns a copy of ctx carrying sessionID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}

// GetSessionIDFromContext retrieves the session ID from the context.
//
// ok is false when the value is missing, has an unexpected type or is empty.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}
