package service

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrPasswordNotSet     = errors.New("master password is not set")
	ErrPasswordAlreadySet = errors.New("master password is already set")
	ErrAlgorithmMismatch  = errors.New("stored password hashing algorithm differs from the current one")
	ErrUnsupportedHashing = errors.New("unsupported password hashing algorithm")
	ErrKDFMismatch        = errors.New("key derivation settings differ from the ones existing notes use")

	ErrWrongPassword     = errors.New("wrong password")
	ErrRateLimited       = errors.New("too many login attempts")
	ErrAttemptInProgress = errors.New("another login attempt is in progress")

	ErrNotAuthenticated = errors.New("session is not authenticated")
	ErrSessionNotFound  = errors.New("session was not found")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// RateLimitedError refuses a login attempt made inside a backoff window.
type RateLimitedError struct {
	Remaining time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("%s: retry in %ds", ErrRateLimited, e.Seconds())
}

// Seconds returns the remaining wait rounded up to whole seconds.
func (e *RateLimitedError) Seconds() int64 {
	return ceilSeconds(e.Remaining)
}

func (e *RateLimitedError) Unwrap() error {
	return ErrRateLimited
}

// WrongPasswordError reports a failed login and the backoff it started.
type WrongPasswordError struct {
	Delay time.Duration
}

func (e *WrongPasswordError) Error() string {
	return fmt.Sprintf("%s: wait %ds", ErrWrongPassword, e.Seconds())
}

// Seconds returns the new backoff in whole seconds.
func (e *WrongPasswordError) Seconds() int64 {
	return ceilSeconds(e.Delay)
}

func (e *WrongPasswordError) Unwrap() error {
	return ErrWrongPassword
}

func ceilSeconds(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return int64(math.Ceil(d.Seconds()))
}
