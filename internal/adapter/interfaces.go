// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter gives the notes CLI one API over two backends: a running
// daemon reached over HTTP ([NewHTTPNotesAdapter]) and the local store opened
// in-process ([NewLocalNotesAdapter]).
//
// Daemon error responses are mapped back to the service, store, crypto and
// validators sentinels by mapHTTPError, so callers use [errors.Is] and
// [errors.As] the same way for both backends.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secret-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// NotesAdapter is the CLI's view of the notes backend. Note operations
// require a preceding successful Login; Logout ends the session and drops
// every note decrypted during it.
type NotesAdapter interface {
	// PasswordState reports whether a master password is set.
	PasswordState(ctx context.Context) (models.PasswordState, error)

	// SetPassword stores the first master password.
	SetPassword(ctx context.Context, password string) error

	// ValidatePassword runs the strength rules and returns the prompt hint.
	ValidatePassword(ctx context.Context, password string) (models.ValidationResponse, error)

	// Lockout returns how long login attempts are refused, 0 when allowed.
	Lockout(ctx context.Context) (time.Duration, error)

	// WaitLockout blocks until the lockout is over or ctx is done.
	WaitLockout(ctx context.Context) error

	// Login opens a session. It returns *service.WrongPasswordError,
	// *service.RateLimitedError or service.ErrAttemptInProgress on refusal.
	Login(ctx context.Context, password string) error

	// Logout invalidates the session. It is a no-op without a session.
	Logout(ctx context.Context) error

	ListNotes(ctx context.Context) ([]models.Note, error)
	CreateNote(ctx context.Context, password string, draft models.NoteDraft) (models.Note, error)
	OpenNote(ctx context.Context, id, password string) (models.DecipheredNote, error)
	DeleteNote(ctx context.Context, id string) error
}
