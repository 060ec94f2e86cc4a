// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings printed by the notes
// CLI.
//
// Msg* constants ending in a verb argument are fmt format strings.
package app

const (
	// MsgPasswordNotSet is printed when a command needs a session but no
	// master password exists yet.
	MsgPasswordNotSet = "No master password is set. Run `notes password set` first."

	// MsgPasswordSet confirms a stored master password.
	MsgPasswordSet = "Master password set."

	// MsgWrongPassword is printed after a failed login without backoff.
	MsgWrongPassword = "Wrong password."

	// MsgWrongPasswordRetryIn is printed after a failed login that started a
	// backoff of the given number of seconds.
	MsgWrongPasswordRetryIn = "Wrong password. Try again in %d seconds.\n"

	// MsgLoginLocked is printed before waiting out an active lockout.
	MsgLoginLocked = "Login is locked, waiting %d seconds...\n"

	MsgNoNotes       = "No notes."
	MsgNoteCreated   = "Created note %s\n"
	MsgNoteDeleted   = "Deleted note %s\n"
	MsgContentCopied = "Content copied to the clipboard."
)
