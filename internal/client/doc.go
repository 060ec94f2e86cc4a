// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the commands of the notes CLI.
//
// Every command runs against an [adapter.NotesAdapter], so the same code
// serves the local store and a running daemon. Commands that touch notes
// open a session first (waiting out an active login lockout) and end it
// before returning.
package client
