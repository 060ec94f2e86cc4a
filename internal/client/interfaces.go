// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command named by args[0] and returns when it is done.
	Run(ctx context.Context, args []string) error
}

// Prompter reads user input.
type Prompter interface {
	// ReadPassword prints label and reads a line without echoing it.
	ReadPassword(label string) (string, error)

	// ReadLine prints label and reads a line.
	ReadLine(label string) (string, error)
}

// Clipboard receives the content of opened notes.
type Clipboard interface {
	WriteAll(text string) error
}
