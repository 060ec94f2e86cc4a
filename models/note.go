// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EncryptedField is the ciphertext of a single text value of a note.
// It is marshaled to JSON as base64.
type EncryptedField []byte

// Note is a stored note. All fields except PublicTitle and CreatedAt are
// opaque without the password the note was created with.
type Note struct {
	// ID is a UUIDv7 string assigned on creation.
	ID string `json:"id"`

	// PublicTitle is stored unencrypted and may be nil.
	PublicTitle *string `json:"public_title,omitempty"`

	// PrivateTitle is an optional encrypted title.
	PrivateTitle *EncryptedField `json:"private_title,omitempty"`

	// PrivateContent is the encrypted body. It is never empty.
	PrivateContent EncryptedField `json:"private_content"`

	// CreatedAt is the creation time in UTC.
	CreatedAt time.Time `json:"created_at"`

	// CipherContext is the serialized key/salt/iv bundle every encrypted
	// field of the note was produced with.
	CipherContext []byte `json:"cipher_context"`
}

// NoteDraft is the plaintext input of note creation.
type NoteDraft struct {
	PublicTitle  *string `json:"public_title,omitempty"`
	PrivateTitle *string `json:"private_title,omitempty"`
	Content      string  `json:"content"`
}

// DecipheredNote is a note with its private fields decoded.
type DecipheredNote struct {
	ID           string    `json:"id"`
	PublicTitle  *string   `json:"public_title,omitempty"`
	PrivateTitle *string   `json:"private_title,omitempty"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}
