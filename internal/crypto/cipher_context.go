// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/subtle"
	"fmt"
)

// Sizes of the serialized context regions.
const (
	KeySize  = 32
	SaltSize = 32
	IVSize   = aes.BlockSize

	// ContextSize is the length of a serialized context:
	// key(32) ++ salt(32) ++ iv(16).
	ContextSize = KeySize + SaltSize + IVSize
)

// CipherContext is the immutable {key, salt, iv} bundle of one note.
//
// Only salt and iv are needed to decode a note: the key is always
// re-derived from the typed password and the salt. The key is still part of
// the serialized layout so that blobs written by earlier versions parse.
type CipherContext struct {
	key  []byte
	salt []byte
	iv   []byte
}

func newCipherContext(key, salt, iv []byte) *CipherContext {
	return &CipherContext{
		key:  bytes.Clone(key),
		salt: bytes.Clone(salt),
		iv:   bytes.Clone(iv),
	}
}

// ParseCipherContext decodes a serialized context. Input shorter than
// ContextSize fails with ErrMalformedContext; bytes past ContextSize are
// ignored.
func ParseCipherContext(data []byte) (*CipherContext, error) {
	if len(data) < ContextSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedContext, len(data), ContextSize)
	}

	return newCipherContext(
		data[:KeySize],
		data[KeySize:KeySize+SaltSize],
		data[KeySize+SaltSize:ContextSize],
	), nil
}

// Key returns a copy of the stored key.
func (c *CipherContext) Key() []byte { return bytes.Clone(c.key) }

// Salt returns a copy of the salt.
func (c *CipherContext) Salt() []byte { return bytes.Clone(c.salt) }

// IV returns a copy of the initialization vector.
func (c *CipherContext) IV() []byte { return bytes.Clone(c.iv) }

// Serialize returns key ++ salt ++ iv.
func (c *CipherContext) Serialize() []byte {
	out := make([]byte, 0, ContextSize)
	out = append(out, c.key...)
	out = append(out, c.salt...)
	return append(out, c.iv...)
}

// SerializeRedacted returns the serialized layout with the key region
// zeroed. The result parses and decodes like the full form.
func (c *CipherContext) SerializeRedacted() []byte {
	out := c.Serialize()
	clear(out[:KeySize])
	return out
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c *CipherContext) MarshalBinary() ([]byte, error) {
	return c.Serialize(), nil
}

// Equal reports whether both contexts hold the same bytes.
func (c *CipherContext) Equal(other *CipherContext) bool {
	if c == nil || other == nil {
		return c == other
	}
	return subtle.ConstantTimeCompare(c.Serialize(), other.Serialize()) == 1
}

// Wipe zeroes the key held by the context. Salt and IV are not secret and
// stay intact.
func (c *CipherContext) Wipe() {
	Wipe(c.key)
}
