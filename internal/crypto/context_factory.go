// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// ContextFactory creates fresh cipher contexts.
type ContextFactory struct {
	deriver KeyDeriver
	random  io.Reader
}

// FactoryOpt configures a [ContextFactory].
type FactoryOpt func(*ContextFactory)

// WithRandom replaces the CSPRNG used for salts and IVs. Intended for tests.
func WithRandom(r io.Reader) FactoryOpt {
	return func(f *ContextFactory) {
		f.random = r
	}
}

// NewContextFactory returns a factory deriving keys with deriver and
// reading salts and IVs from crypto/rand unless overridden.
func NewContextFactory(deriver KeyDeriver, opts ...FactoryOpt) *ContextFactory {
	f := &ContextFactory{
		deriver: deriver,
		random:  rand.Reader,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewForPassword draws a SaltSize salt and an IVSize IV, derives the key
// from password and salt, and returns the new context with the key.
// The caller owns the returned key and should Wipe it when done.
func (f *ContextFactory) NewForPassword(password string) (*CipherContext, []byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(f.random, salt); err != nil {
		return nil, nil, fmt.Errorf("error generating salt: %w", err)
	}
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(f.random, iv); err != nil {
		return nil, nil, fmt.Errorf("error generating iv: %w", err)
	}

	key, err := f.deriver.DeriveKey(password, salt)
	if err != nil {
		return nil, nil, fmt.Errorf("error deriving key: %w", err)
	}

	return newCipherContext(key, salt, iv), key, nil
}
