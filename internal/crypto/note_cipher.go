// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

// noteCipher is the private implementation of [NoteCipher].
type noteCipher struct {
	factory *ContextFactory
	deriver KeyDeriver
	codec   FieldCodec

	// redactKey zeroes the key region of serialized contexts.
	redactKey bool
}

// NoteCipherOpt configures a [NoteCipher].
type NoteCipherOpt func(*noteCipher)

// WithRedactedKey makes Serialize write zeros in place of the key.
func WithRedactedKey(redact bool) NoteCipherOpt {
	return func(n *noteCipher) {
		n.redactKey = redact
	}
}

// WithFactoryOpts forwards options to the underlying [ContextFactory].
func WithFactoryOpts(opts ...FactoryOpt) NoteCipherOpt {
	return func(n *noteCipher) {
		n.factory = NewContextFactory(n.deriver, opts...)
	}
}

// NewNoteCipher builds a [NoteCipher] on top of deriver and the AES-CBC codec.
func NewNoteCipher(deriver KeyDeriver, opts ...NoteCipherOpt) NoteCipher {
	n := &noteCipher{
		deriver: deriver,
		codec:   NewFieldCodec(),
		factory: NewContextFactory(deriver),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *noteCipher) NewContext(password string) (*CipherContext, []byte, error) {
	return n.factory.NewForPassword(password)
}

func (n *noteCipher) Unlock(password string, cc *CipherContext) ([]byte, error) {
	key, err := n.deriver.DeriveKey(password, cc.salt)
	if err != nil {
		return nil, fmt.Errorf("error re-deriving note key: %w", err)
	}
	return key, nil
}

func (n *noteCipher) Encrypt(plaintext string, key []byte, cc *CipherContext) ([]byte, error) {
	return n.codec.Encrypt(plaintext, key, cc.iv)
}

func (n *noteCipher) Decrypt(field []byte, key []byte, cc *CipherContext) (string, error) {
	return n.codec.Decrypt(field, key, cc.iv)
}

func (n *noteCipher) Serialize(cc *CipherContext) []byte {
	if n.redactKey {
		return cc.SerializeRedacted()
	}
	return cc.Serialize()
}
