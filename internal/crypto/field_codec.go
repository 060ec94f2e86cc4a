// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"unicode/utf8"
)

// cbcCodec is the AES-256-CBC/PKCS#7 implementation of [FieldCodec].
type cbcCodec struct{}

// NewFieldCodec returns the AES-CBC [FieldCodec].
func NewFieldCodec() FieldCodec {
	return cbcCodec{}
}

// Encrypt implements [FieldCodec]. The output is always a whole number of
// blocks and at least one block long.
func (cbcCodec) Encrypt(plaintext string, key, iv []byte) ([]byte, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}

	padded := pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	return out, nil
}

// Decrypt implements [FieldCodec].
func (cbcCodec) Decrypt(ciphertext, key, iv []byte) (string, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return "", err
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d", ErrDecodeFailure, len(ciphertext))
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	plain, ok := unpad(plain, aes.BlockSize)
	if !ok {
		return "", fmt.Errorf("%w: bad padding", ErrDecodeFailure)
	}
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: plaintext is not utf-8", ErrDecodeFailure)
	}

	return string(plain), nil
}

func newBlock(key, iv []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrInvalidKeyMaterial, KeySize, len(key))
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: iv must be %d bytes, got %d", ErrInvalidKeyMaterial, IVSize, len(iv))
	}

	return aes.NewCipher(key)
}

func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

// unpad checks every padding byte, not only the last one.
func unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 {
		return nil, false
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, false
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, false
		}
	}

	return data[:len(data)-n], true
}
