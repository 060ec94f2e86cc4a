// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strconv"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// AlgorithmPBKDF2SHA1 is the default derivation algorithm. Notes written
	// by earlier versions of the app use it.
	AlgorithmPBKDF2SHA1   = "PBKDF2WithHmacSHA1"
	AlgorithmPBKDF2SHA256 = "PBKDF2WithHmacSHA256"
	AlgorithmPBKDF2SHA512 = "PBKDF2WithHmacSHA512"

	// DefaultIterations is the PBKDF2 iteration count used for every note.
	DefaultIterations = 10000
)

var prfByAlgorithm = map[string]func() hash.Hash{
	AlgorithmPBKDF2SHA1:   sha1.New,
	AlgorithmPBKDF2SHA256: sha256.New,
	AlgorithmPBKDF2SHA512: sha512.New,
}

// pbkdf2Deriver is the PBKDF2 implementation of [KeyDeriver].
type pbkdf2Deriver struct {
	prf        func() hash.Hash
	iterations int
}

// NewKeyDeriver returns a PBKDF2 [KeyDeriver] for the named algorithm.
// An empty algorithm selects AlgorithmPBKDF2SHA1 and a non-positive
// iteration count selects DefaultIterations.
//
// Returns ErrUnsupportedAlgorithm for unknown algorithm names.
func NewKeyDeriver(algorithm string, iterations int) (KeyDeriver, error) {
	if algorithm == "" {
		algorithm = AlgorithmPBKDF2SHA1
	}
	prf, ok := prfByAlgorithm[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	return &pbkdf2Deriver{prf: prf, iterations: iterations}, nil
}

// DescribeKDF names the derivation NewKeyDeriver builds for algorithm and
// iterations, defaults applied. Notes only open under the descriptor they
// were written with since the blob does not record it.
func DescribeKDF(algorithm string, iterations int) string {
	if algorithm == "" {
		algorithm = AlgorithmPBKDF2SHA1
	}
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return algorithm + ":" + strconv.Itoa(iterations)
}

// DeriveKey implements [KeyDeriver].
func (d *pbkdf2Deriver) DeriveKey(password string, salt []byte) ([]byte, error) {
	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: empty salt", ErrInvalidKeyMaterial)
	}

	return pbkdf2.Key([]byte(password), salt, d.iterations, KeySize, d.prf), nil
}
