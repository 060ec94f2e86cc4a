package service

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

const (
	// HashingSHA512 is the historical algorithm name. Records written under
	// it digest the bare password.
	HashingSHA512 = "SHA-512"

	// HashingSHA512DeviceSalted digests password ++ pepper ++ device ID.
	HashingSHA512DeviceSalted = "SHA-512/device-salted"

	// DefaultHashingAlgorithm is assumed when no algorithm is stored.
	DefaultHashingAlgorithm = HashingSHA512

	passwordPepper = "jcubed1234"
)

type sha512Hasher struct {
	algorithm string
	salted    bool
}

// NewPasswordHasher returns the hasher registered under algorithm.
func NewPasswordHasher(algorithm string) (PasswordHasher, error) {
	switch algorithm {
	case HashingSHA512:
		return sha512Hasher{algorithm: HashingSHA512}, nil
	case HashingSHA512DeviceSalted:
		return sha512Hasher{algorithm: HashingSHA512DeviceSalted, salted: true}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHashing, algorithm)
	}
}

// CurrentHashingAlgorithm picks the algorithm new records are written with.
func CurrentHashingAlgorithm(salted bool) string {
	if salted {
		return HashingSHA512DeviceSalted
	}
	return HashingSHA512
}

func (h sha512Hasher) Algorithm() string {
	return h.algorithm
}

func (h sha512Hasher) Hash(password, deviceID string) string {
	input := password
	if h.salted {
		input = password + passwordPepper + deviceID
	}
	sum := sha512.Sum512([]byte(input))
	return hex.EncodeToString(sum[:])
}

// HashMasterPassword hashes password with algorithm.
func HashMasterPassword(algorithm, password, deviceID string) (string, error) {
	h, err := NewPasswordHasher(algorithm)
	if err != nil {
		return "", err
	}
	return h.Hash(password, deviceID), nil
}

func hashesEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
