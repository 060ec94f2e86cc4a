package crypto

import (
	"bytes"
	stdpbkdf2 "crypto/pbkdf2"
	"crypto/sha1"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyDeriver_Defaults(t *testing.T) {
	d, err := NewKeyDeriver("", 0)
	require.NoError(t, err)

	impl, ok := d.(*pbkdf2Deriver)
	require.True(t, ok)
	assert.Equal(t, DefaultIterations, impl.iterations)
}

func TestNewKeyDeriver_UnsupportedAlgorithm(t *testing.T) {
	_, err := NewKeyDeriver("PBKDF2WithHmacMD5", 10)
	require.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestDescribeKDF(t *testing.T) {
	assert.Equal(t, "PBKDF2WithHmacSHA1:10000", DescribeKDF("", 0))
	assert.Equal(t, DescribeKDF("", 0), DescribeKDF(AlgorithmPBKDF2SHA1, DefaultIterations))
	assert.Equal(t, "PBKDF2WithHmacSHA512:1", DescribeKDF(AlgorithmPBKDF2SHA512, 1))
	assert.NotEqual(t, DescribeKDF("", 1), DescribeKDF("", 2))
}

func TestDeriveKey_MatchesStdlibPBKDF2(t *testing.T) {
	salt := bytes.Repeat([]byte{0x5A}, SaltSize)

	d, err := NewKeyDeriver(AlgorithmPBKDF2SHA1, DefaultIterations)
	require.NoError(t, err)

	got, err := d.DeriveKey("Secret1", salt)
	require.NoError(t, err)

	want, err := stdpbkdf2.Key(sha1.New, "Secret1", salt, DefaultIterations, KeySize)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDeriveKey_DeterministicAndSaltSensitive(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
	}{
		{name: "sha1", algorithm: AlgorithmPBKDF2SHA1},
		{name: "sha256", algorithm: AlgorithmPBKDF2SHA256},
		{name: "sha512", algorithm: AlgorithmPBKDF2SHA512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewKeyDeriver(tt.algorithm, 100)
			require.NoError(t, err)

			saltA := bytes.Repeat([]byte{0x01}, SaltSize)
			saltB := bytes.Repeat([]byte{0x02}, SaltSize)

			k1, err := d.DeriveKey("Secret1", saltA)
			require.NoError(t, err)
			k2, err := d.DeriveKey("Secret1", saltA)
			require.NoError(t, err)
			k3, err := d.DeriveKey("Secret1", saltB)
			require.NoError(t, err)

			assert.Len(t, k1, KeySize)
			assert.Equal(t, k1, k2)
			assert.NotEqual(t, k1, k3)
		})
	}
}

func TestDeriveKey_EmptySalt(t *testing.T) {
	d, err := NewKeyDeriver(AlgorithmPBKDF2SHA1, 1)
	require.NoError(t, err)

	_, err = d.DeriveKey("Secret1", nil)
	require.ErrorIs(t, err, ErrInvalidKeyMaterial)
}
