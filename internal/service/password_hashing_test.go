package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	secret1SHA512       = "f42de9fe905b0376af70106ee8354e988c7013afd0de095dcaccf68cadab61ac4066293f0991cd325b9ab3c6a75c7878e658e904dff6b6d085719511f7c752db"
	secret1DeviceSalted = "338cff2b094866aee7128cd8c35ab63c6378d9def62021bcda63c48551cc117c795ac8d941cae01f74ac88b64db9654d9994edac14725a1b041c183cf7e3ea83"
)

func TestHashMasterPassword_LegacyIgnoresDevice(t *testing.T) {
	a, err := HashMasterPassword(HashingSHA512, "Secret1", "device-1")
	require.NoError(t, err)
	b, err := HashMasterPassword(HashingSHA512, "Secret1", "device-2")
	require.NoError(t, err)

	assert.Equal(t, secret1SHA512, a)
	assert.Equal(t, a, b, "legacy records digest the bare password")
}

func TestHashMasterPassword_DeviceSalted(t *testing.T) {
	got, err := HashMasterPassword(HashingSHA512DeviceSalted, "Secret1", "device-1")
	require.NoError(t, err)
	assert.Equal(t, secret1DeviceSalted, got)

	other, err := HashMasterPassword(HashingSHA512DeviceSalted, "Secret1", "device-2")
	require.NoError(t, err)
	assert.NotEqual(t, got, other)
}

func TestHashMasterPassword_Unsupported(t *testing.T) {
	_, err := HashMasterPassword("MD5", "Secret1", "")
	assert.ErrorIs(t, err, ErrUnsupportedHashing)
}

func TestCurrentHashingAlgorithm(t *testing.T) {
	assert.Equal(t, HashingSHA512, CurrentHashingAlgorithm(false))
	assert.Equal(t, HashingSHA512DeviceSalted, CurrentHashingAlgorithm(true))
	assert.Equal(t, HashingSHA512, DefaultHashingAlgorithm)
}

func TestHashesEqual(t *testing.T) {
	assert.True(t, hashesEqual("abc", "abc"))
	assert.False(t, hashesEqual("abc", "abd"))
	assert.False(t, hashesEqual("abc", "ab"))
}
