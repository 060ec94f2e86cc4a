package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/mock/storemock"
	"github.com/MKhiriev/go-secret-notes/internal/validators"
	"github.com/MKhiriev/go-secret-notes/models"
)

func TestMasterPassword_StateTransitions(t *testing.T) {
	ctx := context.Background()
	svc := NewMasterPasswordService(memoryPrefs(t), config.App{}, logger.Nop())

	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.NoPasswordSet, state)

	require.NoError(t, svc.Set(ctx, "Secret1"))

	state, err = svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PasswordSet, state)

	assert.ErrorIs(t, svc.Set(ctx, "Secret2"), ErrPasswordAlreadySet)
}

func TestMasterPassword_SetRejectsWeakPassword(t *testing.T) {
	svc := NewMasterPasswordService(memoryPrefs(t), config.App{}, logger.Nop())

	err := svc.Set(context.Background(), "secret1")

	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, models.NoUppercase, vErr.Result)
}

func TestMasterPassword_SetWritesBothKeysAtOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	prefs := storemock.NewMockPreferenceStore(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		prefs.EXPECT().Get(ctx, PrefPassword).Return("", false, nil),
		prefs.EXPECT().Get(ctx, PrefHashingMethod).Return("", false, nil),
		prefs.EXPECT().Put(ctx, map[string]string{
			PrefPassword:      secret1SHA512,
			PrefHashingMethod: HashingSHA512,
		}).Return(nil),
	)

	svc := NewMasterPasswordService(prefs, config.App{}, logger.Nop())
	require.NoError(t, svc.Set(ctx, "Secret1"))
}

func TestMasterPassword_SetStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	prefs := storemock.NewMockPreferenceStore(ctrl)
	ctx := context.Background()

	prefs.EXPECT().Get(ctx, gomock.Any()).Return("", false, nil).Times(2)
	prefs.EXPECT().Put(ctx, gomock.Any()).Return(errors.New("disk full"))

	svc := NewMasterPasswordService(prefs, config.App{}, logger.Nop())
	assert.Error(t, svc.Set(ctx, "Secret1"))
}

func TestMasterPassword_Check(t *testing.T) {
	ctx := context.Background()
	svc := passwordServiceWith(t, memoryPrefs(t), config.App{}, "Secret1")

	ok, err := svc.Check(ctx, "Secret1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Check(ctx, "Secret2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMasterPassword_CheckNotSet(t *testing.T) {
	svc := NewMasterPasswordService(memoryPrefs(t), config.App{}, logger.Nop())

	_, err := svc.Check(context.Background(), "Secret1")
	assert.ErrorIs(t, err, ErrPasswordNotSet)
}

func TestMasterPassword_CheckAlgorithmMismatch(t *testing.T) {
	ctx := context.Background()
	prefs := memoryPrefs(t)
	require.NoError(t, prefs.Put(ctx, map[string]string{
		PrefPassword:      "deadbeef",
		PrefHashingMethod: "SHA-256",
	}))

	svc := NewMasterPasswordService(prefs, config.App{}, logger.Nop())
	_, err := svc.Check(ctx, "Secret1")
	assert.ErrorIs(t, err, ErrAlgorithmMismatch)
}

func TestMasterPassword_SaltedRecordUnderLegacyIsMismatch(t *testing.T) {
	ctx := context.Background()
	prefs := memoryPrefs(t)
	passwordServiceWith(t, prefs, config.App{SaltedPasswordHash: true, DeviceID: "device-1"}, "Secret1")

	legacy := NewMasterPasswordService(prefs, config.App{}, logger.Nop())
	_, err := legacy.Check(ctx, "Secret1")
	assert.ErrorIs(t, err, ErrAlgorithmMismatch)
}

func TestMasterPassword_LegacyRecordMigratesOnSuccess(t *testing.T) {
	ctx := context.Background()
	prefs := memoryPrefs(t)
	passwordServiceWith(t, prefs, config.App{}, "Secret1")

	salted := NewMasterPasswordService(prefs, config.App{SaltedPasswordHash: true, DeviceID: "device-1"}, logger.Nop())

	ok, err := salted.Check(ctx, "Wrong12A")
	require.NoError(t, err)
	assert.False(t, ok)

	method, _, err := prefs.Get(ctx, PrefHashingMethod)
	require.NoError(t, err)
	assert.Equal(t, HashingSHA512, method, "failed login must not migrate")

	ok, err = salted.Check(ctx, "Secret1")
	require.NoError(t, err)
	assert.True(t, ok)

	mp, err := salted.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, HashingSHA512DeviceSalted, mp.HashingAlgorithm)
	require.NotNil(t, mp.HashedPassword)
	assert.Equal(t, secret1DeviceSalted, *mp.HashedPassword)

	ok, err = salted.Check(ctx, "Secret1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMasterPassword_DeviceIDPersisted(t *testing.T) {
	ctx := context.Background()
	prefs := memoryPrefs(t)

	first := NewMasterPasswordService(prefs, config.App{}, logger.Nop())
	id, err := first.DeviceID(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	second := NewMasterPasswordService(prefs, config.App{}, logger.Nop())
	again, err := second.DeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestMasterPassword_DeviceIDFromConfig(t *testing.T) {
	svc := NewMasterPasswordService(memoryPrefs(t), config.App{DeviceID: "fixed"}, logger.Nop())

	id, err := svc.DeviceID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fixed", id)
}

func TestMasterPassword_LoadDefaultsAlgorithm(t *testing.T) {
	ctx := context.Background()
	prefs := memoryPrefs(t)
	require.NoError(t, prefs.Put(ctx, map[string]string{PrefPassword: secret1SHA512}))

	svc := NewMasterPasswordService(prefs, config.App{}, logger.Nop())
	mp, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, HashingSHA512, mp.HashingAlgorithm)

	ok, err := svc.Check(ctx, "Secret1")
	require.NoError(t, err)
	assert.True(t, ok)
}
