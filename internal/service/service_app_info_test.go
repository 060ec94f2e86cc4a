package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/models"
)

func TestNewAppInfoService_Success(t *testing.T) {
	cfg := config.App{Version: "1.0.0"}

	svc, err := NewAppInfoService(cfg, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestGetAppVersion_ConfigWinsOverBuild(t *testing.T) {
	build := models.NewAppBuildInfo("0.9.0", "2026-01-01", "abc123")
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, build, logger.Nop())
	require.NoError(t, err)

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, models.VersionResponse{Version: "3.1.4", Date: "2026-01-01", Commit: "abc123"}, got)
}

func TestGetAppVersion_FallsBackToBuild(t *testing.T) {
	build := models.NewAppBuildInfo("0.9.0", "N/A", "N/A")
	svc, err := NewAppInfoService(config.App{}, build, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "0.9.0", svc.GetAppVersion(context.Background()).Version)
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx).Version)
}
