package service

import (
	"cmp"
	"context"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/models"
)

type appInfoService struct {
	version models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version when set, otherwise the build
// version. The build date and commit are reported as given.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cmp.Or(cfg.Version, build.BuildVersion())
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version: models.VersionResponse{
			Version: version,
			Date:    build.BuildDate(),
			Commit:  build.BuildCommit(),
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return s.version
}
