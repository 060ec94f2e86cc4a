package http

import (
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/service"
)

// Handler serves the daemon API over one set of services. The session of an
// authenticated request is resolved with sessionFromRequest.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Str("func", "NewHandler").Msg("daemon API handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
