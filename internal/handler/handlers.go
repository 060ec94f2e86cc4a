package handler

import (
	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/handler/http"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/service"
)

// Handlers groups the transport handlers of the daemon.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
