package server

import (
	"context"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/handler"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoHTTPHandler
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	s.logger.Info().Msg("Launching HTTP server")
	if err := s.httpServer.RunServer(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
