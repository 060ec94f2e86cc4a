package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
)

type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration

	// addr holds the bound listener address once serving started.
	addr atomic.Pointer[string]

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: cfg.RequestTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

func (h *httpServer) RunServer(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", h.server.Addr, err)
	}
	addr := ln.Addr().String()
	h.addr.Store(&addr)

	h.logger.Info().Str("address", addr).Msg("HTTP server listening")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- h.server.Serve(ln)
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server Serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	h.logger.Info().Msg("HTTP server Shutdown")
	if err = h.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	return nil
}

// Addr returns the bound address, or "" before the listener is open.
func (h *httpServer) Addr() string {
	if p := h.addr.Load(); p != nil {
		return *p
	}
	return ""
}
