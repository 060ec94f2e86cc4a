package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/service"
)

// SessionSweeper invalidates daemon sessions that stayed idle longer than
// the configured timeout.
type SessionSweeper struct {
	sessions *service.SessionManager
	idle     time.Duration
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionSweeper(sessions *service.SessionManager, app config.App, cfg config.Workers, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		idle:     app.SessionIdleTimeout,
		interval: cfg.SessionSweepInterval,
		logger:   logger,
	}
}

func (s *SessionSweeper) Run(ctx context.Context) error {
	if s.interval <= 0 || s.idle <= 0 {
		s.logger.Info().Str("func", "*SessionSweeper.Run").Msg("session sweeping disabled")
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.sessions.Sweep(s.idle); n > 0 {
				s.logger.Info().Str("func", "*SessionSweeper.Run").Int("count", n).Msg("idle sessions invalidated")
			}
		}
	}
}
