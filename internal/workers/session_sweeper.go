package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
)

// SessionSweeper periodically purges expired in-memory sessions.
type SessionSweeper struct {
	sessions Sweeper
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionSweeper(sessions Sweeper, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

func (s *SessionSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			if removed := s.sessions.Sweep(ctx); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired sessions swept")
			}
		}
	}
}
