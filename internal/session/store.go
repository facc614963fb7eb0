package session

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// NewStore builds the backend selected in cfg.
func NewStore(ctx context.Context, cfg config.Sessions, log *logger.Logger) (Store, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating session store...")

	switch cfg.Backend {
	case BackendMemory, "":
		return NewMemoryStore(cfg.TTL), nil
	case BackendRedis:
		return NewRedisStore(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
