package handler

import (
	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/handler/http"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers from the merged configuration.
func NewHandlers(services *service.Services, sessions session.Store, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	settings := http.Settings{
		Cookie: http.CookieSettings{
			Name:   cfg.Server.CookieName,
			Secret: []byte(cfg.App.SessionSecret),
			Secure: cfg.Server.CookieSecure,
			MaxAge: cfg.Storage.Sessions.TTL,
		},
		RequestTimeout: cfg.Server.RequestTimeout,
	}

	return &Handlers{
		HTTP: http.NewHandler(services, sessions, settings, logger),
	}, nil
}
