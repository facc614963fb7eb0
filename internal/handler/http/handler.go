package http

import (
	"time"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/internal/session"
)

// Settings configures the transport.
type Settings struct {
	Cookie CookieSettings

	// RequestTimeout bounds every request. Zero disables the limit.
	RequestTimeout time.Duration
}

type Handler struct {
	services *service.Services
	sessions session.Store
	cookies  *sessionCookies

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions session.Store, settings Settings, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessions,
		cookies:        newSessionCookies(settings.Cookie),
		requestTimeout: settings.RequestTimeout,
		logger:         logger,
	}
}
