package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/session"
	"github.com/MKhiriev/go-recipe-book/internal/utils"
)

// withSession resolves the session cookie. A valid cookie puts the session id
// into the context; if the store still knows it, the user id follows.
// Requests without a live session pass through anonymous.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := h.cookies.read(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.WithSessionID(r.Context(), sessionID)

		userID, err := h.sessions.Get(ctx, sessionID)
		switch {
		case err == nil:
			ctx = utils.WithUserID(ctx, userID)
		case errors.Is(err, session.ErrSessionNotFound):
			logger.FromRequest(r).Debug().Msg("unknown session")
		default:
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
