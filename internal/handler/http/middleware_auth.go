package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/internal/utils"
)

// requireSession rejects requests whose session is not in the store.
func (h *Handler) requireSession(message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
				h.writeUnauthenticated(w, r, message)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requireUser additionally loads the session's user. A session pointing at a
// user that no longer exists is rejected like a missing one.
func (h *Handler) requireUser(message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID, ok := utils.GetUserIDFromContext(ctx)
			if !ok {
				h.writeUnauthenticated(w, r, message)
				return
			}

			user, err := h.services.AuthService.UserByID(ctx, userID)
			if errors.Is(err, store.ErrNoUserWasFound) {
				h.writeUnauthenticated(w, r, message)
				return
			}
			if err != nil {
				h.writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
		})
	}
}
