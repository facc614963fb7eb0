package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/internal/session"
	"github.com/MKhiriev/go-recipe-book/internal/utils"
	"github.com/MKhiriev/go-recipe-book/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Signup(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.startSession(w, r, user.ID); err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.ID).Msg("user signed up")
	h.writeJSON(w, r, newUserView(user), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("malformed login body")
		h.writeError(w, r, service.ErrInvalidCredentials)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.startSession(w, r, user.ID); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, newUserView(user), http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := utils.GetSessionIDFromContext(r.Context())

	if err := h.sessions.Clear(r.Context(), sessionID); err != nil {
		h.writeError(w, r, fmt.Errorf("error clearing session: %w", err))
		return
	}

	h.cookies.expire(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkSession(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())
	h.writeJSON(w, r, newUserView(user), http.StatusOK)
}

// startSession drops the session the client came with, if any, and binds a
// fresh one to userID.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, userID int64) error {
	ctx := r.Context()

	if previous, ok := utils.GetSessionIDFromContext(ctx); ok {
		if err := h.sessions.Clear(ctx, previous); err != nil {
			return fmt.Errorf("error clearing previous session: %w", err)
		}
	}

	sessionID := session.NewID()
	if err := h.sessions.Set(ctx, sessionID, userID); err != nil {
		return fmt.Errorf("error storing session: %w", err)
	}

	if err := h.cookies.write(w, sessionID); err != nil {
		return fmt.Errorf("error encoding session cookie: %w", err)
	}

	return nil
}
