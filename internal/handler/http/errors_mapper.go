package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-recipe-book/internal/app"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/internal/validators"
)

var errMalformedBody = errors.New("malformed request body")

// errorView is the body of authentication and server failures.
type errorView struct {
	Error string `json:"error"`
}

// validationErrorView is the body of rejected input.
type validationErrorView struct {
	Errors string `json:"errors"`
}

// mapError converts err into a status code and a response body.
// Anything unrecognised becomes 500 without leaking the cause.
func mapError(err error) (int, any) {
	var fieldErr *validators.FieldError

	switch {
	case errors.As(err, &fieldErr):
		return http.StatusUnprocessableEntity, validationErrorView{Errors: fieldErr.Message}
	case errors.Is(err, errMalformedBody):
		return http.StatusUnprocessableEntity, validationErrorView{Errors: app.MsgInvalidJSON}
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return http.StatusUnprocessableEntity, validationErrorView{Errors: app.MsgUsernameTaken}
	case errors.Is(err, store.ErrConstraintViolation):
		return http.StatusUnprocessableEntity, validationErrorView{Errors: app.MsgInvalidData}
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorView{Error: app.MsgInvalidCredentials}
	case errors.Is(err, store.ErrOwnerNotFound), errors.Is(err, store.ErrNoUserWasFound):
		return http.StatusUnauthorized, errorView{Error: app.MsgUnauthorized}
	default:
		return http.StatusInternalServerError, errorView{Error: app.MsgInternalServerError}
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := mapError(err)

	log := logger.FromRequest(r)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	h.writeJSON(w, r, body, status)
}

func (h *Handler) writeUnauthenticated(w http.ResponseWriter, r *http.Request, message string) {
	h.writeJSON(w, r, errorView{Error: message}, http.StatusUnauthorized)
}
