// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-recipe-book/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
//
// Every request gets a trace id, an access log line, optional gzip, the
// configured timeout and session resolution. Recipe routes and
// /check_session need a live user, /logout needs a stored session.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withSession)

	router.Get("/version", h.version)

	router.Post("/signup", h.signup)
	router.Post("/login", h.login)
	router.With(h.requireSession(app.MsgNotLoggedIn)).Delete("/logout", h.logout)
	router.With(h.requireUser(app.MsgNotLoggedIn)).Get("/check_session", h.checkSession)

	recipes := router.With(h.requireUser(app.MsgUnauthorized))
	recipes.Get("/recipes", h.listRecipes)
	recipes.Post("/recipes", h.createRecipe)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
