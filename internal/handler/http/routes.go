// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	healthPath   = "/health"
	authPrefix   = "/api/v1/auth"
	usersPrefix  = "/api/v1/users"
	registerPath = "/register"
	loginPath    = "/login"
	refreshPath  = "/refresh"
	mePath       = "/me"
	logoutPath   = "/logout"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get(healthPath, h.health)

	router.Route(authPrefix, func(r chi.Router) {
		// routes without authorization
		r.Post(registerPath, h.register)
		r.Post(loginPath, h.login)
		r.Post(refreshPath, h.refresh)
		r.Post(logoutPath, h.logout)

		r.With(h.auth).Get(mePath, h.me)
	})

	router.Route(usersPrefix, func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Get("/{userID}", h.getUser)
		r.Patch("/{userID}", h.updateUser)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
