// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// authPrefixes are the mount points of the auth routes. Both are served so
// clients of either path keep working.
var authPrefixes = []string{"/auth", "/api/auth"}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		for _, prefix := range authPrefixes {
			r.Post(prefix+"/register", h.register)
			r.Post(prefix+"/login", h.login)
			r.Post(prefix+"/refresh", h.refresh)
		}

		r.Get("/api/version", h.getServerVersion)
		r.Get("/healthz", h.healthz)
		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics)
		}
	})

	// logout works with and without a valid token
	router.Group(func(r chi.Router) {
		r.Use(h.optionalAuth)
		for _, prefix := range authPrefixes {
			r.Post(prefix+"/logout", h.logout)
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		for _, prefix := range authPrefixes {
			r.Get(prefix+"/me", h.me)
		}
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}
