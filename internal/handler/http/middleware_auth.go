// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/utils"
)

// auth is an HTTP middleware that enforces bearer authentication.
//
// It extracts the token from the "Authorization" header, resolves it with
// [service.AuthService.CurrentUser] and stores the user and the raw token in
// the request context before delegating to the next handler. Any failure is
// answered with 401 and the generic "authentication failed" message.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := h.authenticate(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("request is not authenticated")
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth behaves like auth when a valid token is present and lets the
// request through anonymously otherwise.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := h.authenticate(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("continuing anonymously")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticate returns the request context enriched with the current user.
// Every returned error is of the service.ErrUnauthorized class, except
// store outages which keep their own class.
func (h *Handler) authenticate(r *http.Request) (context.Context, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, ErrEmptyAuthorizationHeader
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrUnauthorized, err)
	}

	ctx := r.Context()
	user, err := h.services.AuthService.CurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}

	ctx = utils.WithCurrentUser(ctx, user)
	ctx = utils.WithAccessToken(ctx, token)

	return ctx, nil
}
