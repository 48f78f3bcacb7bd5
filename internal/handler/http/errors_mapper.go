// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/internal/validators"
	"github.com/MKhiriev/go-auth-service/models"
)

const (
	msgRegistrationNotAllowed = "registration is not allowed for the provided data"
	msgAuthenticationFailed   = "authentication failed"
	msgInternalError          = "internal server error"
)

var errorStatusMap = map[error]int{
	validators.ErrInvalidInput:    http.StatusBadRequest,
	validators.ErrBlockedDomain:   http.StatusBadRequest,
	validators.ErrBlockedUsername: http.StatusBadRequest,
	service.ErrDuplicateEmail:     http.StatusBadRequest,
	service.ErrDuplicateUsername:  http.StatusBadRequest,

	service.ErrUnauthorized: http.StatusUnauthorized,

	ErrRouteNotFound: http.StatusNotFound,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

// errorMessage pairs an error with the text shown to clients. The first
// match wins, so specific errors precede the sentinels they wrap.
type errorMessage struct {
	target  error
	message string
}

var errorMessages = []errorMessage{
	{target: validators.ErrMissingAt},
	{target: validators.ErrInvalidEmail},
	{target: validators.ErrEmptyUsername},
	{target: validators.ErrInvalidUsernameLen},
	{target: validators.ErrEmptyPassword},
	{target: validators.ErrPasswordTooShort},
	{target: validators.ErrPasswordTooLong},
	{target: validators.ErrEmptyRefreshToken},
	{target: ErrInvalidJSON},
	{target: validators.ErrInvalidInput},

	{target: validators.ErrBlockedDomain, message: msgRegistrationNotAllowed},
	{target: validators.ErrBlockedUsername, message: msgRegistrationNotAllowed},
	{target: service.ErrDuplicateEmail},
	{target: service.ErrDuplicateUsername},

	{target: service.ErrInvalidCredentials, message: "invalid email or password"},
	{target: service.ErrUnauthorized, message: msgAuthenticationFailed},

	{target: ErrRouteNotFound},
	{target: context.DeadlineExceeded, message: "request timed out"},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing message for err. Internal
// errors never leak their text.
func messageFromError(err error) string {
	for _, m := range errorMessages {
		if !errors.Is(err, m.target) {
			continue
		}
		if m.message != "" {
			return m.message
		}
		return m.target.Error()
	}
	return msgInternalError
}

// writeError logs err with the request logger and writes the JSON error
// envelope.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{
		Status:    status,
		Error:     http.StatusText(status),
		Message:   messageFromError(err),
		Timestamp: h.now().UTC().Format(time.RFC3339),
	}, status)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrRouteNotFound)
}
