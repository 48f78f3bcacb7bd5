// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-auth-service/internal/crypto"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/validators"
)

func TestStatusAndMessageFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "wrapped input error keeps its message",
			err:         fmt.Errorf("register request validation failed: %w", validators.ErrMissingAt),
			wantStatus:  http.StatusBadRequest,
			wantMessage: validators.ErrMissingAt.Error(),
		},
		{
			name:        "bare invalid input",
			err:         validators.ErrInvalidInput,
			wantStatus:  http.StatusBadRequest,
			wantMessage: validators.ErrInvalidInput.Error(),
		},
		{
			name:        "blocked inputs share one message",
			err:         fmt.Errorf("registration rejected: %w", validators.ErrBlockedUsername),
			wantStatus:  http.StatusBadRequest,
			wantMessage: msgRegistrationNotAllowed,
		},
		{
			name:        "token error hides cause",
			err:         fmt.Errorf("%w: %w", service.ErrUnauthorized, crypto.ErrTokenInvalid),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: msgAuthenticationFailed,
		},
		{
			name:        "missing header",
			err:         ErrEmptyAuthorizationHeader,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: msgAuthenticationFailed,
		},
		{
			name:        "store error is internal",
			err:         fmt.Errorf("user lookup failed: %w", store.ErrExecutingQuery),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: msgInternalError,
		},
		{
			name:        "unknown",
			err:         errors.New("something"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: msgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
			assert.Equal(t, tt.wantMessage, messageFromError(tt.err))
		})
	}
}
