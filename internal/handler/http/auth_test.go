// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/validators"
	"github.com/MKhiriev/go-auth-service/models"
)

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success_BothPrefixes(t *testing.T) {
	var got models.RegisterRequest
	auth := &mockAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
			got = req
			return sampleAuthResponse(), nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	for _, path := range []string{"/auth/register", "/api/auth/register"} {
		t.Run(path, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, path, `{"email":"new@example.com","password":"password1"}`, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var resp models.AuthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, sampleAuthResponse(), resp)
			assert.Equal(t, "new@example.com", got.Email)
			assert.Empty(t, got.Username)
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	rec := do(t, h, http.MethodPost, "/auth/register", `{not json`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "Bad Request", resp.Error)
	assert.Equal(t, ErrInvalidJSON.Error(), resp.Message)
	assert.Equal(t, "2026-05-06T07:08:09Z", resp.Timestamp)
}

func TestRegister_EmptyBody(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	rec := do(t, h, http.MethodPost, "/auth/register", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "blocked domain",
			err:         validators.ErrBlockedDomain,
			wantStatus:  http.StatusBadRequest,
			wantMessage: msgRegistrationNotAllowed,
		},
		{
			name:        "blocked username",
			err:         validators.ErrBlockedUsername,
			wantStatus:  http.StatusBadRequest,
			wantMessage: msgRegistrationNotAllowed,
		},
		{
			name:        "duplicate email",
			err:         service.ErrDuplicateEmail,
			wantStatus:  http.StatusBadRequest,
			wantMessage: service.ErrDuplicateEmail.Error(),
		},
		{
			name:        "duplicate username",
			err:         service.ErrDuplicateUsername,
			wantStatus:  http.StatusBadRequest,
			wantMessage: service.ErrDuplicateUsername.Error(),
		},
		{
			name:        "short password",
			err:         validators.ErrPasswordTooShort,
			wantStatus:  http.StatusBadRequest,
			wantMessage: validators.ErrPasswordTooShort.Error(),
		},
		{
			name:        "internal",
			err:         errors.New("pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerFn: func(context.Context, models.RegisterRequest) (models.AuthResponse, error) {
					return models.AuthResponse{}, tt.err
				},
			}
			h := newHandlerWithAuth(t, auth)

			rec := do(t, h, http.MethodPost, "/auth/register", `{"email":"a@example.com","password":"password1"}`, nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.AuthResponse, error) {
			assert.Equal(t, "new@example.com", req.Email)
			assert.Equal(t, "password1", req.Password)
			return sampleAuthResponse(), nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	rec := do(t, h, http.MethodPost, "/api/auth/login", `{"email":"new@example.com","password":"password1"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accessToken":"access"`)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(context.Context, models.LoginRequest) (models.AuthResponse, error) {
			return models.AuthResponse{}, service.ErrInvalidCredentials
		},
	}
	h := newHandlerWithAuth(t, auth)

	rec := do(t, h, http.MethodPost, "/auth/login", `{"email":"x@example.com","password":"password1"}`, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Unauthorized", resp.Error)
	assert.Equal(t, "invalid email or password", resp.Message)
}

// ─────────────────────────────────────────────
// refresh
// ─────────────────────────────────────────────

func TestRefresh_PassesTokenFromBody(t *testing.T) {
	auth := &mockAuthService{
		refreshFn: func(_ context.Context, token string) (models.AuthResponse, error) {
			assert.Equal(t, "refresh-token", token)
			return sampleAuthResponse(), nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	rec := do(t, h, http.MethodPost, "/auth/refresh", `{"refreshToken":"refresh-token"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRefresh_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "blank", err: validators.ErrEmptyRefreshToken, wantStatus: http.StatusBadRequest, wantMessage: validators.ErrEmptyRefreshToken.Error()},
		{name: "expired", err: service.ErrTokenExpired, wantStatus: http.StatusUnauthorized, wantMessage: msgAuthenticationFailed},
		{name: "unreadable", err: service.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantMessage: msgAuthenticationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				refreshFn: func(context.Context, string) (models.AuthResponse, error) {
					return models.AuthResponse{}, tt.err
				},
			}
			h := newHandlerWithAuth(t, auth)

			rec := do(t, h, http.MethodPost, "/auth/refresh", `{"refreshToken":""}`, nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rec).Message)
		})
	}
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_Anonymous(t *testing.T) {
	var gotEmail = "unset"
	auth := &mockAuthService{
		logoutFn: func(_ context.Context, email string) error {
			gotEmail = email
			return nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	rec := do(t, h, http.MethodPost, "/auth/logout", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "", gotEmail)
}

func TestLogout_InvalidTokenStillSucceeds(t *testing.T) {
	auth := &mockAuthService{
		currentUserFn: func(context.Context, string) (models.CurrentUser, error) {
			return models.CurrentUser{}, service.ErrTokenExpired
		},
		logoutFn: func(_ context.Context, email string) error {
			assert.Empty(t, email)
			return nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	rec := do(t, h, http.MethodPost, "/api/auth/logout", "", bearer("stale"))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogout_Authenticated(t *testing.T) {
	var gotEmail string
	auth := &mockAuthService{
		currentUserFn: func(_ context.Context, token string) (models.CurrentUser, error) {
			return models.CurrentUser{ID: 1, Email: "new@example.com", Authenticated: true}, nil
		},
		logoutFn: func(_ context.Context, email string) error {
			gotEmail = email
			return nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	rec := do(t, h, http.MethodPost, "/auth/logout", "", bearer("good"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "new@example.com", gotEmail)
}

// ─────────────────────────────────────────────
// me
// ─────────────────────────────────────────────

func TestMe_Success(t *testing.T) {
	want := models.CurrentUser{ID: 1, Email: "new@example.com", Username: "new", DifficultyLevel: "beginner", Authenticated: true}
	auth := &mockAuthService{
		currentUserFn: func(_ context.Context, token string) (models.CurrentUser, error) {
			assert.Equal(t, "good", token)
			return want, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	rec := do(t, h, http.MethodGet, "/auth/me", "", bearer("good"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"email":"new@example.com","username":"new","difficultyLevel":"beginner","authenticated":true}`, rec.Body.String())
}

func TestMe_MissingHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	rec := do(t, h, http.MethodGet, "/api/auth/me", "", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, msgAuthenticationFailed, decodeError(t, rec).Message)
}

func TestMe_MalformedHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	rec := do(t, h, http.MethodGet, "/auth/me", "", http.Header{"Authorization": []string{"Basic abc"}})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_StoreOutageIs500(t *testing.T) {
	auth := &mockAuthService{
		currentUserFn: func(context.Context, string) (models.CurrentUser, error) {
			return models.CurrentUser{}, errors.New("db is down")
		},
	}
	h := newHandlerWithAuth(t, auth)

	rec := do(t, h, http.MethodGet, "/auth/me", "", bearer("good"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgInternalError, decodeError(t, rec).Message)
}
