// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case; a nil field panics so
// unexpected calls surface immediately.
type mockAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	refreshFn     func(ctx context.Context, token string) (models.AuthResponse, error)
	logoutFn      func(ctx context.Context, email string) error
	currentUserFn func(ctx context.Context, token string) (models.CurrentUser, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) RefreshToken(ctx context.Context, token string) (models.AuthResponse, error) {
	return m.refreshFn(ctx, token)
}

func (m *mockAuthService) Logout(ctx context.Context, email string) error {
	return m.logoutFn(ctx, email)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, token string) (models.CurrentUser, error) {
	return m.currentUserFn(ctx, token)
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
	build   models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return m.build
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testNow = time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

// newHandlerWithAuth builds a Handler with the given AuthService mock and a
// fixed clock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService, opts ...Option) *Handler {
	t.Helper()
	svcs := &service.Services{
		AppInfoService: &mockAppInfoService{version: "test"},
		AuthService:    auth,
	}
	h := NewHandler(svcs, logger.Nop(), opts...)
	h.now = func() time.Time { return testNow }
	return h
}

// do sends a request through the full router.
func do(t *testing.T, h *Handler, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range header {
		req.Header[k] = v
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func sampleAuthResponse() models.AuthResponse {
	return models.AuthResponse{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    models.TokenTypeBearer,
		ExpiresIn:    86400,
		User:         models.UserInfo{ID: 1, Email: "new@example.com", Username: "new"},
	}
}
