// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-service/internal/observability"
	"github.com/MKhiriev/go-auth-service/internal/validators"
	"github.com/MKhiriev/go-auth-service/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	refreshFn     func(ctx context.Context, token string) (models.AuthResponse, error)
	logoutFn      func(ctx context.Context, email string) error
	currentUserFn func(ctx context.Context, token string) (models.CurrentUser, error)
}

func (m *mockInnerAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.AuthResponse{}, nil
}
func (m *mockInnerAuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.AuthResponse{}, nil
}
func (m *mockInnerAuthService) RefreshToken(ctx context.Context, token string) (models.AuthResponse, error) {
	if m.refreshFn != nil {
		return m.refreshFn(ctx, token)
	}
	return models.AuthResponse{}, nil
}
func (m *mockInnerAuthService) Logout(ctx context.Context, email string) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, email)
	}
	return nil
}
func (m *mockInnerAuthService) CurrentUser(ctx context.Context, token string) (models.CurrentUser, error) {
	if m.currentUserFn != nil {
		return m.currentUserFn(ctx, token)
	}
	return models.CurrentUser{}, nil
}

// ─────────────────────────────────────────────
// Validation wrapper
// ─────────────────────────────────────────────

func TestValidation_Register_InvalidBodyStopsEarly(t *testing.T) {
	called := false
	inner := &mockInnerAuthService{
		registerFn: func(context.Context, models.RegisterRequest) (models.AuthResponse, error) {
			called = true
			return models.AuthResponse{}, nil
		},
	}
	svc := NewAuthValidationService().Wrap(inner)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "no-at-sign", Password: "password1"})

	assert.ErrorIs(t, err, validators.ErrInvalidInput)
	assert.False(t, called)
}

func TestValidation_Register_ShortPassword(t *testing.T) {
	svc := NewAuthValidationService().Wrap(&mockInnerAuthService{})

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "a@example.com", Password: "short"})

	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)
}

func TestValidation_Register_PassesThrough(t *testing.T) {
	inner := &mockInnerAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
			return models.AuthResponse{AccessToken: "a", User: models.UserInfo{Email: req.Email}}, nil
		},
	}
	svc := NewAuthValidationService().Wrap(inner)

	resp, err := svc.Register(context.Background(), models.RegisterRequest{Email: "a@example.com", Password: "password1"})

	require.NoError(t, err)
	assert.Equal(t, "a@example.com", resp.User.Email)
}

func TestValidation_Login_EmptyPassword(t *testing.T) {
	svc := NewAuthValidationService().Wrap(&mockInnerAuthService{})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@example.com"})

	assert.ErrorIs(t, err, validators.ErrEmptyPassword)
}

func TestValidation_Refresh_Blank(t *testing.T) {
	svc := NewAuthValidationService().Wrap(&mockInnerAuthService{})

	_, err := svc.RefreshToken(context.Background(), "")

	assert.ErrorIs(t, err, validators.ErrEmptyRefreshToken)
}

func TestValidation_LogoutAndCurrentUser_Delegate(t *testing.T) {
	var gotEmail, gotToken string
	inner := &mockInnerAuthService{
		logoutFn: func(_ context.Context, email string) error {
			gotEmail = email
			return nil
		},
		currentUserFn: func(_ context.Context, token string) (models.CurrentUser, error) {
			gotToken = token
			return models.CurrentUser{Authenticated: true}, nil
		},
	}
	svc := NewAuthValidationService().Wrap(inner)

	require.NoError(t, svc.Logout(context.Background(), "a@example.com"))
	user, err := svc.CurrentUser(context.Background(), "tok")

	require.NoError(t, err)
	assert.True(t, user.Authenticated)
	assert.Equal(t, "a@example.com", gotEmail)
	assert.Equal(t, "tok", gotToken)
}

// ─────────────────────────────────────────────
// Metrics wrapper
// ─────────────────────────────────────────────

func TestMetrics_CountsOutcomes(t *testing.T) {
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	inner := &mockInnerAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.AuthResponse, error) {
			if req.Password == "bad" {
				return models.AuthResponse{}, ErrInvalidCredentials
			}
			return models.AuthResponse{}, nil
		},
		registerFn: func(context.Context, models.RegisterRequest) (models.AuthResponse, error) {
			return models.AuthResponse{}, ErrDuplicateEmail
		},
		refreshFn: func(context.Context, string) (models.AuthResponse, error) {
			return models.AuthResponse{}, errors.New("db is down")
		},
	}
	svc := NewAuthMetricsService(metrics).Wrap(inner)
	ctx := context.Background()

	_, _ = svc.Login(ctx, models.LoginRequest{Password: "good"})
	_, _ = svc.Login(ctx, models.LoginRequest{Password: "bad"})
	_, _ = svc.Register(ctx, models.RegisterRequest{})
	_, _ = svc.RefreshToken(ctx, "tok")
	_ = svc.Logout(ctx, "")

	counter := metrics.AuthOperationsTotal
	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues(OperationLogin, observability.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues(OperationLogin, observability.OutcomeUnauthorized)))
	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues(OperationRegister, observability.OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues(OperationRefresh, observability.OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues(OperationLogout, observability.OutcomeSuccess)))
}

func TestMetrics_ReturnsInnerResult(t *testing.T) {
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	want := models.CurrentUser{ID: 3, Authenticated: true}
	inner := &mockInnerAuthService{
		currentUserFn: func(context.Context, string) (models.CurrentUser, error) { return want, nil },
	}
	wrapper := &authMetricsService{metrics: metrics, now: func() time.Time { return fixedNow }}
	svc := wrapper.Wrap(inner)

	got, err := svc.CurrentUser(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.AuthOperationTime))
}

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: observability.OutcomeSuccess},
		{err: ErrTokenExpired, want: observability.OutcomeUnauthorized},
		{err: validators.ErrMissingAt, want: observability.OutcomeRejected},
		{err: validators.ErrBlockedUsername, want: observability.OutcomeRejected},
		{err: ErrDuplicateUsername, want: observability.OutcomeRejected},
		{err: ErrTokenCreationFailed, want: observability.OutcomeError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, outcomeOf(tt.err))
	}
}
