// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/observability"
	"github.com/MKhiriev/go-auth-service/internal/validators"
	"github.com/MKhiriev/go-auth-service/models"
)

// Operation label values recorded by the metrics wrapper.
const (
	OperationRegister    = "register"
	OperationLogin       = "login"
	OperationRefresh     = "refresh"
	OperationLogout      = "logout"
	OperationCurrentUser = "current_user"
)

// authMetricsService counts every call to the wrapped AuthService by
// operation and outcome.
type authMetricsService struct {
	inner   AuthService
	metrics *observability.Metrics
	now     func() time.Time
}

func NewAuthMetricsService(metrics *observability.Metrics) AuthServiceWrapper {
	return &authMetricsService{
		metrics: metrics,
		now:     time.Now,
	}
}

func (m *authMetricsService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	start := m.now()
	resp, err := m.inner.Register(ctx, req)
	m.metrics.Observe(OperationRegister, outcomeOf(err), m.now().Sub(start))
	return resp, err
}

func (m *authMetricsService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	start := m.now()
	resp, err := m.inner.Login(ctx, req)
	m.metrics.Observe(OperationLogin, outcomeOf(err), m.now().Sub(start))
	return resp, err
}

func (m *authMetricsService) RefreshToken(ctx context.Context, refreshToken string) (models.AuthResponse, error) {
	start := m.now()
	resp, err := m.inner.RefreshToken(ctx, refreshToken)
	m.metrics.Observe(OperationRefresh, outcomeOf(err), m.now().Sub(start))
	return resp, err
}

func (m *authMetricsService) Logout(ctx context.Context, email string) error {
	start := m.now()
	err := m.inner.Logout(ctx, email)
	m.metrics.Observe(OperationLogout, outcomeOf(err), m.now().Sub(start))
	return err
}

func (m *authMetricsService) CurrentUser(ctx context.Context, accessToken string) (models.CurrentUser, error) {
	start := m.now()
	user, err := m.inner.CurrentUser(ctx, accessToken)
	m.metrics.Observe(OperationCurrentUser, outcomeOf(err), m.now().Sub(start))
	return user, err
}

func (m *authMetricsService) Wrap(wrapped AuthService) AuthService {
	m.inner = wrapped
	return m
}

// outcomeOf maps an orchestrator error to an outcome label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return observability.OutcomeSuccess
	case errors.Is(err, ErrUnauthorized):
		return observability.OutcomeUnauthorized
	case errors.Is(err, validators.ErrInvalidInput),
		errors.Is(err, validators.ErrBlockedDomain),
		errors.Is(err, validators.ErrBlockedUsername),
		errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrDuplicateUsername):
		return observability.OutcomeRejected
	default:
		return observability.OutcomeError
	}
}
