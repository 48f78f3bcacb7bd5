// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/validators"
	"github.com/MKhiriev/go-auth-service/models"
)

// authValidationService checks request bodies before they reach the
// orchestrator.
type authValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &authValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *authValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request validation failed: %w", err)
	}

	return v.inner.Register(ctx, req)
}

func (v *authValidationService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request validation failed: %w", err)
	}

	return v.inner.Login(ctx, req)
}

func (v *authValidationService) RefreshToken(ctx context.Context, refreshToken string) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, models.RefreshRequest{RefreshToken: refreshToken}); err != nil {
		return models.AuthResponse{}, fmt.Errorf("refresh request validation failed: %w", err)
	}

	return v.inner.RefreshToken(ctx, refreshToken)
}

func (v *authValidationService) Logout(ctx context.Context, email string) error {
	return v.inner.Logout(ctx, email)
}

func (v *authValidationService) CurrentUser(ctx context.Context, accessToken string) (models.CurrentUser, error) {
	return v.inner.CurrentUser(ctx, accessToken)
}

func (v *authValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
