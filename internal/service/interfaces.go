// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the auth orchestrator and the decorators wrapped
// around it. The orchestrator only talks to its collaborators through the
// interfaces of the store, crypto and validators packages.
package service

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// AuthService runs the register, login, refresh and logout flows.
type AuthService interface {
	// Register creates a user and returns a fresh token pair for it.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login checks credentials, records the login time and returns a fresh
	// token pair.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// RefreshToken exchanges a valid refresh token for a new pair. The old
	// token stays usable until it expires.
	RefreshToken(ctx context.Context, refreshToken string) (models.AuthResponse, error)

	// Logout always succeeds.
	Logout(ctx context.Context, email string) error

	// CurrentUser resolves a valid access token to its user.
	CurrentUser(ctx context.Context, accessToken string) (models.CurrentUser, error)
}

// Authenticator verifies an email/password pair.
type Authenticator interface {
	// Authenticate returns the stored user when password matches. Every
	// credential failure is ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating or metrics.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}
