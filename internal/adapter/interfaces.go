// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the auth HTTP API.
//
// Error responses are mapped from HTTP status codes to the errors in
// errors.go so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// AuthClient talks to the auth server and keeps the token pair of the last
// successful register, login or refresh.
type AuthClient interface {
	// Register creates an account and stores the returned tokens.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates and stores the returned tokens.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Refresh exchanges refreshToken, or the stored one when it is empty,
	// for a new pair.
	Refresh(ctx context.Context, refreshToken string) (models.AuthResponse, error)

	// Me returns the user of the stored access token.
	Me(ctx context.Context) (models.CurrentUser, error)

	// Logout notifies the server and forgets the stored tokens.
	Logout(ctx context.Context) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// SetTokens replaces the stored pair. AccessToken returns the stored
	// access token.
	SetTokens(accessToken, refreshToken string)
	AccessToken() string
}
