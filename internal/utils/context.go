// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the
// application: context keys, HMAC hashing, JSON response writing, bearer
// token parsing, UUID generation and the HTTP client wrapper.
package utils

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// contextKey is a private type for context keys so they never collide with
// keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// CurrentUserCtxKey is the key under which the auth middleware stores the
// authenticated [models.CurrentUser].
var CurrentUserCtxKey = contextKey("currentUser")

// AccessTokenCtxKey is the key under which the raw bearer token is stored.
var AccessTokenCtxKey = contextKey("accessToken")

// WithCurrentUser returns a copy of ctx carrying user.
func WithCurrentUser(ctx context.Context, user models.CurrentUser) context.Context {
	return context.WithValue(ctx, CurrentUserCtxKey, user)
}

// GetCurrentUserFromContext retrieves the authenticated user from ctx.
// ok is false when the value is missing or of an unexpected type.
//
// Example usage:
//
//	user, ok := utils.GetCurrentUserFromContext(ctx)
//	if !ok {
//	    // anonymous request
//	}
func GetCurrentUserFromContext(ctx context.Context) (models.CurrentUser, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(models.CurrentUser)
	return user, ok
}

// WithAccessToken returns a copy of ctx carrying the raw bearer token.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, AccessTokenCtxKey, token)
}

// GetAccessTokenFromContext retrieves the raw bearer token from ctx.
func GetAccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(AccessTokenCtxKey).(string)
	return token, ok && token != ""
}
