// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/crypto"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/models"
)

type authenticator struct {
	users  store.UserRepository
	hasher crypto.PasswordHasher

	// dummyHash is verified against when the email is unknown so both
	// failure paths cost one hash verification.
	dummyHash string
}

// NewAuthenticator returns an Authenticator backed by users and hasher.
// dummyHash must be a hash produced by hasher.
func NewAuthenticator(users store.UserRepository, hasher crypto.PasswordHasher, dummyHash string) Authenticator {
	return &authenticator{
		users:     users,
		hasher:    hasher,
		dummyHash: dummyHash,
	}
}

// Authenticate returns ErrInvalidCredentials for an unknown email, a wrong
// password and an undecodable stored hash. Store failures other than
// "not found" are returned wrapped so they surface as internal errors.
func (a *authenticator) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Msg("user lookup during authentication failed")
			return models.User{}, fmt.Errorf("user lookup failed: %w", err)
		}

		_, _ = a.hasher.Verify(password, a.dummyHash)
		log.Debug().Msg("authentication failed: unknown email")
		return models.User{}, ErrInvalidCredentials
	}

	ok, err := a.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", user.UserID).Msg("stored password hash cannot be decoded")
		return models.User{}, ErrInvalidCredentials
	}
	if !ok {
		log.Debug().Int64("user_id", user.UserID).Msg("authentication failed: wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}
