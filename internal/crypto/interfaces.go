// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the token issuer and the password hashers.
package crypto

import (
	"time"

	"github.com/MKhiriev/go-auth-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// TokenIssuer mints and checks signed bearer tokens for a user.
//
// Access and refresh tokens share one shape; only their lifetime differs.
// Validity is derived from the token and the user's current data, nothing
// is stored.
type TokenIssuer interface {
	// GenerateToken mints an access token for user.
	GenerateToken(user models.User) (string, error)

	// GenerateRefreshToken mints a refresh token for user.
	GenerateRefreshToken(user models.User) (string, error)

	// ExtractUsername returns the subject (email) of a token whose signature
	// and issuer are valid. Expiry is not checked here.
	ExtractUsername(token string) (string, error)

	// IsTokenValid reports whether token is correctly signed, unexpired,
	// issued for user and minted against user's current password hash.
	IsTokenValid(token string, user models.User) bool

	// AccessTokenTTL is the access token lifetime reported as expiresIn.
	AccessTokenTTL() time.Duration
}

// PasswordHasher encodes and verifies passwords.
type PasswordHasher interface {
	// Hash returns a salted one-way encoding of plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. A mismatch is
	// (false, nil); an undecodable hash is an error wrapping ErrInvalidHash.
	Verify(plaintext, hash string) (bool, error)
}
