// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeBearer is the only token type the service issues.
const TokenTypeBearer = "Bearer"

// Token is the claim set carried by every access and refresh token.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (sub, iss, iat,
// exp, jti). The subject is the user's email.
//
// PasswordFingerprint binds the token to the password hash the user had at
// issuance: once the hash changes, the fingerprint no longer matches and the
// token stops being valid even if its signature and expiry are fine.
type Token struct {
	jwt.RegisteredClaims

	// PasswordFingerprint is a truncated HMAC of the user's password hash.
	PasswordFingerprint string `json:"fph,omitempty"`
}

// TokenPair is a freshly minted access/refresh pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
