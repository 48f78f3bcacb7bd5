// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrTokenInvalid        = errors.New("token is invalid")
	ErrInvalidIssuerParams = errors.New("invalid params for token issuer")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrInvalidHash         = errors.New("invalid password hash")
	ErrUnknownHasher       = errors.New("unknown password hasher")
)
