// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input gates of the auth service.
//
// A [RegistrationValidator] enforces the registration blocklists: email
// domains that may not sign up and a username pattern that may not be
// used. A [Validator] performs the structural checks of inbound request
// bodies and supports field-level scoping.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}

// RegistrationValidator gates new registrations. It performs no I/O and is
// safe for concurrent use.
type RegistrationValidator interface {
	// ValidateEmailDomain fails with ErrInvalidInput when email has no "@"
	// and with ErrBlockedDomain when its domain is blocklisted.
	ValidateEmailDomain(email string) error

	// ValidateUsername fails with ErrInvalidInput when username is blank
	// and with ErrBlockedUsername when the whole username matches the
	// blocked pattern.
	ValidateUsername(username string) error
}
