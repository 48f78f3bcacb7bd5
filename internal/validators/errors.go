// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrBlockedDomain   = errors.New("email domain is blocked")
	ErrBlockedUsername = errors.New("username is blocked")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrInvalidPattern  = errors.New("invalid blocked username pattern")
)

// Request body errors. Each one wraps ErrInvalidInput.
var (
	ErrMissingAt          = fmt.Errorf("%w: email must contain '@'", ErrInvalidInput)
	ErrInvalidEmail       = fmt.Errorf("%w: email is malformed", ErrInvalidInput)
	ErrEmptyUsername      = fmt.Errorf("%w: username is required", ErrInvalidInput)
	ErrInvalidUsernameLen = fmt.Errorf("%w: username must be between %d and %d characters", ErrInvalidInput, MinUsernameLen, MaxUsernameLen)
	ErrEmptyPassword      = fmt.Errorf("%w: password is required", ErrInvalidInput)
	ErrPasswordTooShort   = fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLen)
	ErrPasswordTooLong    = fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, MaxPasswordLen)
	ErrEmptyRefreshToken  = fmt.Errorf("%w: refresh token is required", ErrInvalidInput)
)
