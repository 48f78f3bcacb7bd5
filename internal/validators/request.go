// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-auth-service/models"
)

// Field names accepted by [RequestValidator.Validate].
const (
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldNewPassword  = "new_password"
	FieldUsername     = "username"
	FieldRefreshToken = "refresh_token"
)

const (
	MinPasswordLen = 8
	// MaxPasswordLen is the bcrypt input limit.
	MaxPasswordLen = 72
	MinUsernameLen = 2
	MaxUsernameLen = 10
)

// RequestValidator checks the shape of inbound auth request bodies.
// Both value and pointer forms of each request are accepted.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.RefreshRequest:
		return v.validateRefreshRequest(value, fields...)
	case *models.RefreshRequest:
		return v.validateRefreshRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegisterRequest checks email, new password length and, when
// supplied, the username length. A blank username is allowed: the service
// derives one from the email.
func (v *RequestValidator) validateRegisterRequest(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldNewPassword, FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		case FieldNewPassword:
			if err := validateNewPassword(req.Password); err != nil {
				return err
			}
		case FieldUsername:
			if strings.TrimSpace(req.Username) == "" {
				continue
			}
			if n := utf8.RuneCountInString(req.Username); n < MinUsernameLen || n > MaxUsernameLen {
				return ErrInvalidUsernameLen
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLoginRequest(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateRefreshRequest(req models.RefreshRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRefreshToken}
	}

	for _, f := range fields {
		switch f {
		case FieldRefreshToken:
			if strings.TrimSpace(req.RefreshToken) == "" {
				return ErrEmptyRefreshToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmail accepts a bare address: no display name, no angle brackets.
func validateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return ErrMissingAt
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}

	return nil
}

func validateNewPassword(password string) error {
	switch {
	case password == "":
		return ErrEmptyPassword
	case utf8.RuneCountInString(password) < MinPasswordLen:
		return ErrPasswordTooShort
	case len(password) > MaxPasswordLen:
		return ErrPasswordTooLong
	}

	return nil
}
