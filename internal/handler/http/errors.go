// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/validators"
)

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = fmt.Errorf("%w: empty `Authorization` header", service.ErrUnauthorized)

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = fmt.Errorf("%w: request body must be a valid JSON object", validators.ErrInvalidInput)

	ErrRouteNotFound = errors.New("resource not found")
)
