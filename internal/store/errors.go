// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when inserting a user whose email is
	// already stored.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyExists is returned when inserting a user whose
	// username is already stored.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotSaved is returned when an UPDATE matched no row.
	ErrUserNotSaved = errors.New("user was not saved")
)

// Low-level database errors, wrapped around the driver error.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan user row")

	ErrUnsupportedDSN = errors.New("unsupported database dsn")
	ErrNilDB          = errors.New("db is nil")
)
