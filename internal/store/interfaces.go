// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the credential store of the auth service. Users live in
// a single "users" table in PostgreSQL (via pgx) or SQLite; SQL is built
// with squirrel and the schema is managed by goose migrations.
package store

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up users by their unique email.
type UserRepository interface {
	// FindByEmail returns the user with the given email or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByUsername reports whether a user with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Save inserts user when UserID is zero and updates it otherwise. The
	// stored representation is returned. A unique violation on insert is
	// ErrEmailAlreadyExists or ErrUsernameAlreadyExists.
	Save(ctx context.Context, user models.User) (models.User, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
