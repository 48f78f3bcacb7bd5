// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-service/models"
)

const (
	usersTable = "users"

	columnUserID          = "user_id"
	columnEmail           = "email"
	columnUsername        = "username"
	columnPasswordHash    = "password_hash"
	columnDifficultyLevel = "difficulty_level"
	columnCreatedAt       = "created_at"
	columnUpdatedAt       = "updated_at"
	columnLastLoginAt     = "last_login_at"
)

// userColumns is the scan order of [scanUser].
var userColumns = []string{
	columnUserID,
	columnEmail,
	columnUsername,
	columnPasswordHash,
	columnDifficultyLevel,
	columnCreatedAt,
	columnUpdatedAt,
	columnLastLoginAt,
}

func buildFindUserByQuery(b sq.StatementBuilderType, column string, value any) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildExistsQuery(b sq.StatementBuilderType, column string, value any) (string, []any, error) {
	query, args, err := b.Select("1").
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(usersTable).
		Columns(
			columnEmail,
			columnUsername,
			columnPasswordHash,
			columnDifficultyLevel,
			columnCreatedAt,
			columnUpdatedAt,
			columnLastLoginAt,
		).
		Values(
			user.Email,
			user.Username,
			user.PasswordHash,
			user.DifficultyLevel,
			user.CreatedAt,
			user.UpdatedAt,
			user.LastLoginAt,
		).
		Suffix("RETURNING " + columnUserID).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery rewrites every mutable column. The email and id are
// immutable and only used to address the row.
func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Update(usersTable).
		Set(columnUsername, user.Username).
		Set(columnPasswordHash, user.PasswordHash).
		Set(columnDifficultyLevel, user.DifficultyLevel).
		Set(columnUpdatedAt, user.UpdatedAt).
		Set(columnLastLoginAt, user.LastLoginAt).
		Where(sq.Eq{columnUserID: user.UserID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user        models.User
		lastLoginAt sql.NullTime
	)

	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.DifficultyLevel,
		&user.CreatedAt,
		&user.UpdatedAt,
		&lastLoginAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if lastLoginAt.Valid {
		t := lastLoginAt.Time
		user.LastLoginAt = &t
	}

	return user, nil
}
