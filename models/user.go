// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultDifficultyLevel is the profile tag assigned to every newly
// registered user.
const DefaultDifficultyLevel = "beginner"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries; use
// [User.Info] or [User.CurrentUser] when user data leaves the service layer.
type User struct {
	// UserID is the store-assigned identifier. Zero means "not persisted yet".
	UserID int64 `json:"-"`

	// Email is the unique login key and the subject of every issued token.
	Email string `json:"email"`

	// Username is the display name. Derived from the email local part when
	// the user does not supply one.
	Username string `json:"username"`

	// PasswordHash is the encoded output of the configured password hasher.
	// It is never the plaintext and is never serialised.
	PasswordHash string `json:"-"`

	// DifficultyLevel is the learning profile tag (beginner, elementary,
	// intermediate).
	DifficultyLevel string `json:"difficulty_level"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification of the record.
	UpdatedAt time.Time `json:"updated_at"`

	// LastLoginAt is nil until the first successful login.
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Info maps the user to the public fields embedded in [AuthResponse].
func (u User) Info() UserInfo {
	return UserInfo{
		ID:       u.UserID,
		Email:    u.Email,
		Username: u.Username,
	}
}

// CurrentUser maps the user to the payload returned by the "me" endpoint.
func (u User) CurrentUser() CurrentUser {
	difficulty := u.DifficultyLevel
	if difficulty == "" {
		difficulty = DefaultDifficultyLevel
	}

	return CurrentUser{
		ID:              u.UserID,
		Email:           u.Email,
		Username:        u.Username,
		DifficultyLevel: difficulty,
		Authenticated:   true,
	}
}
