// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResponse is returned by every successful register, login and refresh.
// It is built fresh on each call and never persisted.
type AuthResponse struct {
	// AccessToken is the short-lived token for ordinary API calls.
	AccessToken string `json:"accessToken"`

	// RefreshToken is the longer-lived token used only to mint a new pair.
	RefreshToken string `json:"refreshToken"`

	// TokenType is always [TokenTypeBearer].
	TokenType string `json:"tokenType"`

	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64 `json:"expiresIn"`

	// User holds the public fields of the authenticated user.
	User UserInfo `json:"user"`
}

// UserInfo is the public projection of [User] embedded in [AuthResponse].
type UserInfo struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// CurrentUser is the payload of the "me" endpoint.
type CurrentUser struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	DifficultyLevel string `json:"difficultyLevel"`
	Authenticated   bool   `json:"authenticated"`
}

// ErrorResponse is the JSON envelope of every error returned by the HTTP
// layer.
type ErrorResponse struct {
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
