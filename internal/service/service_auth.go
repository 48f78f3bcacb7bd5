// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/crypto"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/validators"
	"github.com/MKhiriev/go-auth-service/models"
)

// authService is the concrete implementation of AuthService.
// All of its state is read-only after construction.
type authService struct {
	// users is the credential store.
	users store.UserRepository

	// registration gates the email domain and username of new accounts.
	registration validators.RegistrationValidator

	hasher        crypto.PasswordHasher
	tokens        crypto.TokenIssuer
	authenticator Authenticator

	// now is the clock used for last-login timestamps.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from its collaborators.
func NewAuthService(
	users store.UserRepository,
	registration validators.RegistrationValidator,
	hasher crypto.PasswordHasher,
	tokens crypto.TokenIssuer,
	authenticator Authenticator,
	logger *logger.Logger,
) AuthService {
	return &authService{
		users:         users,
		registration:  registration,
		hasher:        hasher,
		tokens:        tokens,
		authenticator: authenticator,
		now:           time.Now,
		logger:        logger,
	}
}

// Register creates a new account.
//
// The email domain is checked before the store is touched. When no
// username is supplied the local part of the email is used. The new user
// starts at the beginner difficulty level and has no last-login time.
//
// Returns the token envelope or one of:
//   - validators.ErrInvalidInput, validators.ErrBlockedDomain,
//     validators.ErrBlockedUsername for rejected input.
//   - ErrDuplicateEmail, ErrDuplicateUsername when the account exists.
//   - A wrapped storage, hashing or ErrTokenCreationFailed error otherwise.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.registration.ValidateEmailDomain(req.Email); err != nil {
		log.Info().Err(err).Msg("registration rejected by email check")
		return models.AuthResponse{}, fmt.Errorf("registration rejected: %w", err)
	}

	exists, err := a.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Msg("email lookup failed")
		return models.AuthResponse{}, fmt.Errorf("email lookup failed: %w", err)
	}
	if exists {
		return models.AuthResponse{}, ErrDuplicateEmail
	}

	username := req.Username
	if strings.TrimSpace(username) == "" {
		username, _, _ = strings.Cut(req.Email, "@")
	}

	if err = a.registration.ValidateUsername(username); err != nil {
		log.Info().Err(err).Str("username", username).Msg("registration rejected by username check")
		return models.AuthResponse{}, fmt.Errorf("registration rejected: %w", err)
	}

	exists, err = a.users.ExistsByUsername(ctx, username)
	if err != nil {
		log.Err(err).Msg("username lookup failed")
		return models.AuthResponse{}, fmt.Errorf("username lookup failed: %w", err)
	}
	if exists {
		return models.AuthResponse{}, ErrDuplicateUsername
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.users.Save(ctx, models.User{
		Email:           req.Email,
		Username:        username,
		PasswordHash:    passwordHash,
		DifficultyLevel: models.DefaultDifficultyLevel,
	})
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.AuthResponse{}, ErrDuplicateEmail
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return models.AuthResponse{}, ErrDuplicateUsername
	case err != nil:
		log.Err(err).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")

	return a.issue(user)
}

// Login authenticates the user, stamps LastLoginAt and returns a fresh
// token pair. Credential failures are ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.authenticator.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return models.AuthResponse{}, err
	}

	now := a.now().UTC()
	user.LastLoginAt = &now

	saved, err := a.users.Save(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("saving last login time failed")
		return models.AuthResponse{}, fmt.Errorf("saving last login time failed: %w", err)
	}

	return a.issue(saved)
}

// RefreshToken mints a new pair for the subject of refreshToken.
//
// Returns validators.ErrEmptyRefreshToken for a blank token, an
// ErrUnauthorized-class error when the token cannot be read or its subject
// is unknown, and ErrTokenExpired when it no longer validates against the
// user.
func (a *authService) RefreshToken(ctx context.Context, refreshToken string) (models.AuthResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return models.AuthResponse{}, validators.ErrEmptyRefreshToken
	}

	user, err := a.resolve(ctx, refreshToken)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return a.issue(user)
}

// Logout looks the user up and does nothing else. Tokens stay valid until
// they expire.
func (a *authService) Logout(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		log.Debug().Msg("anonymous logout")
		return nil
	}

	if _, err := a.users.FindByEmail(ctx, email); err != nil {
		log.Warn().Err(err).Msg("user lookup on logout failed")
		return nil
	}

	log.Debug().Msg("user logged out")
	return nil
}

// CurrentUser returns the public view of the user an access token belongs
// to.
func (a *authService) CurrentUser(ctx context.Context, accessToken string) (models.CurrentUser, error) {
	if strings.TrimSpace(accessToken) == "" {
		return models.CurrentUser{}, ErrUnauthorized
	}

	user, err := a.resolve(ctx, accessToken)
	if err != nil {
		return models.CurrentUser{}, err
	}

	return user.CurrentUser(), nil
}

// resolve maps a token to its user and requires the token to be valid for
// that user.
func (a *authService) resolve(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	email, err := a.tokens.ExtractUsername(token)
	if err != nil {
		log.Debug().Err(err).Msg("token subject cannot be extracted")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Msg("token subject is not a known user")
			return models.User{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
		}
		log.Err(err).Msg("user lookup by token subject failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !a.tokens.IsTokenValid(token, user) {
		log.Debug().Int64("user_id", user.UserID).Msg("token rejected")
		return models.User{}, ErrTokenExpired
	}

	return user, nil
}

// issue mints an access/refresh pair for user and builds the envelope.
func (a *authService) issue(user models.User) (models.AuthResponse, error) {
	accessToken, err := a.tokens.GenerateToken(user)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken, err := a.tokens.GenerateRefreshToken(user)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    models.TokenTypeBearer,
		ExpiresIn:    int64(a.tokens.AccessTokenTTL() / time.Second),
		User:         user.Info(),
	}, nil
}
