// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/crypto"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/observability"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/internal/validators"
	"github.com/MKhiriev/go-auth-service/models"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices builds the orchestrator with its collaborators from cfg and
// decorates it with request validation and, when metrics is not nil,
// outcome metrics.
func NewServices(
	users store.UserRepository,
	cfg config.StructuredConfig,
	metrics *observability.Metrics,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.App.PasswordHasher)
	if err != nil {
		return nil, fmt.Errorf("creating password hasher: %w", err)
	}

	// hash of a random throwaway password, verified against for unknown emails
	dummyHash, err := hasher.Hash(utils.NewUUIDGenerator().Generate())
	if err != nil {
		return nil, fmt.Errorf("creating dummy password hash: %w", err)
	}

	tokens, err := crypto.NewTokenIssuer(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("creating token issuer: %w", err)
	}

	registration, err := validators.NewRegistrationValidator(cfg.Registration)
	if err != nil {
		return nil, fmt.Errorf("creating registration validator: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	auth := NewAuthService(users, registration, hasher, tokens, NewAuthenticator(users, hasher, dummyHash), logger)
	auth = NewAuthValidationService().Wrap(auth)
	if metrics != nil {
		auth = NewAuthMetricsService(metrics).Wrap(auth)
	}

	return &Services{
		AuthService:    auth,
		AppInfoService: appInfo,
	}, nil
}
