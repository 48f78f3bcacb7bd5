// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
)

// HealthCheck reports whether the service dependencies are reachable.
type HealthCheck func(ctx context.Context) error

type Handler struct {
	services *service.Services

	// metrics serves GET /metrics when set.
	metrics http.Handler

	// health backs GET /healthz. A nil check always reports healthy.
	health HealthCheck

	// requestTimeout bounds every request when positive.
	requestTimeout time.Duration

	now func() time.Time

	logger *logger.Logger
}

type Option func(*Handler)

func WithMetricsHandler(metrics http.Handler) Option {
	return func(h *Handler) {
		h.metrics = metrics
	}
}

func WithHealthCheck(check HealthCheck) Option {
	return func(h *Handler) {
		h.health = check
	}
}

func WithRequestTimeout(timeout time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = timeout
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
