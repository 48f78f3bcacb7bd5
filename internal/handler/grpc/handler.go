// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc serves the standard grpc.health.v1.Health service for the
// auth service.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-auth-service/internal/logger"
)

// ServiceName is reported alongside the overall ("") status.
const ServiceName = "auth.AuthService"

// HealthCheck reports whether the service dependencies are reachable.
type HealthCheck func(ctx context.Context) error

// Handler is the root gRPC transport handler.
//
// It owns a health server whose status follows the result of the health
// check. A handler instance is created once at startup and shared by the
// gRPC server.
type Handler struct {
	health *health.Server

	// check is run by Refresh. A nil check always reports serving.
	check HealthCheck

	logger *logger.Logger
}

// NewHandler constructs a [Handler] that starts in the SERVING state.
func NewHandler(check HealthCheck, logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		check:  check,
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Refresh runs the health check once and publishes the result. The gRPC
// server runs it as a periodic worker.
func (h *Handler) Refresh(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if h.check != nil {
		if err := h.check(ctx); err != nil {
			h.logger.Warn().Err(err).Msg("health check failed")
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	h.setStatus(status)
}

// Shutdown switches every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
