// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the auth service.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, bearer authentication and error-to-status translation are
// handled in this package before requests are delegated to the service
// layer. Every error response is a JSON [models.ErrorResponse].
package http
