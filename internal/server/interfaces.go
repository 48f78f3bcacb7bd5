// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the transports managed by this package.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT is received.
	RunServer() error

	// Run serves until ctx is done or a transport fails, then shuts every
	// transport down.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the servers and frees associated resources.
	Shutdown(ctx context.Context) error
}
