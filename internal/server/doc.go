// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP API and the optional gRPC health endpoint.
//
// Both listeners are opened before anything is served so a taken port
// fails startup. A stop signal or a cancelled context shuts every server
// down within ShutdownTimeout.
package server
