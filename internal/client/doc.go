// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the auth server.
//
// Each invocation runs one command (register, login, refresh, me, logout,
// version) against the server and prints the JSON result.
package client
