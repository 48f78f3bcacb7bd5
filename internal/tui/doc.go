// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal front end of the auth client.
//
// It is built on Bubble Tea: [RootModel] routes between a menu and the
// login and register forms, keeps the signed-in session, shows server errors
// in an overlay and toggles a build information window. Every server call
// goes through an [adapter.AuthClient].
package tui
