// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-auth-service/models"

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// authDoneMsg ends a successful login, register or refresh.
type authDoneMsg struct {
	action string
	resp   models.AuthResponse
}

type meDoneMsg struct {
	user models.CurrentUser
}

type loggedOutMsg struct{}

type copiedMsg struct{}

type versionMsg struct {
	version string
	err     error
}

// errMsg carries a failed server call to the error overlay.
type errMsg struct {
	err error
}

// statusNotice is shown on the menu after the action that produced it.
type statusNotice struct {
	text string
}
