// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-service/models"
)

// fakeAuthClient records requests and answers with the configured funcs.
type fakeAuthClient struct {
	loginFn    func(req models.LoginRequest) (models.AuthResponse, error)
	registerFn func(req models.RegisterRequest) (models.AuthResponse, error)
	refreshFn  func(refreshToken string) (models.AuthResponse, error)
	meFn       func() (models.CurrentUser, error)
	logoutFn   func() error
	versionFn  func() (string, error)

	accessToken string
}

func (f *fakeAuthClient) Register(_ context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	resp, err := f.registerFn(req)
	f.accessToken = resp.AccessToken
	return resp, err
}

func (f *fakeAuthClient) Login(_ context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	resp, err := f.loginFn(req)
	f.accessToken = resp.AccessToken
	return resp, err
}

func (f *fakeAuthClient) Refresh(_ context.Context, refreshToken string) (models.AuthResponse, error) {
	return f.refreshFn(refreshToken)
}

func (f *fakeAuthClient) Me(context.Context) (models.CurrentUser, error) {
	return f.meFn()
}

func (f *fakeAuthClient) Logout(context.Context) error {
	f.accessToken = ""
	return f.logoutFn()
}

func (f *fakeAuthClient) Version(context.Context) (string, error) {
	return f.versionFn()
}

func (f *fakeAuthClient) SetTokens(accessToken, _ string) { f.accessToken = accessToken }

func (f *fakeAuthClient) AccessToken() string { return f.accessToken }

func aliceResponse() models.AuthResponse {
	return models.AuthResponse{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		TokenType:    models.TokenTypeBearer,
		ExpiresIn:    900,
		User:         models.UserInfo{ID: 7, Email: "alice@example.com", Username: "alice"},
	}
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// update feeds msg to the root model.
func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

// runCmd runs cmd and returns its message.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

// settle runs cmd and feeds its message back until no command is left,
// skipping the cursor blink of text inputs.
func settle(t *testing.T, r RootModel, cmd tea.Cmd) RootModel {
	t.Helper()
	for range 10 {
		if cmd == nil {
			return r
		}
		msg := cmd()
		if _, isNav := msg.(NavigateTo); !isNav && !isAppMsg(msg) {
			return r
		}
		r, cmd = update(t, r, msg)
	}
	t.Fatal("commands did not settle")
	return r
}

func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case authDoneMsg, meDoneMsg, loggedOutMsg, copiedMsg, versionMsg, errMsg, statusNotice:
		return true
	}
	return false
}
