// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
	"github.com/MKhiriev/go-auth-service/models"
)

const (
	loginEmail = iota
	loginPassword
)

// LoginModel is the sign in page. It dispatches an async login on enter; the
// result is handled by [RootModel].
type LoginModel struct {
	ctx  context.Context
	auth adapter.AuthClient

	form
}

func NewLoginModel(ctx context.Context, auth adapter.AuthClient) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newForm([]string{"Email", "Password"},
			newInput("email", false),
			newInput("password", true),
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - errMsg: a failed login; the form becomes editable again.
//   - esc: back to the menu.
//   - tab / shift+tab: move the focus.
//   - enter: check the inputs and sign in.
//
// Other keys go to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(errMsg); ok {
		m.submitting = false
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			email := m.value(loginEmail)
			password := m.inputs[loginPassword].Value()
			if email == "" || password == "" {
				m.errMsg = "email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, cmdLogin(m.ctx, m.auth, models.LoginRequest{Email: email, Password: password})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	return renderPage("SIGN IN", m.render("Sign in"), "esc: back │ tab: next field │ enter: submit")
}
