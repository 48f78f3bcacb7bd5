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
	registerEmail = iota
	registerUsername
	registerPassword
	registerRepeat
)

// RegisterModel is the registration page. The username may be left empty,
// in which case the server derives it from the email.
type RegisterModel struct {
	ctx  context.Context
	auth adapter.AuthClient

	form
}

func NewRegisterModel(ctx context.Context, auth adapter.AuthClient) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newForm([]string{"Email", "Username", "Password", "Repeat password"},
			newInput("email", false),
			newInput("optional", false),
			newInput("password", true),
			newInput("repeat password", true),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles the same messages as [LoginModel.Update]; enter also
// requires both password fields to match.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

			req := models.RegisterRequest{
				Email:    m.value(registerEmail),
				Username: m.value(registerUsername),
				Password: m.inputs[registerPassword].Value(),
			}
			if req.Email == "" || req.Password == "" {
				m.errMsg = "email and password are required"
				return m, nil
			}
			if req.Password != m.inputs[registerRepeat].Value() {
				m.errMsg = "passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, cmdRegister(m.ctx, m.auth, req)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	return renderPage("REGISTER", m.render("Register"), "esc: back │ tab: next field │ enter: submit")
}
