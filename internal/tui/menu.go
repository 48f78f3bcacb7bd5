// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
)

// menuItem either opens a page or runs a command.
type menuItem struct {
	title string
	page  string
	run   func() tea.Cmd
}

type MenuModel struct {
	items  []menuItem
	idx    int
	status string
}

func NewMenuModel(ctx context.Context, auth adapter.AuthClient, clip CopyFunc) *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{title: "Sign in", page: pageLogin},
			{title: "Register", page: pageRegister},
			{title: "Who am I", run: func() tea.Cmd { return cmdMe(ctx, auth) }},
			{title: "Refresh session", run: func() tea.Cmd { return cmdRefresh(ctx, auth) }},
			{title: "Copy access token", run: func() tea.Cmd { return cmdCopyToken(auth, clip) }},
			{title: "Sign out", run: func() tea.Cmd { return cmdLogout(ctx, auth) }},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(statusNotice); ok {
		m.status = notice.text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item := m.items[m.idx]
		m.status = ""
		if item.page != "" {
			return m, func() tea.Msg { return NavigateTo{Page: item.page} }
		}
		return m, item.run()
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	idColWidth := max(lipgloss.Width("ID"), lipgloss.Width(fmt.Sprintf("%d", len(m.items)))) + 2
	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		actionColWidth = max(actionColWidth, lipgloss.Width(item.title))
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.title))
	}

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: version")
}
