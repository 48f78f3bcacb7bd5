// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
	"github.com/MKhiriev/go-auth-service/models"
)

// RootModel is the TUI router:
//  1. keeps the active page and the signed-in user
//  2. handles the global quit key and the build info window
//  3. shows failed calls in an error overlay
//  4. delegates all other messages to the active page
type RootModel struct {
	ctx  context.Context
	auth adapter.AuthClient

	pages   map[string]tea.Model
	current tea.Model

	user       *models.UserInfo
	quitByUser bool

	buildInfo     models.AppBuildInfo
	serverVersion string
	showBuildInfo bool

	overlay *errorOverlayModel
}

// NewRootModel registers the menu, login and register pages and opens the
// menu.
func NewRootModel(ctx context.Context, auth adapter.AuthClient, clip CopyFunc, buildInfo models.AppBuildInfo) RootModel {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(ctx, auth, clip),
		pageLogin:    NewLoginModel(ctx, auth),
		pageRegister: NewRegisterModel(ctx, auth),
	}

	return RootModel{
		ctx:       ctx,
		auth:      auth,
		pages:     pages,
		current:   pages[pageMenu],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.quit) {
			r.quitByUser = true
			return r, tea.Quit
		}

		if r.overlay != nil {
			if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
				r.overlay = nil
			}
			return r, nil
		}

		switch {
		case key.Matches(keyMsg, keys.version) && r.isMenuPage():
			r.showBuildInfo = !r.showBuildInfo
			if r.showBuildInfo {
				return r, cmdVersion(r.ctx, r.auth)
			}
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next
		if msg.Payload != nil {
			return r, func() tea.Msg { return msg.Payload }
		}
		return r, r.current.Init()

	case authDoneMsg:
		user := msg.resp.User
		r.user = &user
		if page, ok := r.current.(interface{ reset() }); ok {
			page.reset()
		}
		return r.toMenu(authNotice(msg))

	case meDoneMsg:
		r.user = &models.UserInfo{ID: msg.user.ID, Email: msg.user.Email, Username: msg.user.Username}
		return r.toMenu(fmt.Sprintf("%s <%s>, id %d, level %s",
			msg.user.Username, msg.user.Email, msg.user.ID, msg.user.DifficultyLevel))

	case loggedOutMsg:
		r.user = nil
		return r.toMenu("signed out")

	case copiedMsg:
		return r.toMenu("access token copied to clipboard")

	case versionMsg:
		r.serverVersion = msg.version
		if msg.err != nil {
			r.serverVersion = "unavailable"
		}
		return r, nil

	case errMsg:
		r.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	switch {
	case r.overlay != nil:
		return r.overlay.View()
	case r.showBuildInfo:
		return renderBuildInfoWindow(r.buildInfo, r.serverVersion)
	}

	view := r.current.View()
	if r.user != nil {
		view += "\n" + appStyle.Render(statusStyle.Render(fmt.Sprintf("signed in as %s <%s>", r.user.Username, r.user.Email)))
	}
	return view
}

// toMenu opens the menu with text in its status line.
func (r RootModel) toMenu(text string) (tea.Model, tea.Cmd) {
	menu := r.pages[pageMenu]
	menu, _ = menu.Update(statusNotice{text: text})
	r.pages[pageMenu] = menu
	r.current = menu
	r.showBuildInfo = false
	return r, nil
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

func authNotice(msg authDoneMsg) string {
	switch msg.action {
	case "register":
		return fmt.Sprintf("registered %s <%s>", msg.resp.User.Username, msg.resp.User.Email)
	case "refresh":
		return fmt.Sprintf("session refreshed, access token expires in %ds", msg.resp.ExpiresIn)
	default:
		return fmt.Sprintf("signed in as %s", msg.resp.User.Username)
	}
}
