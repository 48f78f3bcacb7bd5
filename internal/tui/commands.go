// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
	"github.com/MKhiriev/go-auth-service/models"
)

// Every command turns a failed call into errMsg so that the root model can
// show it in the overlay.

func cmdLogin(ctx context.Context, auth adapter.AuthClient, req models.LoginRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := auth.Login(ctx, req)
		if err != nil {
			return errMsg{err: err}
		}
		return authDoneMsg{action: "login", resp: resp}
	}
}

func cmdRegister(ctx context.Context, auth adapter.AuthClient, req models.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := auth.Register(ctx, req)
		if err != nil {
			return errMsg{err: err}
		}
		return authDoneMsg{action: "register", resp: resp}
	}
}

// cmdRefresh rotates the stored refresh token.
func cmdRefresh(ctx context.Context, auth adapter.AuthClient) tea.Cmd {
	return func() tea.Msg {
		resp, err := auth.Refresh(ctx, "")
		if err != nil {
			return errMsg{err: err}
		}
		return authDoneMsg{action: "refresh", resp: resp}
	}
}

func cmdMe(ctx context.Context, auth adapter.AuthClient) tea.Cmd {
	return func() tea.Msg {
		user, err := auth.Me(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return meDoneMsg{user: user}
	}
}

func cmdLogout(ctx context.Context, auth adapter.AuthClient) tea.Cmd {
	return func() tea.Msg {
		if err := auth.Logout(ctx); err != nil {
			return errMsg{err: err}
		}
		return loggedOutMsg{}
	}
}

func cmdCopyToken(auth adapter.AuthClient, clip CopyFunc) tea.Cmd {
	return func() tea.Msg {
		if clip == nil {
			return errMsg{err: ErrClipboardUnavailable}
		}
		token := auth.AccessToken()
		if token == "" {
			return errMsg{err: ErrNotSignedIn}
		}
		if err := clip(token); err != nil {
			return errMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdVersion(ctx context.Context, auth adapter.AuthClient) tea.Cmd {
	return func() tea.Msg {
		version, err := auth.Version(ctx)
		return versionMsg{version: version, err: err}
	}
}
