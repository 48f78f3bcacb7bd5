// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

// CopyFunc puts text on the system clipboard.
type CopyFunc func(text string) error

type TUI struct {
	auth      adapter.AuthClient
	clip      CopyFunc
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// New returns a TUI backed by auth. clip may be nil when the clipboard is
// not available.
func New(auth adapter.AuthClient, clip CopyFunc, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		auth:      auth,
		clip:      clip,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the menu and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.auth, t.clip, t.buildInfo)

	final, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}

	if result, ok := final.(RootModel); ok && result.user != nil {
		t.logger.Debug().Str("username", result.user.Username).Msg("terminal UI closed")
	}
	return nil
}
