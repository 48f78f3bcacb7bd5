// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

const usage = `usage: client [-a address] [-tui] <command> [-copy] [operands]

Without a command, or with -tui, the interactive terminal UI opens.

commands:
  register <email> <password> [username]
  login <email> <password>
  refresh <refresh-token>
  me <access-token>
  logout [access-token]
  version`

// CopyFunc puts text on the system clipboard.
type CopyFunc func(text string) error

var _ Client = (*App)(nil)

type App struct {
	auth adapter.AuthClient
	clip CopyFunc
	out  io.Writer

	logger *logger.Logger
}

// NewApp returns a [Client] printing results to out. clip may be nil, in
// which case -copy is rejected.
func NewApp(auth adapter.AuthClient, clip CopyFunc, out io.Writer, logger *logger.Logger) *App {
	return &App{
		auth:   auth,
		clip:   clip,
		out:    out,
		logger: logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrNoCommand, usage)
	}

	command := args[0]
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	copyToken := fs.Bool("copy", false, "copy the access token to the clipboard")
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	operands := fs.Args()

	var (
		result any
		err    error
	)
	switch command {
	case "register":
		result, err = a.register(ctx, operands)
	case "login":
		result, err = a.login(ctx, operands)
	case "refresh":
		result, err = a.refresh(ctx, operands)
	case "me":
		result, err = a.me(ctx, operands)
	case "logout":
		err = a.logout(ctx, operands)
	case "version":
		result, err = a.version(ctx, operands)
	default:
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, command, usage)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}

	if *copyToken {
		if err = a.copyAccessToken(); err != nil {
			return err
		}
	}

	return a.print(result)
}

func (a *App) register(ctx context.Context, operands []string) (models.AuthResponse, error) {
	if len(operands) < 2 || len(operands) > 3 {
		return models.AuthResponse{}, ErrUsage
	}

	req := models.RegisterRequest{Email: operands[0], Password: operands[1]}
	if len(operands) == 3 {
		req.Username = operands[2]
	}
	return a.auth.Register(ctx, req)
}

func (a *App) login(ctx context.Context, operands []string) (models.AuthResponse, error) {
	if len(operands) != 2 {
		return models.AuthResponse{}, ErrUsage
	}
	return a.auth.Login(ctx, models.LoginRequest{Email: operands[0], Password: operands[1]})
}

func (a *App) refresh(ctx context.Context, operands []string) (models.AuthResponse, error) {
	if len(operands) != 1 {
		return models.AuthResponse{}, ErrUsage
	}
	return a.auth.Refresh(ctx, operands[0])
}

func (a *App) me(ctx context.Context, operands []string) (models.CurrentUser, error) {
	if len(operands) != 1 {
		return models.CurrentUser{}, ErrUsage
	}
	a.auth.SetTokens(operands[0], "")
	return a.auth.Me(ctx)
}

func (a *App) logout(ctx context.Context, operands []string) error {
	if len(operands) > 1 {
		return ErrUsage
	}
	if len(operands) == 1 {
		a.auth.SetTokens(operands[0], "")
	}
	return a.auth.Logout(ctx)
}

func (a *App) version(ctx context.Context, operands []string) (string, error) {
	if len(operands) != 0 {
		return "", ErrUsage
	}
	return a.auth.Version(ctx)
}

func (a *App) copyAccessToken() error {
	if a.clip == nil {
		return fmt.Errorf("%w: clipboard is not available", ErrUsage)
	}

	token := a.auth.AccessToken()
	if token == "" {
		return fmt.Errorf("%w: no access token to copy", ErrUsage)
	}
	if err := a.clip(token); err != nil {
		return fmt.Errorf("copy access token: %w", err)
	}

	a.logger.Info().Msg("access token copied to clipboard")
	return nil
}

// print writes strings as-is and everything else as indented JSON. A nil
// result prints nothing.
func (a *App) print(result any) error {
	switch v := result.(type) {
	case nil:
		return nil
	case string:
		_, err := fmt.Fprintln(a.out, strings.TrimSpace(v))
		return err
	default:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
