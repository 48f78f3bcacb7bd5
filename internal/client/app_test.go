// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

type mockAuthClient struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	refreshFn  func(ctx context.Context, refreshToken string) (models.AuthResponse, error)
	meFn       func(ctx context.Context) (models.CurrentUser, error)
	logoutFn   func(ctx context.Context) error
	versionFn  func(ctx context.Context) (string, error)

	accessToken string
}

func (m *mockAuthClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	resp, err := m.registerFn(ctx, req)
	m.accessToken = resp.AccessToken
	return resp, err
}

func (m *mockAuthClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	resp, err := m.loginFn(ctx, req)
	m.accessToken = resp.AccessToken
	return resp, err
}

func (m *mockAuthClient) Refresh(ctx context.Context, refreshToken string) (models.AuthResponse, error) {
	return m.refreshFn(ctx, refreshToken)
}

func (m *mockAuthClient) Me(ctx context.Context) (models.CurrentUser, error) {
	return m.meFn(ctx)
}

func (m *mockAuthClient) Logout(ctx context.Context) error {
	return m.logoutFn(ctx)
}

func (m *mockAuthClient) Version(ctx context.Context) (string, error) {
	return m.versionFn(ctx)
}

func (m *mockAuthClient) SetTokens(accessToken, _ string) { m.accessToken = accessToken }
func (m *mockAuthClient) AccessToken() string { return m.accessToken }

var _ adapter.AuthClient = (*mockAuthClient)(nil)

func pair() models.AuthResponse {
	return models.AuthResponse{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    models.TokenTypeBearer,
		ExpiresIn:    900,
		User:         models.UserInfo{ID: 1, Email: "alice@example.com", Username: "alice"},
	}
}

func TestRun_Register(t *testing.T) {
	auth := &mockAuthClient{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
			assert.Equal(t, models.RegisterRequest{Email: "alice@example.com", Password: "secret123", Username: "ally"}, req)
			return pair(), nil
		},
	}
	var out bytes.Buffer

	err := NewApp(auth, nil, &out, logger.Nop()).
		Run(context.Background(), []string{"register", "alice@example.com", "secret123", "ally"})

	require.NoError(t, err)
	var got models.AuthResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, pair(), got)
}

func TestRun_LoginCopiesToken(t *testing.T) {
	auth := &mockAuthClient{
		loginFn: func(context.Context, models.LoginRequest) (models.AuthResponse, error) {
			return pair(), nil
		},
	}
	var copied string
	clip := func(text string) error {
		copied = text
		return nil
	}

	err := NewApp(auth, clip, &bytes.Buffer{}, logger.Nop()).
		Run(context.Background(), []string{"login", "-copy", "alice@example.com", "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "access", copied)
}

func TestRun_CopyWithoutClipboard(t *testing.T) {
	auth := &mockAuthClient{
		loginFn: func(context.Context, models.LoginRequest) (models.AuthResponse, error) {
			return pair(), nil
		},
	}

	err := NewApp(auth, nil, &bytes.Buffer{}, logger.Nop()).
		Run(context.Background(), []string{"login", "-copy", "alice@example.com", "secret123"})

	require.ErrorIs(t, err, ErrUsage)
}

func TestRun_MeUsesGivenToken(t *testing.T) {
	auth := &mockAuthClient{}
	auth.meFn = func(context.Context) (models.CurrentUser, error) {
		assert.Equal(t, "given-token", auth.accessToken)
		return models.CurrentUser{ID: 1, Email: "alice@example.com", Username: "alice", DifficultyLevel: "BEGINNER", Authenticated: true}, nil
	}
	var out bytes.Buffer

	err := NewApp(auth, nil, &out, logger.Nop()).Run(context.Background(), []string{"me", "given-token"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), `"authenticated": true`)
}

func TestRun_LogoutPrintsNothing(t *testing.T) {
	auth := &mockAuthClient{logoutFn: func(context.Context) error { return nil }}
	var out bytes.Buffer

	err := NewApp(auth, nil, &out, logger.Nop()).Run(context.Background(), []string{"logout"})

	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRun_Version(t *testing.T) {
	auth := &mockAuthClient{versionFn: func(context.Context) (string, error) { return "v1.0.0", nil }}
	var out bytes.Buffer

	err := NewApp(auth, nil, &out, logger.Nop()).Run(context.Background(), []string{"version"})

	require.NoError(t, err)
	assert.Equal(t, "v1.0.0\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no command", args: nil, wantErr: ErrNoCommand},
		{name: "unknown command", args: []string{"delete"}, wantErr: ErrUnknownCommand},
		{name: "login missing password", args: []string{"login", "alice@example.com"}, wantErr: ErrUsage},
		{name: "refresh without token", args: []string{"refresh"}, wantErr: ErrUsage},
		{name: "version with operand", args: []string{"version", "x"}, wantErr: ErrUsage},
		{name: "unknown flag", args: []string{"login", "-force"}, wantErr: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewApp(&mockAuthClient{}, nil, &bytes.Buffer{}, logger.Nop()).Run(context.Background(), tt.args)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRun_ServerError(t *testing.T) {
	auth := &mockAuthClient{
		refreshFn: func(context.Context, string) (models.AuthResponse, error) {
			return models.AuthResponse{}, errors.Join(adapter.ErrUnauthorized, errors.New("token is expired or invalid"))
		},
	}

	err := NewApp(auth, nil, &bytes.Buffer{}, logger.Nop()).Run(context.Background(), []string{"refresh", "old"})

	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Contains(t, err.Error(), "refresh:")
}
