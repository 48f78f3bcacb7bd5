// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

const authPrefix = "/api/auth"

type httpAuthClient struct {
	client *utils.HTTPClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string

	logger *logger.Logger
}

// NewHTTPAuthClient constructs the HTTP implementation of [AuthClient].
// Returns an error if cfg.HTTPAddress is empty or is not a valid URL.
func NewHTTPAuthClient(cfg config.ClientAdapter, logger *logger.Logger) (AuthClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAuthClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAuthClient) SetTokens(accessToken, refreshToken string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.accessToken = strings.TrimSpace(accessToken)
	h.refreshToken = strings.TrimSpace(refreshToken)
}

func (h *httpAuthClient) AccessToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.accessToken
}

func (h *httpAuthClient) storedRefreshToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.refreshToken
}

func (h *httpAuthClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.postAuth(ctx, "register", req)
}

func (h *httpAuthClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.postAuth(ctx, "login", req)
}

func (h *httpAuthClient) Refresh(ctx context.Context, refreshToken string) (models.AuthResponse, error) {
	if refreshToken == "" {
		refreshToken = h.storedRefreshToken()
	}
	if refreshToken == "" {
		return models.AuthResponse{}, ErrNoRefreshToken
	}

	return h.postAuth(ctx, "refresh", models.RefreshRequest{RefreshToken: refreshToken})
}

// postAuth sends body to one of the token-issuing endpoints and stores the
// returned pair.
func (h *httpAuthClient) postAuth(ctx context.Context, action string, body any) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(authPrefix + "/" + action)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetTokens(result.AccessToken, result.RefreshToken)
	h.logger.Debug().Str("action", action).Int64("user_id", result.User.ID).Msg("token pair stored")

	return result, nil
}

func (h *httpAuthClient) Me(ctx context.Context) (models.CurrentUser, error) {
	var user models.CurrentUser

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get(authPrefix + "/me")
	if err != nil {
		return models.CurrentUser{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CurrentUser{}, err
	}

	return user, nil
}

// Logout forgets the stored tokens even when the request fails.
func (h *httpAuthClient) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post(authPrefix + "/logout")
	h.SetTokens("", "")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAuthClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpAuthClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.AccessToken(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
