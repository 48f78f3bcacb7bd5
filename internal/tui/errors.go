// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
)

var (
	ErrClipboardUnavailable = errors.New("clipboard is not available")
	ErrNotSignedIn          = errors.New("not signed in")
)

// humanizeError turns a client error into the text of the error overlay.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Wrong email or password, or the session has expired"
	case errors.Is(err, adapter.ErrTimeout), errors.Is(err, adapter.ErrServiceUnavailable):
		return "The server is unavailable, try again later"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network connection or the server is unavailable"
	}

	return err.Error()
}
