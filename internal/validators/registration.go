// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-auth-service/internal/config"
)

type registrationValidator struct {
	blockedDomains  map[string]struct{}
	blockedUsername *regexp.Regexp
}

// NewRegistrationValidator compiles the blocklists of cfg. Domains are
// trimmed and lowercased, empty entries are skipped. The pattern is
// matched case-insensitively against the whole username.
func NewRegistrationValidator(cfg config.Registration) (RegistrationValidator, error) {
	domains := make(map[string]struct{}, len(cfg.BlockedDomains))
	for _, d := range cfg.BlockedDomains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			domains[d] = struct{}{}
		}
	}

	v := &registrationValidator{blockedDomains: domains}

	if cfg.BlockedUsernamePattern != "" {
		re, err := regexp.Compile(`(?i)^(?:` + cfg.BlockedUsernamePattern + `)$`)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
		}
		v.blockedUsername = re
	}

	return v, nil
}

func (v *registrationValidator) ValidateEmailDomain(email string) error {
	_, domain, found := strings.Cut(email, "@")
	if !found {
		return ErrMissingAt
	}

	if _, blocked := v.blockedDomains[strings.ToLower(domain)]; blocked {
		return ErrBlockedDomain
	}

	return nil
}

func (v *registrationValidator) ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}

	if v.blockedUsername != nil && v.blockedUsername.MatchString(username) {
		return ErrBlockedUsername
	}

	return nil
}
