// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress          = "localhost:8080"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultTokenIssuer          = "go-auth-service"
	DefaultAccessTokenDuration  = 24 * time.Hour
	DefaultRefreshTokenDuration = 7 * 24 * time.Hour
	DefaultPasswordHasher       = PasswordHasherBcrypt
	DefaultVersion              = "N/A"

	// DefaultBlockedUsernamePattern rejects usernames containing
	// administrative terms or profanity.
	DefaultBlockedUsernamePattern = `.*(admin|root|system|moderator|operator|support|fuck|shit|bitch).*`
)

// Supported values of [App.PasswordHasher].
const (
	PasswordHasherBcrypt   = "bcrypt"
	PasswordHasherArgon2id = "argon2id"
)

// DefaultBlockedDomains lists disposable mailbox providers.
var DefaultBlockedDomains = []string{
	"mailinator.com",
	"guerrillamail.com",
	"10minutemail.com",
	"tempmail.com",
	"yopmail.com",
	"trashmail.com",
}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	domains := make([]string, len(DefaultBlockedDomains))
	copy(domains, DefaultBlockedDomains)

	return &StructuredConfig{
		App: App{
			TokenIssuer:          DefaultTokenIssuer,
			AccessTokenDuration:  DefaultAccessTokenDuration,
			RefreshTokenDuration: DefaultRefreshTokenDuration,
			PasswordHasher:       DefaultPasswordHasher,
			Version:              DefaultVersion,
		},
		Registration: Registration{
			BlockedDomains:         domains,
			BlockedUsernamePattern: DefaultBlockedUsernamePattern,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
