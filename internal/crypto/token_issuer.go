// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

const (
	// minSignKeyLen is the HS256 key size; shorter secrets are zero padded.
	minSignKeyLen = 32

	fingerprintLen = 16
)

// IssuerOption customises a token issuer.
type IssuerOption func(*jwtTokenIssuer)

// WithClock replaces the wall clock used for iat, exp and expiry checks.
func WithClock(now func() time.Time) IssuerOption {
	return func(i *jwtTokenIssuer) {
		i.now = now
	}
}

// WithIDGenerator replaces the generator of the jti claim.
func WithIDGenerator(gen func() string) IssuerOption {
	return func(i *jwtTokenIssuer) {
		i.newID = gen
	}
}

type jwtTokenIssuer struct {
	signKey    []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration

	now   func() time.Time
	newID func() string
}

// NewTokenIssuer builds an HS256 [TokenIssuer] from the app config.
func NewTokenIssuer(cfg config.App, opts ...IssuerOption) (TokenIssuer, error) {
	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.AccessTokenDuration <= 0 || cfg.RefreshTokenDuration <= 0 {
		return nil, ErrInvalidIssuerParams
	}

	issuer := &jwtTokenIssuer{
		signKey:    padSignKey([]byte(cfg.TokenSignKey)),
		issuer:     cfg.TokenIssuer,
		accessTTL:  cfg.AccessTokenDuration,
		refreshTTL: cfg.RefreshTokenDuration,
		now:        time.Now,
		newID:      utils.NewUUIDGenerator().Generate,
	}
	for _, opt := range opts {
		opt(issuer)
	}

	return issuer, nil
}

func (i *jwtTokenIssuer) GenerateToken(user models.User) (string, error) {
	return i.sign(user, i.accessTTL)
}

func (i *jwtTokenIssuer) GenerateRefreshToken(user models.User) (string, error) {
	return i.sign(user, i.refreshTTL)
}

func (i *jwtTokenIssuer) AccessTokenTTL() time.Duration {
	return i.accessTTL
}

func (i *jwtTokenIssuer) ExtractUsername(token string) (string, error) {
	claims, err := i.parse(token, jwt.WithoutClaimsValidation())
	if err != nil {
		return "", err
	}
	if claims.Issuer != i.issuer {
		return "", fmt.Errorf("%w: unexpected issuer", ErrTokenInvalid)
	}

	return claims.Subject, nil
}

func (i *jwtTokenIssuer) IsTokenValid(token string, user models.User) bool {
	claims, err := i.parse(token,
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return false
	}
	if user.Email == "" || claims.Subject != user.Email {
		return false
	}

	expected := i.fingerprint(user.PasswordHash)
	return subtle.ConstantTimeCompare([]byte(claims.PasswordFingerprint), []byte(expected)) == 1
}

func (i *jwtTokenIssuer) sign(user models.User, ttl time.Duration) (string, error) {
	if user.Email == "" {
		return "", errors.New("cannot issue token without subject")
	}

	now := i.now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        i.newID(),
			Issuer:    i.issuer,
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		PasswordFingerprint: i.fingerprint(user.PasswordHash),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}

// parse verifies the signature and returns the claims; any failure wraps
// ErrTokenInvalid.
func (i *jwtTokenIssuer) parse(token string, opts ...jwt.ParserOption) (*models.Token, error) {
	// strict decoding rejects segments whose unused padding bits are set, so
	// every character of the signature counts
	opts = append(opts,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
	)

	claims := &models.Token{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return i.signKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: empty subject", ErrTokenInvalid)
	}

	return claims, nil
}

// fingerprint binds a token to the password hash it was minted against.
func (i *jwtTokenIssuer) fingerprint(passwordHash string) string {
	sum := utils.HMACSHA256([]byte(passwordHash), i.signKey)
	return base64.RawURLEncoding.EncodeToString(sum[:fingerprintLen])
}

func padSignKey(key []byte) []byte {
	if len(key) >= minSignKeyLen {
		return key
	}

	padded := make([]byte, minSignKeyLen)
	copy(padded, key)
	return padded
}
