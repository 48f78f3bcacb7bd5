// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-service/internal/config"
)

func TestNewPasswordHasher(t *testing.T) {
	bc, err := NewPasswordHasher(config.PasswordHasherBcrypt)
	require.NoError(t, err)
	assert.IsType(t, &bcryptHasher{}, bc)

	ar, err := NewPasswordHasher(config.PasswordHasherArgon2id)
	require.NoError(t, err)
	assert.IsType(t, &argon2idHasher{}, ar)

	_, err = NewPasswordHasher("md5")
	assert.ErrorIs(t, err, ErrUnknownHasher)
}

func TestPasswordHashers(t *testing.T) {
	hashers := map[string]PasswordHasher{
		"bcrypt":   NewBcryptHasher(),
		"argon2id": NewArgon2idHasher(),
	}

	for name, h := range hashers {
		t.Run(name, func(t *testing.T) {
			hash, err := h.Hash("s3cret-pass")
			require.NoError(t, err)
			assert.NotEqual(t, "s3cret-pass", hash)
			assert.NotContains(t, hash, "s3cret-pass")

			ok, err := h.Verify("s3cret-pass", hash)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = h.Verify("wrong-pass", hash)
			require.NoError(t, err)
			assert.False(t, ok)

			again, err := h.Hash("s3cret-pass")
			require.NoError(t, err)
			assert.NotEqual(t, hash, again, "hashes must be salted")

			_, err = h.Hash("")
			assert.ErrorIs(t, err, ErrEmptyPassword)

			ok, err = h.Verify("s3cret-pass", "garbage")
			assert.False(t, ok)
			assert.ErrorIs(t, err, ErrInvalidHash)
		})
	}
}

func TestArgon2idHasher_Format(t *testing.T) {
	hash, err := NewArgon2idHasher().Hash("pw")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"))
	assert.Len(t, strings.Split(hash, "$"), 6)
}

func TestArgon2idHasher_RejectsBadParams(t *testing.T) {
	h := NewArgon2idHasher()

	for _, encoded := range []string{
		"$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$a2V5",
		"$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$a2V5",
		"$argon2id$v=19$m=65536,t=1,p=0$c2FsdA$a2V5",
		"$argon2id$v=19$m=65536,t=1,p=300$c2FsdA$a2V5",
		"$argon2id$v=19$m=65536,t=1,p=4$!!$a2V5",
		"$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$",
	} {
		ok, err := h.Verify("pw", encoded)
		assert.False(t, ok, encoded)
		assert.ErrorIs(t, err, ErrInvalidHash, encoded)
	}
}
