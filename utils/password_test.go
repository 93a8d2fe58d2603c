package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("shake-it-up")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := VerifyPassword(hash, "shake-it-up")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "shake-it-down")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestVerifyPassword_NoStoredHash(t *testing.T) {
	ok, err := VerifyPassword("", "anything")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_CorruptHash(t *testing.T) {
	ok, err := VerifyPassword("not-a-hash", "anything")
	assert.Error(t, err)
	assert.False(t, ok)
}
