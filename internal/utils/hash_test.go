package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ideashelf/backend/internal/utils"
)

func TestHashPasswordFormat(t *testing.T) {
	hash, err := utils.HashPassword("SecurePass123")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.Len(t, strings.Split(hash, "$"), 6)
}

func TestHashPasswordUniqueSalt(t *testing.T) {
	first, err := utils.HashPassword("SecurePass123")
	assert.NoError(t, err)
	second, err := utils.HashPassword("SecurePass123")
	assert.NoError(t, err)

	// Same password, different salt, different hash
	assert.NotEqual(t, first, second)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := utils.HashPassword("SecurePass123")
	assert.NoError(t, err)

	ok, err := utils.VerifyPassword("SecurePass123", hash)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = utils.VerifyPassword("WrongPass123", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordInvalidHash(t *testing.T) {
	testCases := []struct {
		name string
		hash string
	}{
		{"Empty", ""},
		{"Garbage", "not-a-hash"},
		{"Wrong segment count", "$argon2id$v=19$m=65536"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := utils.VerifyPassword("SecurePass123", tc.hash)
			assert.Error(t, err)
		})
	}
}

func TestVerifyPasswordEmptyPassword(t *testing.T) {
	hash, err := utils.HashPassword("")
	assert.NoError(t, err)

	ok, err := utils.VerifyPassword("", hash)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = utils.VerifyPassword("x", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}
