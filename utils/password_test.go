package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordFormat(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "pbkdf2:sha256:260000$"))
	assert.NotContains(t, hash, "secret")
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("secret", hash))
	assert.False(t, CheckPasswordHash("Secret", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestHashPasswordUsesRandomSalt(t *testing.T) {
	first, err := HashPassword("secret")
	require.NoError(t, err)
	second, err := HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash("secret", first))
	assert.True(t, CheckPasswordHash("secret", second))
}

func TestCheckPasswordHashMalformed(t *testing.T) {
	for _, encoded := range []string{
		"",
		"plaintext",
		"pbkdf2:sha256:260000$zz$zz",
		"bcrypt:10$abcd$ef01",
		"pbkdf2:sha256$abcd$ef01",
	} {
		assert.False(t, CheckPasswordHash("secret", encoded), encoded)
	}
}
