// AngelaMos | 2026
// security_test.go

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.True(t, VerifyPassword("correct horse battery staple", hash))
}

func TestHashPasswordSaltsEveryCall(t *testing.T) {
	first, err := HashPassword("senha123")
	require.NoError(t, err)

	second, err := HashPassword("senha123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("senha123", first))
	assert.True(t, VerifyPassword("senha123", second))
}

func TestVerifyPasswordRejects(t *testing.T) {
	hash, err := HashPassword("senha123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
	}{
		{"wrong password", "senha124", hash},
		{"empty password", "", hash},
		{"empty hash", "senha123", ""},
		{"garbage hash", "senha123", "not-a-hash"},
		{"wrong variant", "senha123", strings.Replace(hash, "argon2id", "argon2i", 1)},
		{"truncated hash", "senha123", hash[:len(hash)-10]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, VerifyPassword(tt.password, tt.hash))
		})
	}
}

func TestVerifyPasswordTimingSafe(t *testing.T) {
	hash, err := HashPassword("senha123")
	require.NoError(t, err)

	assert.True(t, VerifyPasswordTimingSafe("senha123", &hash))
	assert.False(t, VerifyPasswordTimingSafe("senha124", &hash))

	// Missing hash still burns a hash computation and always fails.
	assert.False(t, VerifyPasswordTimingSafe("senha123", nil))
}
