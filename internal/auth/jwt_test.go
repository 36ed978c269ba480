// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litoralverde/training-api/internal/config"
	"github.com/litoralverde/training-api/internal/core"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:      "test-secret-key-for-token-tests",
		TokenExpire: time.Hour,
		Issuer:      "training-api",
		Audience:    "training-platform",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	signed, err := manager.Issue("user-42", "ana@litoralverde.com.br", "user")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	identity, err := manager.Verify(context.Background(), signed)
	require.NoError(t, err)

	assert.Equal(t, "user-42", identity.UserID)
	assert.Equal(t, "ana@litoralverde.com.br", identity.Email)
	assert.Equal(t, "user", identity.Role)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	signed, err := manager.Issue("user-42", "ana@litoralverde.com.br", "user")
	require.NoError(t, err)

	// Flip a character in the payload segment.
	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = manager.Verify(context.Background(), tampered)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.Secret = "a-completely-different-secret"
	other, err := NewTokenManager(otherCfg)
	require.NoError(t, err)

	signed, err := other.Issue("user-42", "ana@litoralverde.com.br", "user")
	require.NoError(t, err)

	_, err = manager.Verify(context.Background(), signed)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.TokenExpire = -time.Minute
	manager, err := NewTokenManager(cfg)
	require.NoError(t, err)

	signed, err := manager.Issue("user-42", "ana@litoralverde.com.br", "user")
	require.NoError(t, err)

	_, err = manager.Verify(context.Background(), signed)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
	assert.False(t, errors.Is(err, core.ErrTokenInvalid))
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := manager.Verify(context.Background(), token)
		assert.ErrorIs(t, err, core.ErrTokenInvalid, "token %q", token)
	}
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Issuer = "someone-else"
	other, err := NewTokenManager(cfg)
	require.NoError(t, err)

	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	signed, err := other.Issue("user-42", "ana@litoralverde.com.br", "user")
	require.NoError(t, err)

	// jwx phrases this failure as `claim "iss" does not have the
	// expected value`; it must never be misread as expiry.
	_, err = manager.Verify(context.Background(), signed)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
	assert.False(t, errors.Is(err, core.ErrTokenExpired))
}

func TestVerifyRejectsWrongAudience(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Audience = "some-other-platform"
	other, err := NewTokenManager(cfg)
	require.NoError(t, err)

	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	signed, err := other.Issue("user-42", "ana@litoralverde.com.br", "user")
	require.NoError(t, err)

	_, err = manager.Verify(context.Background(), signed)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
	assert.False(t, errors.Is(err, core.ErrTokenExpired))
}
