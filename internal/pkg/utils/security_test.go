package utils

import (
	"clinic-staff-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-Password")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-Password", hash)
	assert.True(t, CheckPasswordHash("s3cret-Password", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestSessionJWT(t *testing.T) {
	secret := "test-secret"

	t.Run("Round trip", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", secret, time.Now().Add(time.Hour))
		require.NoError(t, err)

		sessionID, err := ParseSessionJWT(token, secret)
		require.NoError(t, err)
		assert.Equal(t, "session-123", sessionID)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", secret, time.Now().Add(time.Hour))
		require.NoError(t, err)

		_, err = ParseSessionJWT(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", secret, time.Now().Add(-time.Minute))
		require.NoError(t, err)

		_, err = ParseSessionJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := ParseSessionJWT("not-a-jwt", secret)
		assert.Error(t, err)
	})
}

func TestParseSessionJWTRejects(t *testing.T) {
	secret := "test-secret"

	t.Run("Foreign issuer", func(t *testing.T) {
		claims := SessionClaims{
			SessionID: "session-123",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = ParseSessionJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("Unsigned token", func(t *testing.T) {
		claims := SessionClaims{
			SessionID:        "session-123",
			RegisteredClaims: jwt.RegisteredClaims{Issuer: constvars.JWTIssuer},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ParseSessionJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("Missing session claim", func(t *testing.T) {
		token, err := GenerateSessionJWT("", secret, time.Now().Add(time.Hour))
		require.NoError(t, err)

		_, err = ParseSessionJWT(token, secret)
		assert.Error(t, err)
	})
}
