package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testKeyPair generates an RSA key pair and returns the private key with the
// public half PEM-encoded the way it arrives in configuration
func testKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	pubPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubDER,
	})
	return key, string(pubPEM)
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestAuthenticate(t *testing.T) {
	key, pubPEM := testKeyPair(t)
	cfg := AuthConfig{
		JWTPublicKey: pubPEM,
		APIKeys:      []string{"valid-key"},
	}

	t.Run("valid bearer token", func(t *testing.T) {
		token := signToken(t, key, jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		result := Authenticate("Bearer "+token, cfg)
		require.True(t, result.Success)
		assert.Equal(t, "jwt", result.AuthType)
		assert.Equal(t, "alice", result.AuthSubject)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, key, jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		})

		result := Authenticate("Bearer "+token, cfg)
		assert.False(t, result.Success)
	})

	t.Run("token signed by another key", func(t *testing.T) {
		otherKey, _ := testKeyPair(t)
		token := signToken(t, otherKey, jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		result := Authenticate("Bearer "+token, cfg)
		assert.False(t, result.Success)
	})

	t.Run("valid api key", func(t *testing.T) {
		result := Authenticate("ApiKey valid-key", cfg)
		require.True(t, result.Success)
		assert.Equal(t, "apikey", result.AuthType)
	})

	t.Run("invalid api key", func(t *testing.T) {
		result := Authenticate("ApiKey wrong-key", cfg)
		assert.False(t, result.Success)
	})

	t.Run("missing header", func(t *testing.T) {
		result := Authenticate("", cfg)
		assert.False(t, result.Success)
	})

	t.Run("malformed header", func(t *testing.T) {
		result := Authenticate("Bearer", cfg)
		assert.False(t, result.Success)
	})

	t.Run("unsupported scheme", func(t *testing.T) {
		result := Authenticate("Basic dXNlcjpwYXNz", cfg)
		assert.False(t, result.Success)
	})

	t.Run("no jwt key configured", func(t *testing.T) {
		token := signToken(t, key, jwt.RegisteredClaims{Subject: "alice"})
		result := Authenticate("Bearer "+token, AuthConfig{APIKeys: []string{"valid-key"}})
		assert.False(t, result.Success)
	})
}
