package auth

import (
	"testing"
	"time"

	"github.com/Alexandre-Machu/BagExpress/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", TTL: time.Hour})

	token, err := svc.GenerateToken("u1", "alice@example.com", "CUSTOMER")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "CUSTOMER", claims.Role)
	assert.Equal(t, "bagexpress", claims.Issuer)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService(config.JWTConfig{Secret: "secret-a", TTL: time.Hour})
	verifier := NewJWTService(config.JWTConfig{Secret: "secret-b", TTL: time.Hour})

	token, err := issuer.GenerateToken("u1", "alice@example.com", "CUSTOMER")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", TTL: -time.Minute})

	token, err := svc.GenerateToken("u1", "alice@example.com", "CUSTOMER")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_Garbage(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", TTL: time.Hour})

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
}
