package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	token, expiresAt, err := svc.Generate(42, "analyst")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, time.Minute)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "analyst", claims.Username)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer := NewJWTService("secret-a", 15)
	verifier := NewJWTService("secret-b", 15)

	token, _, err := issuer.Generate(1, "analyst")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", hash)

	assert.NoError(t, hasher.Verify(hash, "s3cretpass"))
	assert.Error(t, hasher.Verify(hash, "wrong"))
}
