package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internhub/internal/portal"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestDecodeIdentity(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signToken(t, jwt.MapClaims{
		"user_id": "u-1",
		"role":    "Company",
		"email":   "hr@acme.test",
		"exp":     exp.Unix(),
	})

	identity, err := DecodeIdentity(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", identity.UserID)
	assert.Equal(t, portal.RoleCompany, identity.Role)
	assert.Equal(t, "hr@acme.test", identity.Email)
	assert.True(t, identity.ExpiresAt.Equal(exp))
	assert.False(t, identity.Expired(time.Now()))
}

func TestDecodeIdentityFallsBackToSubject(t *testing.T) {
	identity, err := DecodeIdentity(signToken(t, jwt.MapClaims{"sub": "u-9", "role": "student"}))
	require.NoError(t, err)
	assert.Equal(t, "u-9", identity.UserID)
	assert.True(t, identity.ExpiresAt.IsZero())
	assert.False(t, identity.Expired(time.Now()))
}

func TestDecodeIdentityRejectsGarbage(t *testing.T) {
	_, err := DecodeIdentity("not-a-jwt")
	assert.Error(t, err)
}

func TestAccessorToken(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir() + "/session.json")
	accessor := NewAccessor(store)

	token, err := accessor.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save(ctx, Session{Token: "opaque-token"}))
	token, err = accessor.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)

	expired := signToken(t, jwt.MapClaims{"sub": "u-1", "exp": time.Now().Add(-time.Minute).Unix()})
	require.NoError(t, store.Save(ctx, Session{Token: expired}))
	_, err = accessor.Token(ctx)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestAccessorLoginFillsFromClaims(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir() + "/session.json")
	accessor := NewAccessor(store)

	token := signToken(t, jwt.MapClaims{"user_id": "u-7", "role": "student", "email": "ana@uni.test"})
	saved, err := accessor.Login(ctx, portal.LoginResult{Token: token}, "")
	require.NoError(t, err)
	assert.Equal(t, "u-7", saved.UserID)
	assert.Equal(t, portal.RoleStudent, saved.Role)
	assert.Equal(t, "ana@uni.test", saved.Email)

	current, identity, err := accessor.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, current)
	assert.Equal(t, "u-7", identity.UserID)

	require.NoError(t, accessor.Logout(ctx))
	_, _, err = accessor.Current(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
