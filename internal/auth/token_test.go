package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodiegram/internal/domain"
)

func TestIssueSignedToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 30*time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	signed, err := issuer.Issue(&domain.User{ID: 42, Email: "ada@example.com"}, now)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(func() time.Time { return now }))
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "42", claims["sub"])
	assert.Equal(t, "ada@example.com", claims["email"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Equal(t, now.Add(30*time.Minute).Unix(), exp.Unix())
}

func TestIssueRequiresSecret(t *testing.T) {
	issuer := NewTokenIssuer("", time.Hour)

	_, err := issuer.Issue(&domain.User{ID: 1}, time.Now())
	assert.Error(t, err)
}

func TestIssueDefaultsTTL(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 0)
	now := time.Now()

	signed, err := issuer.Issue(&domain.User{ID: 1, Email: "a@b.c"}, now)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	exp, err := token.Claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour).Unix(), exp.Unix())
}
