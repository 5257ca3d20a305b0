// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package auth_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/internal/config"
	"todoapp/internal/testutil"

	authsvc "todoapp/internal/services/auth"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:      "test-secret",
		Issuer:      "todoapp",
		Audience:    "todoapp",
		ExpiryHours: 72,
	}
}

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, salt, err := authsvc.HashPassword("correct horse battery staple")

	require.NoError(t, err)
	assert.True(t, authsvc.VerifyPassword("correct horse battery staple", hash, salt))
	assert.False(t, authsvc.VerifyPassword("wrong password", hash, salt))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	_, salt1, err := authsvc.HashPassword("password")
	require.NoError(t, err)
	_, salt2, err := authsvc.HashPassword("password")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
}

func TestRegister(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	service := authsvc.NewService(repo, testJWTConfig())

	user, err := service.Register(context.Background(), "testuser", "password123")

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "testuser", user.Username)
	assert.False(t, user.IsAdmin)
	assert.True(t, authsvc.VerifyPassword("password123", user.PasswordHash, user.PasswordSalt))
}

func TestRegister_InvalidUsername(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	service := authsvc.NewService(repo, testJWTConfig())

	tests := []struct {
		name     string
		username string
	}{
		{"empty", ""},
		{"too short", "ab"},
		{"whitespace", "user name"},
		{"symbols", "user@name"},
		{"too long", "a_very_long_username_that_exceeds_the_limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), tt.username, "password123")
			assert.ErrorIs(t, err, authsvc.ErrInvalidUsername)
		})
	}
}

func TestRegister_EmptyPassword(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	service := authsvc.NewService(repo, testJWTConfig())

	_, err := service.Register(context.Background(), "testuser", "")

	assert.ErrorIs(t, err, authsvc.ErrPasswordRequired)
}

func TestRegister_UsernameTaken(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	service := authsvc.NewService(repo, testJWTConfig())
	ctx := context.Background()

	_, err := service.Register(ctx, "testuser", "password123")
	require.NoError(t, err)

	_, err = service.Register(ctx, "testuser", "otherpassword")
	assert.ErrorIs(t, err, authsvc.ErrUsernameTaken)
}

func TestAuthenticate(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	cfg := testJWTConfig()
	service := authsvc.NewService(repo, cfg)
	ctx := context.Background()

	user, err := service.Register(ctx, "testuser", "password123")
	require.NoError(t, err)

	tokenString, err := service.Authenticate(ctx, "testuser", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims := &authsvc.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(cfg.Secret), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, strconv.FormatInt(user.ID, 10), claims.Subject)
	assert.Equal(t, "testuser", claims.Username)
	assert.False(t, claims.IsAdmin)
	assert.Equal(t, cfg.Issuer, claims.Issuer)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	service := authsvc.NewService(repo, testJWTConfig())

	_, err := service.Authenticate(context.Background(), "nonexistent", "password123")

	assert.ErrorIs(t, err, authsvc.ErrInvalidCredentials)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	service := authsvc.NewService(repo, testJWTConfig())
	ctx := context.Background()

	_, err := service.Register(ctx, "testuser", "password123")
	require.NoError(t, err)

	_, err = service.Authenticate(ctx, "testuser", "wrongpassword")
	assert.ErrorIs(t, err, authsvc.ErrInvalidCredentials)
}

func TestIssueToken_AdminClaim(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	cfg := testJWTConfig()
	service := authsvc.NewService(repo, cfg)

	admin := testutil.NewTestUser(t, repo, "AdminUser", true)

	tokenString, err := service.IssueToken(admin)
	require.NoError(t, err)

	claims := &authsvc.Claims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(cfg.Secret), nil
	})
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}
