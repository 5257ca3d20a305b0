// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package auth implements registration, credential verification and JWT
// issuance on top of the repository.
package auth

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"todoapp/internal/config"
	"todoapp/internal/models"
	"todoapp/internal/repository"
)

var (
	// ErrInvalidUsername is returned when the username fails format validation.
	ErrInvalidUsername = errors.New("invalid username format")
	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrPasswordRequired is returned when the password is empty.
	ErrPasswordRequired = errors.New("password is required")
	// ErrInvalidCredentials is returned for unknown users and wrong passwords alike.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,32}$`)

// Claims are the token claims consumed by the identity resolver.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// Service handles registration and authentication.
type Service struct {
	repo *repository.Repository
	cfg  *config.JWTConfig
}

// NewService creates a new auth service.
func NewService(repo *repository.Repository, cfg *config.JWTConfig) *Service {
	return &Service{repo: repo, cfg: cfg}
}

// Register validates and creates a new user account.
func (s *Service) Register(ctx context.Context, username, password string) (*models.User, error) {
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	exists, err := s.repo.UserExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, salt, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		PasswordSalt: salt,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the credentials and returns a signed access token.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !VerifyPassword(password, user.PasswordHash, user.PasswordSalt) {
		return "", ErrInvalidCredentials
	}
	return s.IssueToken(user)
}

// IssueToken signs an HS256 access token for the given user.
func (s *Service) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.ExpiryHours) * time.Hour)),
		},
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}
