// Package service holds the auth gate and the project access layer. Both sit between
// the HTTP handlers and the stores and speak the common error taxonomy.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/crucial707/codepad/internal/auth"
	"github.com/crucial707/codepad/internal/common"
	"github.com/crucial707/codepad/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor for new password digests.
const PasswordCost = bcrypt.DefaultCost

// UserStore is the credential store used by AuthService.
type UserStore interface {
	Create(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService registers users, checks credentials and issues tokens.
type AuthService struct {
	users  UserStore
	tokens *auth.Tokens
	cost   int
}

// NewAuthService constructs an AuthService.
func NewAuthService(users UserStore, tokens *auth.Tokens) *AuthService {
	return &AuthService{users: users, tokens: tokens, cost: PasswordCost}
}

// Register hashes password and stores a new user. Duplicate emails are accepted.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", common.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	user, err := s.users.Create(ctx, username, email, string(hash))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	return user, nil
}

// Login checks the password against the stored digest and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrNotFound
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", common.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, user.Username)
}

// Verify validates a presented token.
func (s *AuthService) Verify(token string) (*auth.Claims, error) {
	return s.tokens.Verify(token)
}
