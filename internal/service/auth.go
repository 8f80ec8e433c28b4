// Package service provides business-logic services for authentication and
// item management, delegating persistence to repository interfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/atinyakov/pledgevault/internal/models"
)

// UserRepository defines the persistence operations
// required by the authentication service.
type UserRepository interface {
	// CreateUser creates a new user record. Returns ErrDuplicateEmail
	// if the email is already taken.
	CreateUser(ctx context.Context, user models.User) error
	// GetUserByEmail retrieves the user with the given email.
	// Returns ErrNotFound if no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID retrieves the user with the given id.
	// Returns ErrNotFound if no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// TokenIssuer produces a signed identity token for a user id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// AuthService implements registration, login and identity lookup.
type AuthService struct {
	// repo performs the data-layer operations.
	repo UserRepository
	// tokens issues identity tokens after successful auth.
	tokens TokenIssuer
}

// NewAuthService constructs an AuthService using the provided repository
// and token issuer.
func NewAuthService(repo UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a new user with a hashed password and issues a token
// for it. The plaintext password is never stored. Fails with ErrValidation
// if any field is missing and ErrDuplicateEmail if the email is taken.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return &user, token, nil
}

// Login verifies the email/password pair against the stored digest and
// issues a token. An unknown email and a wrong password both fail with
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.repo.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Me resolves an authenticated identity back to its user record.
// Returns ErrNotFound if the identity no longer maps to a stored user.
func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

// normalizeEmail canonicalizes an email for storage and lookup.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
