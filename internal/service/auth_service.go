package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookmark-api/internal/auth"
	"bookmark-api/internal/domain"
	"bookmark-api/internal/repository"
)

var (
	// ErrUserExists is returned when attempting to sign up with an email
	// already in use.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound indicates signin with an unknown email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPassword indicates signin with a wrong password.
	ErrInvalidPassword = errors.New("invalid password")
)

// AuthPayload is the result of a successful signup or signin.
type AuthPayload struct {
	ID          int64
	AccessToken string
}

// AuthService handles account creation and credential verification.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (*AuthPayload, error)
	Signin(ctx context.Context, email, password string) (*AuthPayload, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
	}
}

func (s *authService) Signup(ctx context.Context, email, password string) (*AuthPayload, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.New("email is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return s.issuePayload(user)
}

func (s *authService) Signin(ctx context.Context, email, password string) (*AuthPayload, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	ok, err := auth.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidPassword
	}

	return s.issuePayload(user)
}

func (s *authService) issuePayload(user *domain.User) (*AuthPayload, error) {
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthPayload{
		ID:          user.ID,
		AccessToken: token,
	}, nil
}
