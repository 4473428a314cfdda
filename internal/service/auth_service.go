package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"phorum/internal/auth"
	apperrors "phorum/internal/errors"
	"phorum/internal/metrics"
	"phorum/internal/model"
	"phorum/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and session lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	sessions   auth.SessionStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, sessions auth.SessionStoreInterface) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

// Register creates a regular user with a hashed password.
func (s *authService) Register(ctx context.Context, username, password string) (*model.User, error) {
	existing, err := s.users.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUsernameTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         model.RoleRegular,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.RegistrationsTotal.Inc()
	return user, nil
}

// Login authenticates by exact username match and establishes a session.
// Unknown usernames and wrong passwords return the same error.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, apperrors.ErrInvalidCredentials
	}

	// Constant-time comparison; also rejects the bot account, whose stored
	// hash is deliberately not a valid bcrypt digest.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, sessionID, err := s.jwtService.GenerateSessionToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}

	if err := s.sessions.StoreSession(ctx, sessionID, user.ID, s.jwtService.SessionTTL()); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

// Logout ends the session carried by the token. Invalid or already-expired
// tokens are a no-op so the operation stays idempotent.
func (s *authService) Logout(ctx context.Context, token string) error {
	sessionID, err := s.jwtService.ExtractSessionID(token)
	if err != nil {
		return nil
	}
	return s.sessions.DeleteSession(ctx, sessionID)
}
