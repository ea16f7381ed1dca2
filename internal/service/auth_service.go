package service

import (
	"context"
	"errors"

	"github.com/ani/point-check-backend/internal/domain"
	"github.com/ani/point-check-backend/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmptyCredentials   = errors.New("username and password must not be empty")
	ErrUserNotFound       = errors.New("user not registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// RegistrationStatus distinguishes a fresh registration from an attempt to
// re-register an existing username. The latter is not an error.
type RegistrationStatus int

const (
	Registered RegistrationStatus = iota
	AlreadyRegistered
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a new user with a bcrypt password hash. Registering an
// existing username succeeds with AlreadyRegistered and leaves the stored
// hash untouched.
func (s *AuthService) Register(ctx context.Context, username, password string) (RegistrationStatus, error) {
	if username == "" || password == "" {
		return 0, ErrEmptyCredentials
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if exists {
		return AlreadyRegistered, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return 0, err
	}

	return Registered, nil
}

// Login verifies the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrEmptyCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, user.Username)
}

// Logout revokes the bearer token carried in the Authorization header.
// It succeeds even when the header carries no usable token.
func (s *AuthService) Logout(ctx context.Context, authHeader string) error {
	token := s.tokens.ExtractBearer(authHeader)
	if token == "" {
		return nil
	}
	return s.tokens.Revoke(ctx, token)
}

// GetByUsername loads a user record, for attaching as the request principal.
func (s *AuthService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}
