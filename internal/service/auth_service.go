package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"arbejdstid/internal/auth"
	apperrors "arbejdstid/internal/errors"
	"arbejdstid/internal/model"
	"arbejdstid/internal/repository"
)

const bcryptCost = 10

// AuthService handles authentication and session lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
	Logout(ctx context.Context, sessionID string) error
	Resolve(ctx context.Context, sessionID string) (*model.User, error)
}

type authService struct {
	userRepo     repository.UserRepository
	tokenService *auth.TokenService
	sessionStore auth.SessionStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, tokenService *auth.TokenService, sessionStore auth.SessionStoreInterface) AuthService {
	return &authService{
		userRepo:     userRepo,
		tokenService: tokenService,
		sessionStore: sessionStore,
	}
}

// Register creates a new user with a bcrypt password hash. Username
// uniqueness is guarded by the store's unique index, not a read-then-write,
// so concurrent registrations of the same name collapse to one row.
func (s *authService) Register(ctx context.Context, username, password string) (*model.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and establishes a session. Unknown users
// and wrong passwords both come back as ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	sessionID, token, err := s.tokenService.Generate(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}

	if err := s.sessionStore.Put(ctx, sessionID, user.ID, user.Username, s.tokenService.TTL()); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}

	return token, user, nil
}

// Logout tears down the server-side session record.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessionStore.Delete(ctx, sessionID)
}

// Resolve maps a session id to its user. A missing session record or a
// vanished user both surface as ErrSessionExpired.
func (s *authService) Resolve(ctx context.Context, sessionID string) (*model.User, error) {
	userID, _, err := s.sessionStore.Get(ctx, sessionID)
	if err != nil {
		return nil, apperrors.ErrSessionExpired
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrSessionExpired
	}
	return user, nil
}
