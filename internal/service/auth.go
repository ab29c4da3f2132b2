package service

import (
	"context"
	"errors"
	"time"

	"github.com/wardrobe/wardrobe-go/internal/crypto"
	"github.com/wardrobe/wardrobe-go/internal/model"
	"github.com/wardrobe/wardrobe-go/internal/repository"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password; callers must never distinguish the two.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrUnauthenticated covers every token failure on authenticated
	// requests, again without distinguishing the reason.
	ErrUnauthenticated  = errors.New("could not validate credentials")
	ErrUsernameRequired = errors.New("username is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrUserExists       = errors.New("username already registered")
)

// UserStore is the subset of user persistence the auth flow needs.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// AuthService handles registration, login and token-based
// authentication.
type AuthService struct {
	users    UserStore
	issuer   *crypto.TokenIssuer
	tokenTTL time.Duration
}

// NewAuthService creates a new AuthService issuing tokens with the
// given TTL.
func NewAuthService(users UserStore, issuer *crypto.TokenIssuer, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		issuer:   issuer,
		tokenTTL: tokenTTL,
	}
}

// Register creates a new user account. Username collisions are
// pre-checked; email uniqueness is left to the storage constraint and
// mapped to the same conflict error.
func (s *AuthService) Register(ctx context.Context, req model.CreateUserRequest) (model.UserResponse, error) {
	if req.Username == "" {
		return model.UserResponse{}, ErrUsernameRequired
	}
	if req.Email == "" {
		return model.UserResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.UserResponse{}, ErrPasswordRequired
	}

	_, err := s.users.GetByUsername(ctx, req.Username)
	if err == nil {
		return model.UserResponse{}, ErrUserExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return model.UserResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return model.UserResponse{}, ErrUserExists
		}
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// Login verifies a username/password pair and issues a bearer token
// with subject=username on success.
func (s *AuthService) Login(ctx context.Context, username, password string) (model.TokenResponse, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.TokenResponse{}, ErrInvalidCredentials
		}
		return model.TokenResponse{}, err
	}

	if !crypto.VerifyPassword(password, user.PasswordHash) {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.Username, s.tokenTTL)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.ID,
	}, nil
}

// Authenticate resolves a bearer token to the user it was issued for.
// A valid token whose subject no longer exists is rejected the same
// way as an invalid one.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	subject, err := s.issuer.Verify(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	return user, nil
}
