package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/utpal5/Ticketingsystem/internal/auth"
	"github.com/utpal5/Ticketingsystem/internal/config"
	"github.com/utpal5/Ticketingsystem/internal/domain"
	"github.com/utpal5/Ticketingsystem/internal/repository"
	"github.com/utpal5/Ticketingsystem/pkg/util"
)

// AuthService coordinates login and self-signup flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// TokenManager exposes the manager for the auth middleware.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login verifies credentials and issues a token. Bad username and bad
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Identity, string, time.Time, error) {
	account, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, util.NewAuthenticationError("invalid username or password")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, util.NewAuthenticationError("invalid username or password")
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(account.Identity.ID, account.Identity.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	identity := account.Identity
	return &identity, token, expiresAt, nil
}

// SignupInput carries self-registration fields.
type SignupInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// Signup creates an end-user account. The role is always USER here;
// privileged accounts are provisioned by an admin through UserService.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.Identity, error) {
	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, util.NewValidationError("username and password required", nil)
	}

	if _, err := s.users.GetByUsername(ctx, input.Username); err == nil {
		return nil, util.NewConflict("username already taken", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	account := &repository.Account{
		Identity: domain.Identity{
			Username:  input.Username,
			Email:     input.Email,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Role:      domain.RoleUser,
		},
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, account); err != nil {
		return nil, err
	}
	identity := account.Identity
	return &identity, nil
}
