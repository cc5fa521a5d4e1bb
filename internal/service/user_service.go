package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/utpal5/Ticketingsystem/internal/auth"
	"github.com/utpal5/Ticketingsystem/internal/domain"
	"github.com/utpal5/Ticketingsystem/internal/repository"
	"github.com/utpal5/Ticketingsystem/pkg/util"
)

// UserService coordinates admin account management. Role gating happens
// in the router; the service enforces the rules that need entity state.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// List returns every account.
func (s *UserService) List(ctx context.Context) ([]domain.Identity, error) {
	return s.users.List(ctx)
}

// SupportAgents returns accounts eligible for ticket assignment.
func (s *UserService) SupportAgents(ctx context.Context) ([]domain.Identity, error) {
	return s.users.ListSupport(ctx)
}

// CreateUserInput carries admin user-provisioning fields.
type CreateUserInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	Role      domain.Role
}

// Create provisions an account with an explicit role.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.Identity, error) {
	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, util.NewValidationError("username and password required", nil)
	}
	if !input.Role.Valid() {
		return nil, util.NewValidationError("invalid role", map[string]any{"role": input.Role})
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
			Role:      input.Role,
		},
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, account); err != nil {
		return nil, err
	}
	identity := account.Identity
	return &identity, nil
}

// UpdateRole changes an account's role.
func (s *UserService) UpdateRole(ctx context.Context, id int64, role domain.Role) (*domain.Identity, error) {
	if !role.Valid() {
		return nil, util.NewValidationError("invalid role", map[string]any{"role": role})
	}
	identity, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, err
	}
	return identity, nil
}

// Delete removes an account. Admins cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, actor *domain.Identity, id int64) error {
	if actor != nil && actor.ID == id {
		return util.NewValidationError("cannot delete your own account", nil)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("user", map[string]any{"id": id})
		}
		return err
	}
	return nil
}
