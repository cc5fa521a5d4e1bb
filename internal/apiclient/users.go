package apiclient

import (
	"context"
	"fmt"

	"github.com/utpal5/Ticketingsystem/internal/domain"
)

// CreateUserRequest carries the POST /users payload. Admin-only.
type CreateUserRequest struct {
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Password  string      `json:"password"`
	Role      domain.Role `json:"role"`
}

type updateRoleRequest struct {
	Role domain.Role `json:"role"`
}

// Users lists every account. Admin-only server-side.
func (c *Client) Users(ctx context.Context) ([]domain.Identity, error) {
	var out []domain.Identity
	if err := c.doJSON(ctx, "GET", "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser provisions a new account with an explicit role.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.Identity, error) {
	var out domain.Identity
	if err := c.doJSON(ctx, "POST", "/users", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUserRole changes an account's role.
func (c *Client) UpdateUserRole(ctx context.Context, id int64, role domain.Role) (*domain.Identity, error) {
	var out domain.Identity
	if err := c.doJSON(ctx, "PATCH", fmt.Sprintf("/users/%d/role", id), updateRoleRequest{Role: role}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/users/%d", id), nil, nil)
}

// SupportAgents lists accounts eligible for ticket assignment.
func (c *Client) SupportAgents(ctx context.Context) ([]domain.Identity, error) {
	var out []domain.Identity
	if err := c.doJSON(ctx, "GET", "/users/support-agents", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
