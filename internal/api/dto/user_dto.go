package dto

import "github.com/utpal5/Ticketingsystem/internal/domain"

// CreateUserRequest carries admin user-provisioning payload.
type CreateUserRequest struct {
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Password  string      `json:"password"`
	Role      domain.Role `json:"role"`
}

// UpdateRoleRequest carries a role change.
type UpdateRoleRequest struct {
	Role domain.Role `json:"role"`
}
