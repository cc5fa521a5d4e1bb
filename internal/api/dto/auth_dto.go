package dto

import "github.com/utpal5/Ticketingsystem/internal/domain"

// LoginRequest carries credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse returns the issued token and the authenticated user.
type LoginResponse struct {
	Token string          `json:"token"`
	User  domain.Identity `json:"user"`
}

// SignupRequest carries self-registration fields. Role is not
// accepted; signups are always end users.
type SignupRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}
