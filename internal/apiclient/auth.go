package apiclient

import (
	"context"

	"github.com/utpal5/Ticketingsystem/internal/domain"
)

// LoginRequest carries credentials for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the POST /auth/login payload.
type LoginResponse struct {
	Token string          `json:"token"`
	User  domain.Identity `json:"user"`
}

// SignupRequest carries self-registration fields. The backend forces
// role USER on signup.
type SignupRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// Login exchanges credentials for a token and the authenticated
// identity. The token is not installed on the client; that is the
// session manager's call.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.doJSON(ctx, "POST", "/auth/login", LoginRequest{Username: username, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a new end-user account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*domain.Identity, error) {
	var out domain.Identity
	if err := c.doJSON(ctx, "POST", "/auth/signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me resolves the current token to an identity.
func (c *Client) Me(ctx context.Context) (*domain.Identity, error) {
	var out domain.Identity
	if err := c.doJSON(ctx, "GET", "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
