package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/utpal5/Ticketingsystem/internal/authz"
	"github.com/utpal5/Ticketingsystem/internal/domain"
	"github.com/utpal5/Ticketingsystem/internal/repository"
	"github.com/utpal5/Ticketingsystem/pkg/util"
)

const identityKey = "auth_identity"

// Middleware validates bearer tokens and loads the caller's identity.
type Middleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes. The identity is
// reloaded from storage on every request so role changes and deletions
// take effect immediately, not at token expiry.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if header == "" {
		return util.NewAuthenticationError("missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return util.NewAuthenticationError("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return util.NewAuthenticationError("invalid token")
	}

	account, err := m.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewAuthenticationError("account no longer exists")
		}
		return util.ToDomainError(err)
	}

	identity := account.Identity
	c.Locals(identityKey, &identity)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (*domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*domain.Identity)
	return identity, ok
}

// RequireRole ensures the caller holds one of the allowed roles.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return util.NewAuthenticationError("")
		}
		if !authz.HasAnyRole(identity, allowed...) {
			return util.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
