package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/utpal5/Ticketingsystem/internal/api/dto"
	"github.com/utpal5/Ticketingsystem/internal/auth"
	"github.com/utpal5/Ticketingsystem/internal/service"
	"github.com/utpal5/Ticketingsystem/pkg/util"
)

// AuthHandler manages login, signup, and identity resolution.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return util.NewValidationError("username and password required", nil)
	}

	identity, token, _, err := h.service.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.LoginResponse{Token: token, User: *identity})
}

// Signup POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	identity, err := h.service.Signup(c.UserContext(), service.SignupInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(identity)
}

// Me GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return util.NewAuthenticationError("")
	}
	return c.JSON(identity)
}
