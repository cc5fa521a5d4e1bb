package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/utpal5/Ticketingsystem/internal/api/dto"
	"github.com/utpal5/Ticketingsystem/internal/service"
	"github.com/utpal5/Ticketingsystem/pkg/util"
)

// UsersHandler manages account administration endpoints. The router
// restricts every route here to ADMIN.
type UsersHandler struct {
	service *service.UserService
}

// NewUsersHandler constructs the handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{service: userService}
}

func userID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, util.NewValidationError("invalid user id", nil)
	}
	return id, nil
}

// List GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// SupportAgents GET /users/support-agents.
func (h *UsersHandler) SupportAgents(c *fiber.Ctx) error {
	agents, err := h.service.SupportAgents(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(agents)
}

// Create POST /users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	identity, err := h.service.Create(c.UserContext(), service.CreateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(identity)
}

// UpdateRole PATCH /users/:id/role.
func (h *UsersHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	identity, err := h.service.UpdateRole(c.UserContext(), id, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(identity)
}

// Delete DELETE /users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	actor, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := userID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), actor, id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
