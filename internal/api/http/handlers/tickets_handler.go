package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/utpal5/Ticketingsystem/internal/api/dto"
	"github.com/utpal5/Ticketingsystem/internal/auth"
	"github.com/utpal5/Ticketingsystem/internal/domain"
	"github.com/utpal5/Ticketingsystem/internal/service"
	"github.com/utpal5/Ticketingsystem/pkg/util"
)

// TicketsHandler manages ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs the handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

func requireIdentity(c *fiber.Ctx) (*domain.Identity, error) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return nil, util.NewAuthenticationError("")
	}
	return identity, nil
}

func ticketID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, util.NewValidationError("invalid ticket id", nil)
	}
	return id, nil
}

// My GET /tickets/my.
func (h *TicketsHandler) My(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	tickets, err := h.service.ListMine(c.UserContext(), identity)
	if err != nil {
		return err
	}
	return c.JSON(tickets)
}

// All GET /tickets.
func (h *TicketsHandler) All(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	tickets, err := h.service.ListAll(c.UserContext(), identity)
	if err != nil {
		return err
	}
	return c.JSON(tickets)
}

// Assigned GET /tickets/assigned.
func (h *TicketsHandler) Assigned(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	tickets, err := h.service.ListAssigned(c.UserContext(), identity)
	if err != nil {
		return err
	}
	return c.JSON(tickets)
}

// Get GET /tickets/:id.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := ticketID(c)
	if err != nil {
		return err
	}
	ticket, err := h.service.Get(c.UserContext(), identity, id)
	if err != nil {
		return err
	}
	return c.JSON(ticket)
}

// Create POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.Create(c.UserContext(), identity, service.CreateTicketInput{
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(ticket)
}

// UpdateStatus PATCH /tickets/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := ticketID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.UpdateStatus(c.UserContext(), identity, id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(ticket)
}

// Assign PATCH /tickets/:id/assign.
func (h *TicketsHandler) Assign(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := ticketID(c)
	if err != nil {
		return err
	}
	var req dto.AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.Assign(c.UserContext(), identity, id, req.AssigneeID)
	if err != nil {
		return err
	}
	return c.JSON(ticket)
}

// Comments GET /tickets/:id/comments.
func (h *TicketsHandler) Comments(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := ticketID(c)
	if err != nil {
		return err
	}
	comments, err := h.service.Comments(c.UserContext(), identity, id)
	if err != nil {
		return err
	}
	return c.JSON(comments)
}

// AddComment POST /tickets/:id/comments.
func (h *TicketsHandler) AddComment(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := ticketID(c)
	if err != nil {
		return err
	}
	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	comment, err := h.service.AddComment(c.UserContext(), identity, id, req.Content)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(comment)
}
