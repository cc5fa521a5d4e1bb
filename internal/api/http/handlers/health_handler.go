package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/utpal5/Ticketingsystem/internal/persistence"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	postgres    *persistence.Postgres
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName string, postgres *persistence.Postgres) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, postgres: postgres}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
	})
}

// Ready reports service readiness by checking the database.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := h.postgres.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "DEPENDENCY_UNAVAILABLE",
				"message": "database unavailable",
			},
		})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}
