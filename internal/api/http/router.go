package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/utpal5/Ticketingsystem/internal/api/http/handlers"
	"github.com/utpal5/Ticketingsystem/internal/auth"
	"github.com/utpal5/Ticketingsystem/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes under the /api prefix.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	tickets := api.Group("/tickets", cfg.AuthMiddleware.Handle)
	// Literal segments must register ahead of the :id routes.
	tickets.Get("/my", cfg.Tickets.My)
	tickets.Get("/assigned", auth.RequireRole(domain.RoleSupportAgent, domain.RoleAdmin), cfg.Tickets.Assigned)
	tickets.Get("/", auth.RequireRole(domain.RoleAdmin), cfg.Tickets.All)
	tickets.Post("/", cfg.Tickets.Create)
	tickets.Get("/:id", cfg.Tickets.Get)
	tickets.Patch("/:id/status", auth.RequireRole(domain.RoleSupportAgent, domain.RoleAdmin), cfg.Tickets.UpdateStatus)
	tickets.Patch("/:id/assign", auth.RequireRole(domain.RoleAdmin), cfg.Tickets.Assign)
	tickets.Get("/:id/comments", cfg.Tickets.Comments)
	tickets.Post("/:id/comments", cfg.Tickets.AddComment)

	users := api.Group("/users", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	users.Get("/support-agents", cfg.Users.SupportAgents)
	users.Get("/", cfg.Users.List)
	users.Post("/", cfg.Users.Create)
	users.Patch("/:id/role", cfg.Users.UpdateRole)
	users.Delete("/:id", cfg.Users.Delete)
}
