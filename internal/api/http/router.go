package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Phin0508/eamts-sub003/internal/api/http/handlers"
	"github.com/Phin0508/eamts-sub003/internal/auth"
	"github.com/Phin0508/eamts-sub003/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Tickets *handlers.TicketsHandler
	Team    *handlers.TeamHandler
	Session *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes. Every scoped page sits behind the same
// session middleware and role guard; no page re-implements the check.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/login", cfg.Auth.Login)
	app.Post("/logout", cfg.Session.Handle, cfg.Auth.Logout)

	employee := app.Group("/tickets", cfg.Session.Handle, auth.RequireRole(domain.RoleEmployee))
	employee.Get("/", cfg.Tickets.MyTickets)
	employee.Post("/", cfg.Tickets.CreateTicket)

	manager := app.Group("/manager", cfg.Session.Handle, auth.RequireRole(domain.RoleManager))
	manager.Get("/dashboard", cfg.Team.Dashboard)
	manager.Get("/team", cfg.Team.ListTeam)
	manager.Get("/tickets", cfg.Team.DepartmentTickets)
	manager.Get("/employees/:id/assets", cfg.Team.EmployeeAssets)
	manager.Get("/employees/:id/tickets", cfg.Team.EmployeeTickets)
}
