package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/leavedesk/leave-service/internal/api/http/handlers"
	"github.com/leavedesk/leave-service/internal/auth"
	"github.com/leavedesk/leave-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Leaves         *handlers.LeaveHandler
	Manager        *handlers.ManagerHandler
	Dashboard      *handlers.DashboardHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/health", cfg.Health.Live)
	api.Get("/health/ready", cfg.Health.Ready)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	leaves := api.Group("/leaves", cfg.AuthMiddleware.Handle)

	employee := auth.RequireRole(domain.RoleEmployee)
	manager := auth.RequireRole(domain.RoleManager)

	// Fixed paths are registered before the :id routes so "all" and
	// "pending" are never captured as ids.
	leaves.Get("/my-requests", employee, cfg.Leaves.ListMine)
	leaves.Get("/balance", employee, cfg.Leaves.Balance)
	leaves.Get("/all", manager, cfg.Manager.ListAll)
	leaves.Get("/pending", manager, cfg.Manager.ListPending)
	leaves.Post("/", employee, cfg.Leaves.Apply)
	leaves.Delete("/:id", employee, cfg.Leaves.Cancel)
	leaves.Put("/:id/approve", manager, cfg.Manager.Approve)
	leaves.Put("/:id/reject", manager, cfg.Manager.Reject)

	dashboard := api.Group("/dashboard", cfg.AuthMiddleware.Handle)
	dashboard.Get("/employee", employee, cfg.Dashboard.Employee)
	dashboard.Get("/manager", manager, cfg.Dashboard.Manager)
}
