package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/leavedesk/leave-service/internal/api/dto"
	"github.com/leavedesk/leave-service/internal/service"
)

// DashboardHandler serves aggregate views for both roles.
type DashboardHandler struct {
	dashboards *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboardService}
}

// Employee GET /api/dashboard/employee.
func (h *DashboardHandler) Employee(c *fiber.Ctx) error {
	principal, err := currentUser(c)
	if err != nil {
		return err
	}

	dashboard, err := h.dashboards.ForEmployee(c.Context(), principal.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"dashboard": dto.EmployeeDashboardResponse{
			TotalLeaves:    dashboard.TotalLeaves,
			PendingLeaves:  dashboard.PendingLeaves,
			ApprovedLeaves: dashboard.ApprovedLeaves,
			RejectedLeaves: dashboard.RejectedLeaves,
			LeaveBalance:   dto.NewLeaveBalanceResponse(dashboard.Balance),
			RecentRequests: dto.NewLeaveRequestResponses(dashboard.RecentRequests),
		},
	})
}

// Manager GET /api/dashboard/manager.
func (h *DashboardHandler) Manager(c *fiber.Ctx) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	dashboard, err := h.dashboards.ForManager(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"dashboard": dto.ManagerDashboardResponse{
			TotalEmployees:       dashboard.TotalEmployees,
			TotalPendingRequests: dashboard.TotalPendingRequests,
			TotalApprovedToday:   dashboard.TotalApprovedToday,
			TotalRejectedToday:   dashboard.TotalRejectedToday,
			RecentRequests:       dto.NewLeaveRequestResponses(dashboard.RecentRequests),
		},
	})
}
