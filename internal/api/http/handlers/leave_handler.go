package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/leavedesk/leave-service/internal/api/dto"
	"github.com/leavedesk/leave-service/internal/auth"
	"github.com/leavedesk/leave-service/internal/domain"
	"github.com/leavedesk/leave-service/internal/service"
	apperrors "github.com/leavedesk/leave-service/pkg/util"
)

// LeaveHandler manages employee leave endpoints.
type LeaveHandler struct {
	leaves *service.LeaveService
}

// NewLeaveHandler constructs handler.
func NewLeaveHandler(leaveService *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaves: leaveService}
}

// Apply POST /api/leaves.
func (h *LeaveHandler) Apply(c *fiber.Ctx) error {
	principal, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.ApplyLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.LeaveType == "" || req.StartDate == "" || req.EndDate == "" || req.Reason == "" {
		return apperrors.NewValidationError("all fields are required", nil)
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return apperrors.NewValidationError("invalid startDate", nil)
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return apperrors.NewValidationError("invalid endDate", nil)
	}

	request, err := h.leaves.Apply(c.Context(), principal, service.ApplyInput{
		LeaveType: domain.LeaveType(req.LeaveType),
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"message":      "Leave request submitted successfully",
		"leaveRequest": dto.NewLeaveRequestResponse(request),
	})
}

// ListMine GET /api/leaves/my-requests.
func (h *LeaveHandler) ListMine(c *fiber.Ctx) error {
	principal, err := currentUser(c)
	if err != nil {
		return err
	}

	status, err := parseStatus(c.Query("status"))
	if err != nil {
		return err
	}

	requests, err := h.leaves.ListMine(c.Context(), principal.ID, status)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"leaveRequests": dto.NewLeaveRequestResponses(requests),
		"total":         len(requests),
	})
}

// Balance GET /api/leaves/balance.
func (h *LeaveHandler) Balance(c *fiber.Ctx) error {
	principal, err := currentUser(c)
	if err != nil {
		return err
	}

	balance, err := h.leaves.Balance(c.Context(), principal.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"leaveBalance": dto.NewLeaveBalanceResponse(balance),
	})
}

// Cancel DELETE /api/leaves/:id.
func (h *LeaveHandler) Cancel(c *fiber.Ctx) error {
	principal, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.leaves.Cancel(c.Context(), principal.ID, c.Params("id")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Leave request cancelled successfully",
	})
}

func currentUser(c *fiber.Ctx) (*domain.User, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return principal.User, nil
}

func parseDate(val string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", val); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, val)
}

func parseStatus(val string) (*domain.LeaveStatus, error) {
	if val == "" {
		return nil, nil
	}
	status := domain.LeaveStatus(val)
	if !status.Valid() {
		return nil, apperrors.NewValidationError("unknown status filter", nil)
	}
	return &status, nil
}
