package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/leavedesk/leave-service/internal/api/dto"
	"github.com/leavedesk/leave-service/internal/service"
	apperrors "github.com/leavedesk/leave-service/pkg/util"
)

// ManagerHandler manages manager-only leave endpoints.
type ManagerHandler struct {
	leaves *service.LeaveService
}

// NewManagerHandler constructs handler.
func NewManagerHandler(leaveService *service.LeaveService) *ManagerHandler {
	return &ManagerHandler{leaves: leaveService}
}

// ListAll GET /api/leaves/all.
func (h *ManagerHandler) ListAll(c *fiber.Ctx) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	status, err := parseStatus(c.Query("status"))
	if err != nil {
		return err
	}

	input := service.ListAllInput{
		Status: status,
		Page:   parseInt(c.Query("page"), 1),
		Limit:  parseInt(c.Query("limit"), 10),
	}
	if userID := c.Query("userId"); userID != "" {
		input.UserID = &userID
	}
	if search := c.Query("search"); search != "" {
		input.Search = &search
	}

	result, err := h.leaves.ListAll(c.Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"leaveRequests": dto.NewLeaveRequestResponses(result.Requests),
		"total":         result.Total,
		"totalPages":    result.TotalPages,
	})
}

// ListPending GET /api/leaves/pending.
func (h *ManagerHandler) ListPending(c *fiber.Ctx) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	requests, err := h.leaves.ListPending(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"pendingRequests": dto.NewLeaveRequestResponses(requests),
		"total":           len(requests),
	})
}

// Approve PUT /api/leaves/:id/approve.
func (h *ManagerHandler) Approve(c *fiber.Ctx) error {
	manager, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.DecisionRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	request, err := h.leaves.Approve(c.Context(), manager.ID, c.Params("id"), req.ManagerComment)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "Leave request approved successfully",
		"leaveRequest": dto.NewLeaveRequestResponse(request),
	})
}

// Reject PUT /api/leaves/:id/reject.
func (h *ManagerHandler) Reject(c *fiber.Ctx) error {
	manager, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	request, err := h.leaves.Reject(c.Context(), manager.ID, c.Params("id"), req.ManagerComment)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "Leave request rejected successfully",
		"leaveRequest": dto.NewLeaveRequestResponse(request),
	})
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
