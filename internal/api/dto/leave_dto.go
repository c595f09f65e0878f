package dto

import (
	"time"

	"github.com/leavedesk/leave-service/internal/domain"
)

// ApplyLeaveRequest payload. Dates are calendar dates (YYYY-MM-DD) or
// RFC3339 timestamps; time-of-day is discarded.
type ApplyLeaveRequest struct {
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

// DecisionRequest payload for approve/reject. The comment is optional on
// approval and mandatory on rejection.
type DecisionRequest struct {
	ManagerComment string `json:"managerComment"`
}

// LeaveRequestResponse is the external shape of a leave request.
type LeaveRequestResponse struct {
	ID             string             `json:"id"`
	UserID         string             `json:"userId"`
	UserName       string             `json:"userName"`
	UserEmail      string             `json:"userEmail"`
	LeaveType      domain.LeaveType   `json:"leaveType"`
	StartDate      time.Time          `json:"startDate"`
	EndDate        time.Time          `json:"endDate"`
	TotalDays      int                `json:"totalDays"`
	Reason         string             `json:"reason"`
	Status         domain.LeaveStatus `json:"status"`
	ManagerComment string             `json:"managerComment,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// NewLeaveRequestResponse converts a domain request.
func NewLeaveRequestResponse(request *domain.LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:             request.ID,
		UserID:         request.UserID,
		UserName:       request.UserName,
		UserEmail:      request.UserEmail,
		LeaveType:      request.LeaveType,
		StartDate:      request.StartDate,
		EndDate:        request.EndDate,
		TotalDays:      request.TotalDays,
		Reason:         request.Reason,
		Status:         request.Status,
		ManagerComment: request.ManagerComment,
		CreatedAt:      request.CreatedAt,
		UpdatedAt:      request.UpdatedAt,
	}
}

// NewLeaveRequestResponses converts a slice, keeping an empty slice over nil
// so JSON lists render as [].
func NewLeaveRequestResponses(requests []domain.LeaveRequest) []LeaveRequestResponse {
	items := make([]LeaveRequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, NewLeaveRequestResponse(&requests[i]))
	}
	return items
}

// LeaveBalanceResponse is the wire shape of the balance mapping.
type LeaveBalanceResponse struct {
	SickLeave     int `json:"sickLeave"`
	CasualLeave   int `json:"casualLeave"`
	VacationLeave int `json:"vacationLeave"`
}

// NewLeaveBalanceResponse converts the typed mapping.
func NewLeaveBalanceResponse(balance domain.LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		SickLeave:     balance.Days(domain.LeaveTypeSick),
		CasualLeave:   balance.Days(domain.LeaveTypeCasual),
		VacationLeave: balance.Days(domain.LeaveTypeVacation),
	}
}
