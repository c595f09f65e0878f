package events

import (
	"time"

	"github.com/leavedesk/leave-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLeaveApplied   EventType = "leave_applied"
	EventLeaveApproved  EventType = "leave_approved"
	EventLeaveRejected  EventType = "leave_rejected"
	EventLeaveCancelled EventType = "leave_cancelled"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	RequestID string      `json:"request_id"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LeaveAppliedPayload payload.
type LeaveAppliedPayload struct {
	UserID    string           `json:"user_id"`
	LeaveType domain.LeaveType `json:"leave_type"`
	StartDate time.Time        `json:"start_date"`
	EndDate   time.Time        `json:"end_date"`
	TotalDays int              `json:"total_days"`
}

// LeaveDecidedPayload payload for approvals and rejections.
type LeaveDecidedPayload struct {
	UserID         string           `json:"user_id"`
	LeaveType      domain.LeaveType `json:"leave_type"`
	TotalDays      int              `json:"total_days"`
	ManagerComment string           `json:"manager_comment,omitempty"`
}

// LeaveCancelledPayload payload.
type LeaveCancelledPayload struct {
	UserID    string           `json:"user_id"`
	LeaveType domain.LeaveType `json:"leave_type"`
	StartDate time.Time        `json:"start_date"`
	EndDate   time.Time        `json:"end_date"`
}
