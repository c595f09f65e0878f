package domain

import "time"

// LeaveType enumerates the independent balance pools.
type LeaveType string

const (
	LeaveTypeSick     LeaveType = "sick"
	LeaveTypeCasual   LeaveType = "casual"
	LeaveTypeVacation LeaveType = "vacation"
)

// LeaveTypes lists every known type in canonical order.
func LeaveTypes() []LeaveType {
	return []LeaveType{LeaveTypeSick, LeaveTypeCasual, LeaveTypeVacation}
}

// Valid reports whether the leave type is a known value.
func (t LeaveType) Valid() bool {
	switch t {
	case LeaveTypeSick, LeaveTypeCasual, LeaveTypeVacation:
		return true
	}
	return false
}

// LeaveBalance maps each leave type to its remaining whole-day count.
// Values are non-negative at rest; the workflow engine refuses any debit
// that would go below zero.
type LeaveBalance map[LeaveType]int

// Default allotment granted at registration.
const (
	DefaultSickDays     = 10
	DefaultCasualDays   = 5
	DefaultVacationDays = 5
)

// DefaultLeaveBalance is the single source of default allotments; both the
// registration path and tests reference it rather than repeating constants.
func DefaultLeaveBalance() LeaveBalance {
	return LeaveBalance{
		LeaveTypeSick:     DefaultSickDays,
		LeaveTypeCasual:   DefaultCasualDays,
		LeaveTypeVacation: DefaultVacationDays,
	}
}

// Days returns the remaining days for a type, zero when absent.
func (b LeaveBalance) Days(t LeaveType) int {
	return b[t]
}

// LeaveStatus enumerates request lifecycle states. Pending is initial;
// approved and rejected are terminal. Cancellation deletes the entity
// instead of setting a status.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// Valid reports whether the status is a known value.
func (s LeaveStatus) Valid() bool {
	switch s {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected:
		return true
	}
	return false
}

// LeaveRequest is the aggregate for a leave application. UserName and
// UserEmail are denormalized copies taken at creation time and never
// re-synced. TotalDays is the business-day count computed at creation and
// stored, not recomputed later. Dates are midnight-normalized instants and
// the interval is inclusive on both ends.
type LeaveRequest struct {
	ID             string
	UserID         string
	UserName       string
	UserEmail      string
	LeaveType      LeaveType
	StartDate      time.Time
	EndDate        time.Time
	TotalDays      int
	Reason         string
	Status         LeaveStatus
	ManagerComment string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
