package domain

import "time"

// Role separates employees, who submit leave requests, from managers, who
// decide them.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleManager
}

// User is the domain model for an account. Email is unique and stored
// lowercased. The balance is mutated only by the leave workflow on approval.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Balance      LeaveBalance
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
