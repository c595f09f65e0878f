package dto

import (
	"time"

	"github.com/leavedesk/leave-service/internal/domain"
)

// RegisterRequest payload for new accounts. Role defaults to employee.
type RegisterRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UserResponse is the public shape of an account.
type UserResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	Role         domain.Role          `json:"role"`
	LeaveBalance LeaveBalanceResponse `json:"leaveBalance"`
}

// NewUserResponse converts a domain user, never exposing the password hash.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		LeaveBalance: NewLeaveBalanceResponse(user.Balance),
	}
}
