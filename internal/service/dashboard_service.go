package service

import (
	"context"
	"time"

	"github.com/leavedesk/leave-service/internal/domain"
	"github.com/leavedesk/leave-service/internal/repository"
	"github.com/leavedesk/leave-service/pkg/dateutil"
	apperrors "github.com/leavedesk/leave-service/pkg/util"
)

// DashboardService aggregates counts for the employee and manager views.
type DashboardService struct {
	leaves   repository.LeaveRepository
	users    repository.UserRepository
	balances repository.BalanceRepository
}

// NewDashboardService constructs the service.
func NewDashboardService(leaves repository.LeaveRepository, users repository.UserRepository, balances repository.BalanceRepository) *DashboardService {
	return &DashboardService{leaves: leaves, users: users, balances: balances}
}

// EmployeeDashboard summarizes one employee's requests and balance.
type EmployeeDashboard struct {
	TotalLeaves    int
	PendingLeaves  int
	ApprovedLeaves int
	RejectedLeaves int
	Balance        domain.LeaveBalance
	RecentRequests []domain.LeaveRequest
}

// ManagerDashboard summarizes organization-wide activity.
type ManagerDashboard struct {
	TotalEmployees       int
	TotalPendingRequests int
	TotalApprovedToday   int
	TotalRejectedToday   int
	RecentRequests       []domain.LeaveRequest
}

// ForEmployee builds the employee dashboard.
func (s *DashboardService) ForEmployee(ctx context.Context, userID string) (*EmployeeDashboard, error) {
	dashboard := &EmployeeDashboard{}

	var err error
	if dashboard.TotalLeaves, err = s.leaves.CountByUser(ctx, userID, nil); err != nil {
		return nil, apperrors.MapError(err)
	}
	for status, target := range map[domain.LeaveStatus]*int{
		domain.LeaveStatusPending:  &dashboard.PendingLeaves,
		domain.LeaveStatusApproved: &dashboard.ApprovedLeaves,
		domain.LeaveStatusRejected: &dashboard.RejectedLeaves,
	} {
		st := status
		count, err := s.leaves.CountByUser(ctx, userID, &st)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		*target = count
	}

	if dashboard.Balance, err = s.balances.GetForUser(ctx, userID); err != nil {
		return nil, apperrors.MapError(err)
	}
	if dashboard.RecentRequests, err = s.leaves.ListRecent(ctx, &userID, 5); err != nil {
		return nil, apperrors.MapError(err)
	}
	return dashboard, nil
}

// ForManager builds the manager dashboard. "Today" counts use the decision
// timestamp (updated_at) from local midnight.
func (s *DashboardService) ForManager(ctx context.Context) (*ManagerDashboard, error) {
	dashboard := &ManagerDashboard{}
	today := dateutil.Truncate(time.Now())

	var err error
	if dashboard.TotalEmployees, err = s.users.CountByRole(ctx, domain.RoleEmployee); err != nil {
		return nil, apperrors.MapError(err)
	}
	if dashboard.TotalPendingRequests, err = s.leaves.CountByStatus(ctx, domain.LeaveStatusPending); err != nil {
		return nil, apperrors.MapError(err)
	}
	if dashboard.TotalApprovedToday, err = s.leaves.CountDecidedSince(ctx, domain.LeaveStatusApproved, today); err != nil {
		return nil, apperrors.MapError(err)
	}
	if dashboard.TotalRejectedToday, err = s.leaves.CountDecidedSince(ctx, domain.LeaveStatusRejected, today); err != nil {
		return nil, apperrors.MapError(err)
	}
	if dashboard.RecentRequests, err = s.leaves.ListRecent(ctx, nil, 10); err != nil {
		return nil, apperrors.MapError(err)
	}
	return dashboard, nil
}
