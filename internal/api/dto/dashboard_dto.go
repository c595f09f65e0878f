package dto

// EmployeeDashboardResponse aggregates the employee's own activity.
type EmployeeDashboardResponse struct {
	TotalLeaves    int                    `json:"totalLeaves"`
	PendingLeaves  int                    `json:"pendingLeaves"`
	ApprovedLeaves int                    `json:"approvedLeaves"`
	RejectedLeaves int                    `json:"rejectedLeaves"`
	LeaveBalance   LeaveBalanceResponse   `json:"leaveBalance"`
	RecentRequests []LeaveRequestResponse `json:"recentRequests"`
}

// ManagerDashboardResponse aggregates organization-wide activity.
type ManagerDashboardResponse struct {
	TotalEmployees       int                    `json:"totalEmployees"`
	TotalPendingRequests int                    `json:"totalPendingRequests"`
	TotalApprovedToday   int                    `json:"totalApprovedToday"`
	TotalRejectedToday   int                    `json:"totalRejectedToday"`
	RecentRequests       []LeaveRequestResponse `json:"recentRequests"`
}
