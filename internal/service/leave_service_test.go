package service_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavedesk/leave-service/internal/domain"
	"github.com/leavedesk/leave-service/internal/repository"
	"github.com/leavedesk/leave-service/internal/service"
	"github.com/leavedesk/leave-service/pkg/dateutil"
	apperrors "github.com/leavedesk/leave-service/pkg/util"
)

// ----------------------------------------------------------------------------
// In-memory fakes for the repository interfaces
// ----------------------------------------------------------------------------

type fakeLeaveRepo struct {
	mu       sync.Mutex
	seq      int
	requests map[string]*domain.LeaveRequest
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]*domain.LeaveRequest)}
}

func (r *fakeLeaveRepo) Create(_ context.Context, request *domain.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	request.ID = fmt.Sprintf("req-%d", r.seq)
	request.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	request.UpdatedAt = request.CreatedAt
	clone := *request
	r.requests[request.ID] = &clone
	return nil
}

func (r *fakeLeaveRepo) Update(_ context.Context, request *domain.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.requests[request.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Status = request.Status
	stored.ManagerComment = request.ManagerComment
	stored.UpdatedAt = time.Now()
	request.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *fakeLeaveRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requests[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.requests, id)
	return nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id string) (*domain.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *stored
	return &clone, nil
}

func (r *fakeLeaveRepo) GetByIDForUser(_ context.Context, id, userID string) (*domain.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.requests[id]
	if !ok || stored.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	clone := *stored
	return &clone, nil
}

func (r *fakeLeaveRepo) ListByUser(_ context.Context, userID string, status *domain.LeaveStatus) ([]domain.LeaveRequest, error) {
	return r.list(func(req *domain.LeaveRequest) bool {
		if req.UserID != userID {
			return false
		}
		return status == nil || req.Status == *status
	}, 0), nil
}

func (r *fakeLeaveRepo) ListWithFilter(_ context.Context, filter repository.LeaveFilter) ([]domain.LeaveRequest, int, error) {
	all := r.list(func(req *domain.LeaveRequest) bool {
		if filter.UserID != nil && req.UserID != *filter.UserID {
			return false
		}
		if filter.Status != nil && req.Status != *filter.Status {
			return false
		}
		if filter.SearchTerm != nil {
			term := strings.ToLower(*filter.SearchTerm)
			if !strings.Contains(strings.ToLower(req.UserName), term) &&
				!strings.Contains(strings.ToLower(req.UserEmail), term) {
				return false
			}
		}
		return true
	}, 0)

	total := len(all)
	start := filter.Offset
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if filter.Limit <= 0 || end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *fakeLeaveRepo) ListPending(_ context.Context) ([]domain.LeaveRequest, error) {
	return r.list(func(req *domain.LeaveRequest) bool {
		return req.Status == domain.LeaveStatusPending
	}, 0), nil
}

func (r *fakeLeaveRepo) ListRecent(_ context.Context, userID *string, limit int) ([]domain.LeaveRequest, error) {
	return r.list(func(req *domain.LeaveRequest) bool {
		return userID == nil || req.UserID == *userID
	}, limit), nil
}

func (r *fakeLeaveRepo) HasOverlapping(_ context.Context, userID string, start, end time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.requests {
		if req.UserID != userID {
			continue
		}
		if req.Status != domain.LeaveStatusPending && req.Status != domain.LeaveStatusApproved {
			continue
		}
		if !req.StartDate.After(end) && !req.EndDate.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLeaveRepo) CountByUser(_ context.Context, userID string, status *domain.LeaveStatus) (int, error) {
	return len(r.list(func(req *domain.LeaveRequest) bool {
		if req.UserID != userID {
			return false
		}
		return status == nil || req.Status == *status
	}, 0)), nil
}

func (r *fakeLeaveRepo) CountByStatus(_ context.Context, status domain.LeaveStatus) (int, error) {
	return len(r.list(func(req *domain.LeaveRequest) bool {
		return req.Status == status
	}, 0)), nil
}

func (r *fakeLeaveRepo) CountDecidedSince(_ context.Context, status domain.LeaveStatus, since time.Time) (int, error) {
	return len(r.list(func(req *domain.LeaveRequest) bool {
		return req.Status == status && !req.UpdatedAt.Before(since)
	}, 0)), nil
}

func (r *fakeLeaveRepo) list(match func(*domain.LeaveRequest) bool, limit int) []domain.LeaveRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.LeaveRequest
	for _, req := range r.requests {
		if match(req) {
			result = append(result, *req)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

type fakeBalanceRepo struct {
	mu       sync.Mutex
	balances map[string]domain.LeaveBalance
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[string]domain.LeaveBalance)}
}

func (r *fakeBalanceRepo) Init(_ context.Context, userID string, balance domain.LeaveBalance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := domain.LeaveBalance{}
	for leaveType, days := range balance {
		stored[leaveType] = days
	}
	r.balances[userID] = stored
	return nil
}

func (r *fakeBalanceRepo) GetForUser(_ context.Context, userID string) (domain.LeaveBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	balance := domain.LeaveBalance{}
	for leaveType, days := range r.balances[userID] {
		balance[leaveType] = days
	}
	return balance, nil
}

func (r *fakeBalanceRepo) Get(_ context.Context, userID string, leaveType domain.LeaveType) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.balances[userID][leaveType], nil
}

func (r *fakeBalanceRepo) Debit(_ context.Context, userID string, leaveType domain.LeaveType, days int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	balance, ok := r.balances[userID]
	if !ok || balance[leaveType] < days {
		return repository.ErrInsufficientBalance
	}
	balance[leaveType] -= days
	return nil
}

// ----------------------------------------------------------------------------
// Test setup
// ----------------------------------------------------------------------------

type fixture struct {
	leaves   *fakeLeaveRepo
	balances *fakeBalanceRepo
	svc      *service.LeaveService
	employee *domain.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	leaves := newFakeLeaveRepo()
	balances := newFakeBalanceRepo()
	svc := service.NewLeaveService(service.LeaveDependencies{
		LeaveRepo:   leaves,
		BalanceRepo: balances,
	})

	employee := &domain.User{
		ID:    "user-1",
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Role:  domain.RoleEmployee,
	}
	require.NoError(t, balances.Init(context.Background(), employee.ID, domain.DefaultLeaveBalance()))

	return &fixture{leaves: leaves, balances: balances, svc: svc, employee: employee}
}

// nextMonday returns the first Monday at least a week in the future, so
// apply-time validation never trips over "today" or weekends.
func nextMonday() time.Time {
	day := dateutil.Truncate(time.Now()).AddDate(0, 0, 7)
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

func applyInput(leaveType domain.LeaveType, start, end time.Time) service.ApplyInput {
	return service.ApplyInput{
		LeaveType: leaveType,
		StartDate: start,
		EndDate:   end,
		Reason:    "family matters",
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, code), "expected %s, got %v", code, err)
}

// ----------------------------------------------------------------------------
// Apply
// ----------------------------------------------------------------------------

func TestApply_CreatesPendingRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	monday := nextMonday()
	friday := monday.AddDate(0, 0, 4)

	request, err := f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeSick, monday, friday))
	require.NoError(t, err)

	assert.NotEmpty(t, request.ID)
	assert.Equal(t, domain.LeaveStatusPending, request.Status)
	assert.Equal(t, 5, request.TotalDays)
	assert.Equal(t, f.employee.Name, request.UserName)
	assert.Equal(t, f.employee.Email, request.UserEmail)

	// Creation never touches the balance.
	days, err := f.balances.Get(ctx, f.employee.ID, domain.LeaveTypeSick)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSickDays, days)
}

func TestApply_MissingFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	monday := nextMonday()

	tests := []struct {
		name  string
		input service.ApplyInput
	}{
		{"no leave type", service.ApplyInput{StartDate: monday, EndDate: monday, Reason: "x"}},
		{"no start date", service.ApplyInput{LeaveType: domain.LeaveTypeSick, EndDate: monday, Reason: "x"}},
		{"no end date", service.ApplyInput{LeaveType: domain.LeaveTypeSick, StartDate: monday, Reason: "x"}},
		{"no reason", service.ApplyInput{LeaveType: domain.LeaveTypeSick, StartDate: monday, EndDate: monday}},
		{"blank reason", service.ApplyInput{LeaveType: domain.LeaveTypeSick, StartDate: monday, EndDate: monday, Reason: "   "}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Apply(ctx, f.employee, tc.input)
			assertCode(t, err, "VALIDATION_FAILED")
		})
	}
}

func TestApply_UnknownLeaveType(t *testing.T) {
	f := newFixture(t)
	monday := nextMonday()

	_, err := f.svc.Apply(context.Background(), f.employee, applyInput("sabbatical", monday, monday))
	assertCode(t, err, "VALIDATION_FAILED")
}

func TestApply_StartAfterEnd(t *testing.T) {
	f := newFixture(t)
	monday := nextMonday()

	_, err := f.svc.Apply(context.Background(), f.employee, applyInput(domain.LeaveTypeCasual, monday.AddDate(0, 0, 4), monday))
	assertCode(t, err, "VALIDATION_FAILED")
}

func TestApply_PastStartDate(t *testing.T) {
	f := newFixture(t)

	// Last Monday is guaranteed to be in the past and not a weekend.
	start := nextMonday().AddDate(0, 0, -14)
	end := start.AddDate(0, 0, 2)

	_, err := f.svc.Apply(context.Background(), f.employee, applyInput(domain.LeaveTypeCasual, start, end))
	assertCode(t, err, "VALIDATION_FAILED")
}

func TestApply_WeekendEndpoints(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	monday := nextMonday()
	saturday := monday.AddDate(0, 0, 5)
	sunday := monday.AddDate(0, 0, 6)

	_, err := f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeCasual, saturday, sunday))
	assertCode(t, err, "VALIDATION_FAILED")

	_, err = f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeCasual, monday, saturday))
	assertCode(t, err, "VALIDATION_FAILED")
}

func TestApply_TooManyDays(t *testing.T) {
	f := newFixture(t)
	monday := nextMonday()
	// Six weeks out lands on a Monday: 31 business days inclusive.
	end := monday.AddDate(0, 0, 42)

	_, err := f.svc.Apply(context.Background(), f.employee, applyInput(domain.LeaveTypeSick, monday, end))
	assertCode(t, err, "VALIDATION_FAILED")
}

func TestApply_InsufficientBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.balances.Init(ctx, f.employee.ID, domain.LeaveBalance{domain.LeaveTypeCasual: 3}))

	monday := nextMonday()
	friday := monday.AddDate(0, 0, 4)

	_, err := f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeCasual, monday, friday))
	assertCode(t, err, "INSUFFICIENT_BALANCE")
	assert.Contains(t, err.Error(), "3")
	assert.Contains(t, err.Error(), "casual")
}

func TestApply_OverlapConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	monday := nextMonday()

	_, err := f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeSick, monday, monday.AddDate(0, 0, 2)))
	require.NoError(t, err)

	// Identical interval.
	_, err = f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeSick, monday, monday.AddDate(0, 0, 2)))
	assertCode(t, err, "CONFLICT")

	// Partial overlap, different leave type still conflicts.
	_, err = f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeCasual, monday.AddDate(0, 0, 2), monday.AddDate(0, 0, 4)))
	assertCode(t, err, "CONFLICT")

	// Disjoint interval the following week is fine.
	nextWeek := monday.AddDate(0, 0, 7)
	_, err = f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeCasual, nextWeek, nextWeek.AddDate(0, 0, 1)))
	assert.NoError(t, err)
}

func TestApply_OverlapIgnoresRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	monday := nextMonday()

	request, err := f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeSick, monday, monday.AddDate(0, 0, 2)))
	require.NoError(t, err)

	_, err = f.svc.Reject(ctx, "mgr-1", request.ID, "coverage gap")
	require.NoError(t, err)

	// A rejected request no longer blocks the interval.
	_, err = f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeSick, monday, monday.AddDate(0, 0, 2)))
	assert.NoError(t, err)
}

// ----------------------------------------------------------------------------
// Cancel
// ----------------------------------------------------------------------------

func TestCancel_PendingRequestIsDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	monday := nextMonday()

	request, err := f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeVacation, monday, monday.AddDate(0, 0, 1)))
	require.NoError(t, err)

	require.NoError(t, f.svc.Cancel(ctx, f.employee.ID, request.ID))

	_, err = f.leaves.GetByID(ctx, request.ID)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	// No balance was debited, so none is restored.
	days, err := f.balances.Get(ctx, f.employee.ID, domain.LeaveTypeVacation)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultVacationDays, days)
}

func TestCancel_NotOwnRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	monday := nextMonday()

	request, err := f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeSick, monday, monday))
	require.NoError(t, err)

	err = f.svc.Cancel(ctx, "someone-else", request.ID)
	assertCode(t, err, "NOT_FOUND")
}

func TestCancel_ApprovedRequestFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	monday := nextMonday()

	request, err := f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeSick, monday, monday))
	require.NoError(t, err)
	_, err = f.svc.Approve(ctx, "mgr-1", request.ID, "")
	require.NoError(t, err)

	err = f.svc.Cancel(ctx, f.employee.ID, request.ID)
	assertCode(t, err, "INVALID_STATE")

	// Entity unchanged.
	stored, err := f.leaves.GetByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeaveStatusApproved, stored.Status)
}

func TestCancel_DoubleCancelSameError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	monday := nextMonday()

	request, err := f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeSick, monday, monday))
	require.NoError(t, err)
	require.NoError(t, f.svc.Cancel(ctx, f.employee.ID, request.ID))

	first := f.svc.Cancel(ctx, f.employee.ID, request.ID)
	second := f.svc.Cancel(ctx, f.employee.ID, request.ID)
	assertCode(t, first, "NOT_FOUND")
	assertCode(t, second, "NOT_FOUND")
}

// ----------------------------------------------------------------------------
// Approve / Reject
// ----------------------------------------------------------------------------

func TestApprove_DebitsBalanceOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	monday := nextMonday()
	friday := monday.AddDate(0, 0, 4)

	request, err := f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeSick, monday, friday))
	require.NoError(t, err)

	approved, err := f.svc.Approve(ctx, "mgr-1", request.ID, "enjoy")
	require.NoError(t, err)
	assert.Equal(t, domain.LeaveStatusApproved, approved.Status)
	assert.Equal(t, "enjoy", approved.ManagerComment)

	days, err := f.balances.Get(ctx, f.employee.ID, domain.LeaveTypeSick)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSickDays-5, days)

	// Approval is terminal.
	_, err = f.svc.Approve(ctx, "mgr-1", request.ID, "")
	assertCode(t, err, "INVALID_STATE")

	// Balance debited exactly once.
	days, err = f.balances.Get(ctx, f.employee.ID, domain.LeaveTypeSick)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSickDays-5, days)
}

func TestApprove_MissingRequest(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Approve(context.Background(), "mgr-1", "nope", "")
	assertCode(t, err, "NOT_FOUND")
}

func TestApprove_BalanceDriftLeavesRequestApproved(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	monday := nextMonday()
	friday := monday.AddDate(0, 0, 4)

	request, err := f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeSick, monday, friday))
	require.NoError(t, err)

	// Balance drains between apply and approve.
	require.NoError(t, f.balances.Init(ctx, f.employee.ID, domain.LeaveBalance{domain.LeaveTypeSick: 2}))

	_, err = f.svc.Approve(ctx, "mgr-1", request.ID, "")
	assertCode(t, err, "INSUFFICIENT_BALANCE")
	assert.Contains(t, err.Error(), "2")

	// The status update was persisted before the debit failed.
	stored, err := f.leaves.GetByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeaveStatusApproved, stored.Status)

	// The short balance was never driven negative.
	days, err := f.balances.Get(ctx, f.employee.ID, domain.LeaveTypeSick)
	require.NoError(t, err)
	assert.Equal(t, 2, days)
}

func TestReject_RequiresComment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	monday := nextMonday()

	request, err := f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeCasual, monday, monday))
	require.NoError(t, err)

	_, err = f.svc.Reject(ctx, "mgr-1", request.ID, "")
	assertCode(t, err, "VALIDATION_FAILED")
	_, err = f.svc.Reject(ctx, "mgr-1", request.ID, "   ")
	assertCode(t, err, "VALIDATION_FAILED")

	rejected, err := f.svc.Reject(ctx, "mgr-1", request.ID, "insufficient coverage")
	require.NoError(t, err)
	assert.Equal(t, domain.LeaveStatusRejected, rejected.Status)
	assert.Equal(t, "insufficient coverage", rejected.ManagerComment)

	// Rejection never touches the balance.
	days, err := f.balances.Get(ctx, f.employee.ID, domain.LeaveTypeCasual)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCasualDays, days)

	// And is terminal.
	_, err = f.svc.Reject(ctx, "mgr-1", request.ID, "again")
	assertCode(t, err, "INVALID_STATE")
}

// ----------------------------------------------------------------------------
// Listings
// ----------------------------------------------------------------------------

func TestListMine_FiltersByStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	monday := nextMonday()

	first, err := f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeSick, monday, monday))
	require.NoError(t, err)
	second, err := f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeCasual, monday.AddDate(0, 0, 1), monday.AddDate(0, 0, 1)))
	require.NoError(t, err)
	_, err = f.svc.Approve(ctx, "mgr-1", first.ID, "")
	require.NoError(t, err)

	all, err := f.svc.ListMine(ctx, f.employee.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	// Newest first.
	assert.Equal(t, second.ID, all[0].ID)

	pending := domain.LeaveStatusPending
	onlyPending, err := f.svc.ListMine(ctx, f.employee.ID, &pending)
	require.NoError(t, err)
	require.Len(t, onlyPending, 1)
	assert.Equal(t, second.ID, onlyPending[0].ID)
}

func TestListAll_Pagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	monday := nextMonday()

	for i := 0; i < 5; i++ {
		day := monday.AddDate(0, 0, i*7)
		_, err := f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeSick, day, day))
		require.NoError(t, err)
	}

	result, err := f.svc.ListAll(ctx, service.ListAllInput{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, result.Requests, 2)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 3, result.TotalPages)

	last, err := f.svc.ListAll(ctx, service.ListAllInput{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, last.Requests, 1)
}

func TestListPending_ExcludesDecided(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	monday := nextMonday()

	first, err := f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeSick, monday, monday))
	require.NoError(t, err)
	second, err := f.svc.Apply(ctx, f.employee, applyInput(domain.LeaveTypeCasual, monday.AddDate(0, 0, 1), monday.AddDate(0, 0, 1)))
	require.NoError(t, err)

	_, err = f.svc.Approve(ctx, "mgr-1", first.ID, "")
	require.NoError(t, err)

	pending, err := f.svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
}
