package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/leavedesk/leave-service/internal/domain"
	"github.com/leavedesk/leave-service/internal/events"
	"github.com/leavedesk/leave-service/internal/repository"
	"github.com/leavedesk/leave-service/pkg/dateutil"
	apperrors "github.com/leavedesk/leave-service/pkg/util"
)

// Maximum business days a single request may span.
const maxLeaveDays = 30

// LeaveService drives the leave request lifecycle: validation, overlap
// detection, balance accounting and the pending -> approved/rejected state
// machine. Cancellation deletes the entity while it is still pending.
type LeaveService struct {
	leaves     repository.LeaveRepository
	balances   repository.BalanceRepository
	dispatcher events.Dispatcher
	locks      keyedMutex
}

// LeaveDependencies bundles repositories for the leave service.
type LeaveDependencies struct {
	LeaveRepo   repository.LeaveRepository
	BalanceRepo repository.BalanceRepository
	Dispatcher  events.Dispatcher
}

// ApplyInput describes a leave application payload.
type ApplyInput struct {
	LeaveType domain.LeaveType
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

// ListAllInput describes manager listing filters.
type ListAllInput struct {
	Status *domain.LeaveStatus
	UserID *string
	Search *string
	Page   int
	Limit  int
}

// ListAllResult carries a page of requests plus pagination totals.
type ListAllResult struct {
	Requests   []domain.LeaveRequest
	Total      int
	TotalPages int
}

// NewLeaveService constructs the service.
func NewLeaveService(deps LeaveDependencies) *LeaveService {
	return &LeaveService{
		leaves:     deps.LeaveRepo,
		balances:   deps.BalanceRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Apply validates and persists a new pending leave request for the user.
// No balance is debited at this stage.
func (s *LeaveService) Apply(ctx context.Context, user *domain.User, input ApplyInput) (*domain.LeaveRequest, error) {
	if input.LeaveType == "" || input.StartDate.IsZero() || input.EndDate.IsZero() || strings.TrimSpace(input.Reason) == "" {
		return nil, apperrors.NewValidationError("all fields are required", nil)
	}
	if !input.LeaveType.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown leave type %q", input.LeaveType), nil)
	}

	start := dateutil.Truncate(input.StartDate)
	end := dateutil.Truncate(input.EndDate)

	if start.After(end) {
		return nil, apperrors.NewValidationError("start date must be before or equal to end date", nil)
	}
	// Only the start date is checked against today.
	if dateutil.IsPastDate(start) {
		return nil, apperrors.NewValidationError("cannot apply for leave in the past", nil)
	}
	if dateutil.IsWeekend(start) || dateutil.IsWeekend(end) {
		return nil, apperrors.NewValidationError("cannot apply for leave on weekends", nil)
	}

	totalDays := dateutil.BusinessDays(start, end)
	if totalDays < 1 {
		return nil, apperrors.NewValidationError("leave request must be for at least 1 business day", nil)
	}
	if totalDays > maxLeaveDays {
		return nil, apperrors.NewValidationError(fmt.Sprintf("leave request cannot exceed %d business days", maxLeaveDays), nil)
	}

	// The overlap check and insert form a read-modify-write pair, so they
	// run under the user's lock.
	unlock := s.locks.lock(user.ID)
	defer unlock()

	available, err := s.balances.Get(ctx, user.ID, input.LeaveType)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if available < totalDays {
		return nil, apperrors.NewInsufficientBalance(
			fmt.Sprintf("insufficient %s leave balance. Available: %d days", input.LeaveType, available),
			map[string]any{"leaveType": input.LeaveType, "available": available, "requested": totalDays},
		)
	}

	overlapping, err := s.leaves.HasOverlapping(ctx, user.ID, start, end)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if overlapping {
		return nil, apperrors.NewConflict("overlapping leave request detected", nil)
	}

	request := &domain.LeaveRequest{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		LeaveType: input.LeaveType,
		StartDate: start,
		EndDate:   end,
		TotalDays: totalDays,
		Reason:    strings.TrimSpace(input.Reason),
		Status:    domain.LeaveStatusPending,
	}
	if err := s.leaves.Create(ctx, request); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventLeaveApplied,
		RequestID: request.ID,
		ActorID:   user.ID,
		Payload: events.LeaveAppliedPayload{
			UserID:    user.ID,
			LeaveType: request.LeaveType,
			StartDate: request.StartDate,
			EndDate:   request.EndDate,
			TotalDays: request.TotalDays,
		},
	})
	return request, nil
}

// ListMine returns the user's requests, optionally filtered by status,
// newest first.
func (s *LeaveService) ListMine(ctx context.Context, userID string, status *domain.LeaveStatus) ([]domain.LeaveRequest, error) {
	requests, err := s.leaves.ListByUser(ctx, userID, status)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return requests, nil
}

// Balance returns the user's remaining days per leave type.
func (s *LeaveService) Balance(ctx context.Context, userID string) (domain.LeaveBalance, error) {
	balance, err := s.balances.GetForUser(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return balance, nil
}

// Cancel deletes the user's own pending request. No balance is restored
// because none was debited.
func (s *LeaveService) Cancel(ctx context.Context, userID, requestID string) error {
	request, err := s.leaves.GetByIDForUser(ctx, requestID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("leave request", nil)
		}
		return apperrors.MapError(err)
	}
	if request.Status != domain.LeaveStatusPending {
		return apperrors.NewInvalidState("only pending leave requests can be cancelled")
	}
	if err := s.leaves.Delete(ctx, request.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("leave request", nil)
		}
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventLeaveCancelled,
		RequestID: request.ID,
		ActorID:   userID,
		Payload: events.LeaveCancelledPayload{
			UserID:    request.UserID,
			LeaveType: request.LeaveType,
			StartDate: request.StartDate,
			EndDate:   request.EndDate,
		},
	})
	return nil
}

// ListAll returns a page of requests for managers with total counts.
func (s *LeaveService) ListAll(ctx context.Context, input ListAllInput) (*ListAllResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 10
	}

	filter := repository.LeaveFilter{
		UserID:     input.UserID,
		Status:     input.Status,
		SearchTerm: input.Search,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}
	requests, total, err := s.leaves.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	totalPages := (total + limit - 1) / limit
	return &ListAllResult{Requests: requests, Total: total, TotalPages: totalPages}, nil
}

// ListPending returns every pending request, newest first.
func (s *LeaveService) ListPending(ctx context.Context) ([]domain.LeaveRequest, error) {
	requests, err := s.leaves.ListPending(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return requests, nil
}

// Approve marks a pending request approved and debits the owner's balance
// by its stored total days. The status update is persisted before the debit;
// a debit failure therefore leaves the request approved and surfaces
// INSUFFICIENT_BALANCE for the operator to reconcile.
func (s *LeaveService) Approve(ctx context.Context, managerID, requestID, comment string) (*domain.LeaveRequest, error) {
	request, err := s.leaves.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("leave request", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if request.Status != domain.LeaveStatusPending {
		return nil, apperrors.NewInvalidState("only pending leave requests can be approved")
	}

	// Serialize per owner so concurrent approvals drawing on the same pool
	// cannot both pass the balance check.
	unlock := s.locks.lock(request.UserID)
	defer unlock()

	request.Status = domain.LeaveStatusApproved
	request.ManagerComment = comment
	if err := s.leaves.Update(ctx, request); err != nil {
		return nil, apperrors.MapError(err)
	}

	if err := s.balances.Debit(ctx, request.UserID, request.LeaveType, request.TotalDays); err != nil {
		if errors.Is(err, repository.ErrInsufficientBalance) {
			available, getErr := s.balances.Get(ctx, request.UserID, request.LeaveType)
			if getErr != nil {
				available = 0
			}
			return nil, apperrors.NewInsufficientBalance(
				fmt.Sprintf("insufficient %s leave balance. Available: %d days, Requested: %d days",
					request.LeaveType, available, request.TotalDays),
				map[string]any{"leaveType": request.LeaveType, "available": available, "requested": request.TotalDays},
			)
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventLeaveApproved,
		RequestID: request.ID,
		ActorID:   managerID,
		Payload: events.LeaveDecidedPayload{
			UserID:         request.UserID,
			LeaveType:      request.LeaveType,
			TotalDays:      request.TotalDays,
			ManagerComment: comment,
		},
	})
	return request, nil
}

// Reject marks a pending request rejected. The manager comment is mandatory
// and no balance is touched.
func (s *LeaveService) Reject(ctx context.Context, managerID, requestID, comment string) (*domain.LeaveRequest, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, apperrors.NewValidationError("manager comment is required for rejection", nil)
	}

	request, err := s.leaves.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("leave request", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if request.Status != domain.LeaveStatusPending {
		return nil, apperrors.NewInvalidState("only pending leave requests can be rejected")
	}

	request.Status = domain.LeaveStatusRejected
	request.ManagerComment = comment
	if err := s.leaves.Update(ctx, request); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventLeaveRejected,
		RequestID: request.ID,
		ActorID:   managerID,
		Payload: events.LeaveDecidedPayload{
			UserID:         request.UserID,
			LeaveType:      request.LeaveType,
			TotalDays:      request.TotalDays,
			ManagerComment: comment,
		},
	})
	return request, nil
}

func (s *LeaveService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}

// keyedMutex serializes operations per user id.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*userLock)
	}
	entry, ok := k.locks[key]
	if !ok {
		entry = &userLock{}
		k.locks[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		k.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
