package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leavedesk/leave-service/internal/domain"
)

// LeaveFilter captures manager search parameters.
type LeaveFilter struct {
	UserID     *string
	Status     *domain.LeaveStatus
	SearchTerm *string
	Limit      int
	Offset     int
}

// LeaveRepository encapsulates leave request persistence. Results are always
// ordered by creation time descending.
type LeaveRepository interface {
	Create(ctx context.Context, request *domain.LeaveRequest) error
	Update(ctx context.Context, request *domain.LeaveRequest) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.LeaveRequest, error)
	GetByIDForUser(ctx context.Context, id, userID string) (*domain.LeaveRequest, error)
	ListByUser(ctx context.Context, userID string, status *domain.LeaveStatus) ([]domain.LeaveRequest, error)
	ListWithFilter(ctx context.Context, filter LeaveFilter) ([]domain.LeaveRequest, int, error)
	ListPending(ctx context.Context) ([]domain.LeaveRequest, error)
	ListRecent(ctx context.Context, userID *string, limit int) ([]domain.LeaveRequest, error)
	// HasOverlapping reports whether the user owns a pending or approved
	// request whose inclusive interval intersects [start, end].
	HasOverlapping(ctx context.Context, userID string, start, end time.Time) (bool, error)
	CountByUser(ctx context.Context, userID string, status *domain.LeaveStatus) (int, error)
	CountByStatus(ctx context.Context, status domain.LeaveStatus) (int, error)
	CountDecidedSince(ctx context.Context, status domain.LeaveStatus, since time.Time) (int, error)
}

type leaveRepository struct {
	pool *pgxpool.Pool
}

// NewLeaveRepository instantiates repository.
func NewLeaveRepository(pool *pgxpool.Pool) LeaveRepository {
	return &leaveRepository{pool: pool}
}

const leaveColumns = `id, user_id, user_name, user_email, leave_type, start_date, end_date,
               total_days, reason, status, manager_comment, created_at, updated_at`

func (r *leaveRepository) Create(ctx context.Context, request *domain.LeaveRequest) error {
	const query = `
        INSERT INTO leave_requests (user_id, user_name, user_email, leave_type, start_date, end_date, total_days, reason, status, manager_comment)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		request.UserID,
		request.UserName,
		request.UserEmail,
		request.LeaveType,
		request.StartDate,
		request.EndDate,
		request.TotalDays,
		request.Reason,
		request.Status,
		request.ManagerComment,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
}

func (r *leaveRepository) Update(ctx context.Context, request *domain.LeaveRequest) error {
	const query = `
        UPDATE leave_requests SET status=$1, manager_comment=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING updated_at`
	if err := r.pool.QueryRow(ctx, query,
		request.Status,
		request.ManagerComment,
		request.ID,
	).Scan(&request.UpdatedAt); err != nil {
		return err
	}
	return nil
}

func (r *leaveRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM leave_requests WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM leave_requests WHERE id=$1`, leaveColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *leaveRepository) GetByIDForUser(ctx context.Context, id, userID string) (*domain.LeaveRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM leave_requests WHERE id=$1 AND user_id=$2`, leaveColumns)
	return r.fetchSingle(ctx, query, id, userID)
}

func (r *leaveRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.LeaveRequest, error) {
	var request domain.LeaveRequest
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&request.ID,
		&request.UserID,
		&request.UserName,
		&request.UserEmail,
		&request.LeaveType,
		&request.StartDate,
		&request.EndDate,
		&request.TotalDays,
		&request.Reason,
		&request.Status,
		&request.ManagerComment,
		&request.CreatedAt,
		&request.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *leaveRepository) ListByUser(ctx context.Context, userID string, status *domain.LeaveStatus) ([]domain.LeaveRequest, error) {
	args := []any{userID}
	clause := "user_id=$1"
	if status != nil {
		args = append(args, *status)
		clause += " AND status=$2"
	}
	query := fmt.Sprintf(`SELECT %s FROM leave_requests WHERE %s ORDER BY created_at DESC`, leaveColumns, clause)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeaveRequests(rows)
}

func (r *leaveRepository) ListWithFilter(ctx context.Context, filter LeaveFilter) ([]domain.LeaveRequest, int, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		clauses = append(clauses, fmt.Sprintf("user_id=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(user_name) LIKE %s OR LOWER(user_email) LIKE %s)", placeholder, placeholder))
	}

	where := strings.Join(clauses, " AND ")

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM leave_requests WHERE %s`, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM leave_requests WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		leaveColumns, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	requests, err := scanLeaveRequests(rows)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *leaveRepository) ListPending(ctx context.Context) ([]domain.LeaveRequest, error) {
	pending := domain.LeaveStatusPending
	query := fmt.Sprintf(`SELECT %s FROM leave_requests WHERE status=$1 ORDER BY created_at DESC`, leaveColumns)

	rows, err := r.pool.Query(ctx, query, pending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeaveRequests(rows)
}

func (r *leaveRepository) ListRecent(ctx context.Context, userID *string, limit int) ([]domain.LeaveRequest, error) {
	if limit <= 0 {
		limit = 5
	}
	args := []any{}
	clause := "1=1"
	if userID != nil {
		args = append(args, *userID)
		clause = "user_id=$1"
	}
	query := fmt.Sprintf(`SELECT %s FROM leave_requests WHERE %s ORDER BY created_at DESC LIMIT %d`,
		leaveColumns, clause, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeaveRequests(rows)
}

func (r *leaveRepository) HasOverlapping(ctx context.Context, userID string, start, end time.Time) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM leave_requests
            WHERE user_id=$1
              AND status IN ('pending', 'approved')
              AND start_date <= $3
              AND end_date >= $2
        )`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, start, end).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *leaveRepository) CountByUser(ctx context.Context, userID string, status *domain.LeaveStatus) (int, error) {
	args := []any{userID}
	clause := "user_id=$1"
	if status != nil {
		args = append(args, *status)
		clause += " AND status=$2"
	}
	query := fmt.Sprintf(`SELECT COUNT(*) FROM leave_requests WHERE %s`, clause)

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *leaveRepository) CountByStatus(ctx context.Context, status domain.LeaveStatus) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status=$1`, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *leaveRepository) CountDecidedSince(ctx context.Context, status domain.LeaveStatus, since time.Time) (int, error) {
	const query = `SELECT COUNT(*) FROM leave_requests WHERE status=$1 AND updated_at >= $2`
	var count int
	if err := r.pool.QueryRow(ctx, query, status, since).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanLeaveRequests(rows pgx.Rows) ([]domain.LeaveRequest, error) {
	var result []domain.LeaveRequest
	for rows.Next() {
		var request domain.LeaveRequest
		if err := rows.Scan(
			&request.ID,
			&request.UserID,
			&request.UserName,
			&request.UserEmail,
			&request.LeaveType,
			&request.StartDate,
			&request.EndDate,
			&request.TotalDays,
			&request.Reason,
			&request.Status,
			&request.ManagerComment,
			&request.CreatedAt,
			&request.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	return result, rows.Err()
}
