package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leavedesk/leave-service/internal/domain"
)

// ErrInsufficientBalance is returned by Debit when the decrement would take
// the remaining days below zero.
var ErrInsufficientBalance = errors.New("insufficient leave balance")

// BalanceRepository persists per-user, per-type leave day counters.
type BalanceRepository interface {
	// Init writes the given allotments for a user, one row per leave type.
	Init(ctx context.Context, userID string, balance domain.LeaveBalance) error
	// GetForUser loads every pool for a user. Missing rows read as zero.
	GetForUser(ctx context.Context, userID string) (domain.LeaveBalance, error)
	// Get returns the remaining days for one pool, zero when no row exists.
	Get(ctx context.Context, userID string, leaveType domain.LeaveType) (int, error)
	// Debit atomically decrements a pool, failing with ErrInsufficientBalance
	// when the result would be negative. There is no credit operation.
	Debit(ctx context.Context, userID string, leaveType domain.LeaveType, days int) error
}

type balanceRepository struct {
	pool *pgxpool.Pool
}

// NewBalanceRepository returns a Postgres-backed implementation.
func NewBalanceRepository(pool *pgxpool.Pool) BalanceRepository {
	return &balanceRepository{pool: pool}
}

func (r *balanceRepository) Init(ctx context.Context, userID string, balance domain.LeaveBalance) error {
	const query = `
        INSERT INTO leave_balances (user_id, leave_type, remaining_days)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, leave_type) DO NOTHING`

	for _, leaveType := range domain.LeaveTypes() {
		if _, err := r.pool.Exec(ctx, query, userID, leaveType, balance.Days(leaveType)); err != nil {
			return err
		}
	}
	return nil
}

func (r *balanceRepository) GetForUser(ctx context.Context, userID string) (domain.LeaveBalance, error) {
	const query = `
        SELECT leave_type, remaining_days
        FROM leave_balances WHERE user_id=$1`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balance := domain.LeaveBalance{}
	for rows.Next() {
		var leaveType domain.LeaveType
		var days int
		if err := rows.Scan(&leaveType, &days); err != nil {
			return nil, err
		}
		balance[leaveType] = days
	}
	return balance, rows.Err()
}

func (r *balanceRepository) Get(ctx context.Context, userID string, leaveType domain.LeaveType) (int, error) {
	const query = `
        SELECT remaining_days FROM leave_balances
        WHERE user_id=$1 AND leave_type=$2`

	var days int
	err := r.pool.QueryRow(ctx, query, userID, leaveType).Scan(&days)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return days, nil
}

func (r *balanceRepository) Debit(ctx context.Context, userID string, leaveType domain.LeaveType, days int) error {
	// The remaining_days >= $3 guard makes the check-and-decrement a single
	// atomic statement, so concurrent approvals cannot over-draw the pool.
	const query = `
        UPDATE leave_balances
        SET remaining_days = remaining_days - $3, updated_at = NOW()
        WHERE user_id=$1 AND leave_type=$2 AND remaining_days >= $3`

	cmd, err := r.pool.Exec(ctx, query, userID, leaveType, days)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrInsufficientBalance
	}
	return nil
}
