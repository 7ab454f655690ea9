package balancerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT user_id, current_balance, earned_total, spent_total, updated_at
        FROM balances
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.UserID, &balance.CurrentBalance, &balance.EarnedTotal, &balance.SpentTotal, &balance.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// CreateBalance opens a zero balance; an existing account is left untouched.
func (r *Repository) CreateBalance(ctx context.Context, userID int) error {
	query := `
        INSERT INTO balances (user_id, current_balance, earned_total, spent_total)
        VALUES ($1, 0, 0, 0)
        ON CONFLICT (user_id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to create user balance", zap.Error(err))
		return err
	}
	return nil
}

// Debit subtracts amount only while the balance still equals expected.
// ok is false when another writer got there first.
func (r *Repository) Debit(ctx context.Context, userID int, amount, expected int64) (int64, bool, error) {
	query := `
        UPDATE balances
        SET current_balance = current_balance - $1, spent_total = spent_total + $1, updated_at = now()
        WHERE user_id = $2 AND current_balance = $3
        RETURNING current_balance
    `
	var after int64
	err := r.db.QueryRow(ctx, query, amount, userID, expected).Scan(&after)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		zap.L().Error("failed to debit user balance", zap.Error(err))
		return 0, false, err
	}
	return after, true, nil
}

// Credit adds amount, opening the account on first credit.
func (r *Repository) Credit(ctx context.Context, userID int, amount int64) (int64, error) {
	query := `
        INSERT INTO balances (user_id, current_balance, earned_total, spent_total)
        VALUES ($1, $2, $2, 0)
        ON CONFLICT (user_id) DO UPDATE
        SET current_balance = balances.current_balance + EXCLUDED.current_balance,
            earned_total = balances.earned_total + EXCLUDED.earned_total,
            updated_at = now()
        RETURNING current_balance
    `
	var after int64
	if err := r.db.QueryRow(ctx, query, userID, amount).Scan(&after); err != nil {
		zap.L().Error("failed to credit user balance", zap.Error(err))
		return 0, err
	}
	return after, nil
}
