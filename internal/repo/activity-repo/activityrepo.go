// Package activityrepo stores the normalized external signals challenges are
// judged on: card transactions, step counts and emission totals.
package activityrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// ListApprovedTransactions returns approved transactions in [from, to).
func (r *Repository) ListApprovedTransactions(ctx context.Context, userID int, from, to time.Time) ([]domain.CardTransaction, error) {
	query := `
        SELECT id, user_id, amount, category, COALESCE(merchant, ''), approved_at, status
        FROM card_transactions
        WHERE user_id = $1 AND status = 'APPROVED' AND approved_at >= $2 AND approved_at < $3
        ORDER BY approved_at
    `
	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		zap.L().Error("can't list card transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.CardTransaction
	for rows.Next() {
		var tx domain.CardTransaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Category, &tx.Merchant, &tx.ApprovedAt, &tx.Status); err != nil {
			zap.L().Error("can't scan card transaction", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// GetSteps returns zero when nothing was reported for the date.
func (r *Repository) GetSteps(ctx context.Context, userID int, date time.Time) (int, error) {
	query := `SELECT steps FROM daily_steps WHERE user_id = $1 AND step_date = $2`
	var steps int
	err := r.db.QueryRow(ctx, query, userID, date).Scan(&steps)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		zap.L().Error("can't get steps", zap.Error(err))
		return 0, err
	}
	return steps, nil
}

func (r *Repository) UpsertSteps(ctx context.Context, userID int, date time.Time, steps int) error {
	query := `
        INSERT INTO daily_steps (user_id, step_date, steps)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, step_date) DO UPDATE SET steps = EXCLUDED.steps, updated_at = now()
    `
	if _, err := r.db.Exec(ctx, query, userID, date, steps); err != nil {
		zap.L().Error("can't save steps", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetEmission(ctx context.Context, userID int, date time.Time) (decimal.Decimal, error) {
	query := `SELECT total_emission FROM daily_emissions WHERE user_id = $1 AND emission_date = $2`
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, query, userID, date).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		zap.L().Error("can't get emission", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}
