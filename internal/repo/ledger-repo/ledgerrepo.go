package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

// Append writes an immutable entry. A repeated idempotency key leaves the
// ledger unchanged and yields domain.ErrDuplicateEntry.
func (r *Repository) Append(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `
        INSERT INTO points_ledger (entry_id, user_id, direction, amount, balance_after, reason, reference, description, idempotency_key)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (idempotency_key) DO NOTHING
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		entry.EntryID, entry.UserID, entry.Direction, entry.Amount, entry.BalanceAfter,
		entry.Reason, entry.Reference, entry.Description, entry.IdempotencyKey,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrDuplicateEntry
		}
		zap.L().Error("failed to append ledger entry", zap.String("key", entry.IdempotencyKey), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int, limit int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, entry_id, user_id, direction, amount, balance_after, reason, reference, description, idempotency_key, created_at
        FROM points_ledger
        WHERE user_id = $1
        ORDER BY id DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("can't get ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		err := rows.Scan(&e.ID, &e.EntryID, &e.UserID, &e.Direction, &e.Amount, &e.BalanceAfter,
			&e.Reason, &e.Reference, &e.Description, &e.IdempotencyKey, &e.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan ledger row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Replay returns the balance implied by all of the user's entries.
func (r *Repository) Replay(ctx context.Context, userID int) (int64, error) {
	query := `
        SELECT COALESCE(SUM(CASE WHEN direction = 'EARN' THEN amount ELSE -amount END), 0)::BIGINT
        FROM points_ledger
        WHERE user_id = $1
    `
	var total int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		zap.L().Error("can't replay ledger", zap.Error(err))
		return 0, err
	}
	return total, nil
}
