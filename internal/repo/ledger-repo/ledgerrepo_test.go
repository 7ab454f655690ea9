package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func newEntry() *domain.LedgerEntry {
	return &domain.LedgerEntry{
		EntryID:        uuid.New(),
		UserID:         1,
		Direction:      domain.DirectionSpend,
		Amount:         200,
		BalanceAfter:   800,
		Reason:         domain.ReasonPlant,
		Reference:      "17",
		IdempotencyKey: "1:PLANT:17",
	}
}

func TestRepository_Append(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`INSERT INTO points_ledger`)

	tests := []struct {
		name        string
		mockSetup   func(e *domain.LedgerEntry)
		expectedErr error
		expectErr   bool
	}{
		{
			name: "Entry appended",
			mockSetup: func(e *domain.LedgerEntry) {
				mock.ExpectQuery(query).
					WithArgs(e.EntryID, 1, domain.DirectionSpend, int64(200), int64(800), domain.ReasonPlant, "17", "", "1:PLANT:17").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), now))
			},
		},
		{
			name: "Duplicate idempotency key",
			mockSetup: func(e *domain.LedgerEntry) {
				mock.ExpectQuery(query).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: domain.ErrDuplicateEntry,
			expectErr:   true,
		},
		{
			name: "Database error",
			mockSetup: func(e *domain.LedgerEntry) {
				mock.ExpectQuery(query).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := newEntry()
			tt.mockSetup(entry)

			err := repo.Append(context.Background(), entry)

			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(5), entry.ID)
			assert.Equal(t, now, entry.CreatedAt)
		})
	}
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	id := uuid.New()
	columns := []string{"id", "entry_id", "user_id", "direction", "amount", "balance_after", "reason", "reference", "description", "idempotency_key", "created_at"}

	mock.ExpectQuery(regexp.QuoteMeta(`FROM points_ledger WHERE user_id = $1 ORDER BY id DESC LIMIT $2`)).
		WithArgs(1, 20).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(2), id, 1, domain.DirectionEarn, int64(50), int64(1050), domain.ReasonChallengeReward, "9", "", "1:CHALLENGE_REWARD:9", now))

	entries, err := repo.ListByUser(context.Background(), 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, []domain.LedgerEntry{{
		ID: 2, EntryID: id, UserID: 1, Direction: domain.DirectionEarn, Amount: 50, BalanceAfter: 1050,
		Reason: domain.ReasonChallengeReward, Reference: "9", IdempotencyKey: "1:CHALLENGE_REWARD:9", CreatedAt: now,
	}}, entries)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM points_ledger`)).
		WithArgs(1, 20).
		WillReturnError(errors.New("database error"))
	_, err = repo.ListByUser(context.Background(), 1, 20)
	assert.Error(t, err)
}

func TestRepository_Replay(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(CASE WHEN direction = 'EARN' THEN amount ELSE -amount END), 0)::BIGINT`)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(int64(800)))

	total, err := repo.Replay(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(800), total)
}
