package plantrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/pkg/grid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var plantCols = []string{"id", "forest_id", "asset_id", "x", "y", "growth_stage", "health", "max_health", "growth_days",
	"is_dead", "dead_highlight", "water_count_today", "water_total", "last_watered_date", "planted_at", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name          string
		mockSetup     func()
		expectedError error
		expectErr     bool
	}{
		{
			name: "Plant stored",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO plants`)).
					WithArgs(1, 2, 0, 0, domain.StageSmall, 60, 60).
					WillReturnRows(pgxmock.NewRows([]string{"id", "planted_at", "updated_at"}).AddRow(7, now, now))
			},
		},
		{
			name: "Cell already taken",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO plants`)).
					WithArgs(1, 2, 0, 0, domain.StageSmall, 60, 60).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: plantCellKey})
			},
			expectedError: grid.ErrOccupied,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO plants`)).
					WithArgs(1, 2, 0, 0, domain.StageSmall, 60, 60).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			plant := &domain.Plant{ForestID: 1, AssetID: 2, Stage: domain.StageSmall, Health: 60, MaxHealth: 60}
			err := repo.Insert(context.Background(), plant)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			case tt.expectErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, 7, plant.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	watered := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM plants WHERE id = $1 FOR UPDATE`)).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows(plantCols).
			AddRow(7, 1, 2, 3, 4, domain.StageMedium, 70, 80, 2, false, false, 1, 9, &watered, now, now))

	plant, err := repo.GetForUpdate(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, domain.StageMedium, plant.Stage)
	assert.Equal(t, 70, plant.Health)
	require.NotNil(t, plant.LastWateredDate)
	assert.Equal(t, watered, *plant.LastWateredDate)
	assert.Equal(t, 9, plant.WaterTotal)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM plants WHERE id = $1`)).
		WithArgs(8).
		WillReturnError(pgx.ErrNoRows)

	plant, err = repo.Get(context.Background(), 8)
	assert.NoError(t, err)
	assert.Nil(t, plant)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateWatering(t *testing.T) {
	repo, mock := NewMock(t)
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	plant := &domain.Plant{ID: 7, Health: 55, WaterCountToday: 1, WaterTotal: 4, LastWateredDate: &day}

	mock.ExpectExec(regexp.QuoteMeta(`SET health = $2, water_count_today = $3, water_total = $4, last_watered_date = $5`)).
		WithArgs(7, 55, 1, 4, &day).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateWatering(context.Background(), plant)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdatePosition(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE plants SET x = $2, y = $3`)).
		WithArgs(7, 5, 5).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: plantCellKey})

	err := repo.UpdatePosition(context.Background(), 7, 5, 5)
	assert.ErrorIs(t, err, grid.ErrOccupied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_BatchStatements(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		fragment string
		args     []any
		run      func(repo *Repository) (int64, error)
	}{
		{
			name:     "Decay floors at zero",
			fragment: `SET health = GREATEST(health - $1, 0)`,
			args:     []any{5},
			run: func(repo *Repository) (int64, error) {
				return repo.DecayAll(context.Background(), 5)
			},
		},
		{
			name:     "Emission penalty",
			fragment: `e.emission_date = $1 AND e.total_emission > $2 AND NOT p.is_dead`,
			args:     []any{day, decimal.NewFromInt(40), 10},
			run: func(repo *Repository) (int64, error) {
				return repo.PenalizeEmitters(context.Background(), day, decimal.NewFromInt(40), 10)
			},
		},
		{
			name:     "Death",
			fragment: `SET is_dead = TRUE, dead_highlight = TRUE`,
			run: func(repo *Repository) (int64, error) {
				return repo.MarkDead(context.Background())
			},
		},
		{
			name:     "Advance growth",
			fragment: `WHERE NOT is_dead AND health >= CASE growth_stage WHEN 'SMALL' THEN 40 WHEN 'MEDIUM' THEN 65 WHEN 'LARGE' THEN 80 ELSE NULL END`,
			run: func(repo *Repository) (int64, error) {
				return repo.AdvanceGrowth(context.Background())
			},
		},
		{
			name: "Promote",
			fragment: `SET growth_stage = CASE growth_stage WHEN 'SMALL' THEN 'MEDIUM' WHEN 'MEDIUM' THEN 'LARGE' ELSE growth_stage END, ` +
				`max_health = CASE growth_stage WHEN 'SMALL' THEN 80 WHEN 'MEDIUM' THEN 100 ELSE max_health END`,
			args: []any{3},
			run: func(repo *Repository) (int64, error) {
				return repo.PromoteGrown(context.Background(), 3)
			},
		},
		{
			name:     "Reset growth",
			fragment: `WHERE NOT is_dead AND growth_days > 0 AND health < CASE growth_stage`,
			run: func(repo *Repository) (int64, error) {
				return repo.ResetGrowth(context.Background())
			},
		},
		{
			name:     "Reset watering",
			fragment: `SET water_count_today = 0`,
			run: func(repo *Repository) (int64, error) {
				return repo.ResetWatering(context.Background())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			exp := mock.ExpectExec(regexp.QuoteMeta(tt.fragment))
			if len(tt.args) > 0 {
				exp = exp.WithArgs(tt.args...)
			}
			exp.WillReturnResult(pgxmock.NewResult("UPDATE", 4))

			affected, err := tt.run(repo)
			assert.NoError(t, err)
			assert.Equal(t, int64(4), affected)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListTreeOwners(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY f.user_id`)).
		WithArgs(domain.StageLarge, 80).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "count"}).
			AddRow(1, int64(2)).
			AddRow(3, int64(1)))

	owners, err := repo.ListTreeOwners(context.Background(), domain.StageLarge, 80)
	require.NoError(t, err)
	assert.Equal(t, []domain.TreeOwner{{UserID: 1, Trees: 2}, {UserID: 3, Trees: 1}}, owners)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_PhaseMarkers(t *testing.T) {
	repo, mock := NewMock(t)
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM batch_runs`)).
		WithArgs("lifecycle", day, "decay").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (job, run_date, phase) DO NOTHING`)).
		WithArgs("lifecycle", day, "death", int64(2)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	done, err := repo.PhaseDone(context.Background(), "lifecycle", day, "decay")
	require.NoError(t, err)
	assert.True(t, done)

	assert.NoError(t, repo.CompletePhase(context.Background(), "lifecycle", day, "death", 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
