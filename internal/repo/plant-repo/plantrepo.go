package plantrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/internal/pg"
	"github.com/GlebRadaev/cocosforest/pkg/grid"
)

const (
	plantColumns = `id, forest_id, asset_id, x, y, growth_stage, health, max_health, growth_days,
        is_dead, dead_highlight, water_count_today, water_total, last_watered_date, planted_at, updated_at`

	plantCellKey = "plants_forest_id_x_y_key"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, p *domain.Plant) error {
	query := `
        INSERT INTO plants (forest_id, asset_id, x, y, growth_stage, health, max_health)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, planted_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, p.ForestID, p.AssetID, p.X, p.Y, p.Stage, p.Health, p.MaxHealth).
		Scan(&p.ID, &p.PlantedAt, &p.UpdatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err, plantCellKey) {
			return grid.ErrOccupied
		}
		zap.L().Error("can't insert plant", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id int) (*domain.Plant, error) {
	return r.get(ctx, `SELECT `+plantColumns+` FROM plants WHERE id = $1`, id)
}

// GetForUpdate locks the plant row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Plant, error) {
	return r.get(ctx, `SELECT `+plantColumns+` FROM plants WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) get(ctx context.Context, query string, id int) (*domain.Plant, error) {
	p, err := scanPlant(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get plant", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) ListByForest(ctx context.Context, forestID int) ([]domain.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE forest_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, forestID)
	if err != nil {
		zap.L().Error("can't list plants", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var plants []domain.Plant
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			zap.L().Error("can't scan plant row", zap.Error(err))
			return nil, err
		}
		plants = append(plants, *p)
	}
	return plants, rows.Err()
}

func (r *Repository) UpdateWatering(ctx context.Context, p *domain.Plant) error {
	query := `
        UPDATE plants
        SET health = $2, water_count_today = $3, water_total = $4, last_watered_date = $5, updated_at = now()
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, p.ID, p.Health, p.WaterCountToday, p.WaterTotal, p.LastWateredDate); err != nil {
		zap.L().Error("can't update watering", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdatePosition(ctx context.Context, id, x, y int) error {
	query := `UPDATE plants SET x = $2, y = $3, updated_at = now() WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id, x, y); err != nil {
		if pg.IsUniqueViolation(err, plantCellKey) {
			return grid.ErrOccupied
		}
		zap.L().Error("can't move plant", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM plants WHERE id = $1`, id); err != nil {
		zap.L().Error("can't delete plant", zap.Error(err))
		return err
	}
	return nil
}

// DecayAll lowers the health of every living plant, flooring at zero.
func (r *Repository) DecayAll(ctx context.Context, amount int) (int64, error) {
	query := `
        UPDATE plants
        SET health = GREATEST(health - $1, 0), updated_at = now()
        WHERE NOT is_dead
    `
	return r.exec(ctx, "decay", query, amount)
}

// PenalizeEmitters lowers the health of living plants whose owner emitted
// more than the limit on the given day.
func (r *Repository) PenalizeEmitters(ctx context.Context, day time.Time, limit decimal.Decimal, amount int) (int64, error) {
	query := `
        UPDATE plants p
        SET health = GREATEST(p.health - $3, 0), updated_at = now()
        FROM forests f, daily_emissions e
        WHERE p.forest_id = f.id AND e.user_id = f.user_id
          AND e.emission_date = $1 AND e.total_emission > $2 AND NOT p.is_dead
    `
	return r.exec(ctx, "emission penalty", query, day, limit, amount)
}

func (r *Repository) MarkDead(ctx context.Context) (int64, error) {
	query := `
        UPDATE plants
        SET is_dead = TRUE, dead_highlight = TRUE, updated_at = now()
        WHERE health = 0 AND NOT is_dead
    `
	return r.exec(ctx, "death", query)
}

// AdvanceGrowth counts one more growth day for living plants at or above
// their stage threshold.
func (r *Repository) AdvanceGrowth(ctx context.Context) (int64, error) {
	query := `
        UPDATE plants
        SET growth_days = growth_days + 1, updated_at = now()
        WHERE NOT is_dead AND health >= ` + thresholdCase
	return r.exec(ctx, "advance growth", query)
}

// PromoteGrown moves plants with enough growth days to the next stage.
func (r *Repository) PromoteGrown(ctx context.Context, days int) (int64, error) {
	query := `
        UPDATE plants
        SET growth_stage = ` + nextStageCase + `, max_health = ` + nextMaxHealthCase + `, growth_days = 0, updated_at = now()
        WHERE NOT is_dead AND growth_days >= $1 AND growth_stage <> '` + string(domain.StageLarge) + `'`
	return r.exec(ctx, "promote growth", query, days)
}

// ResetGrowth clears the progress of living plants below their threshold.
func (r *Repository) ResetGrowth(ctx context.Context) (int64, error) {
	query := `
        UPDATE plants
        SET growth_days = 0, updated_at = now()
        WHERE NOT is_dead AND growth_days > 0 AND health < ` + thresholdCase
	return r.exec(ctx, "reset growth", query)
}

func (r *Repository) ResetWatering(ctx context.Context) (int64, error) {
	query := `UPDATE plants SET water_count_today = 0, updated_at = now() WHERE water_count_today <> 0`
	return r.exec(ctx, "reset watering", query)
}

// ListTreeOwners groups living plants of the stage with at least minHealth
// by owner.
func (r *Repository) ListTreeOwners(ctx context.Context, stage domain.GrowthStage, minHealth int) ([]domain.TreeOwner, error) {
	query := `
        SELECT f.user_id, COUNT(*)
        FROM plants p
        JOIN forests f ON f.id = p.forest_id
        WHERE p.growth_stage = $1 AND p.health >= $2 AND NOT p.is_dead
        GROUP BY f.user_id
        ORDER BY f.user_id
    `
	rows, err := r.db.Query(ctx, query, stage, minHealth)
	if err != nil {
		zap.L().Error("can't list tree owners", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var owners []domain.TreeOwner
	for rows.Next() {
		var o domain.TreeOwner
		var trees int64
		if err := rows.Scan(&o.UserID, &trees); err != nil {
			zap.L().Error("can't scan tree owner", zap.Error(err))
			return nil, err
		}
		o.Trees = int(trees)
		owners = append(owners, o)
	}
	return owners, rows.Err()
}

// PhaseDone reports whether the phase already completed for the run date.
func (r *Repository) PhaseDone(ctx context.Context, job string, day time.Time, phase string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM batch_runs WHERE job = $1 AND run_date = $2 AND phase = $3)`
	var done bool
	if err := r.db.QueryRow(ctx, query, job, day, phase).Scan(&done); err != nil {
		zap.L().Error("can't read batch marker", zap.Error(err))
		return false, err
	}
	return done, nil
}

func (r *Repository) CompletePhase(ctx context.Context, job string, day time.Time, phase string, affected int64) error {
	query := `
        INSERT INTO batch_runs (job, run_date, phase, affected)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (job, run_date, phase) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, query, job, day, phase, affected); err != nil {
		zap.L().Error("can't write batch marker", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) exec(ctx context.Context, op, query string, args ...any) (int64, error) {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error("plant batch statement failed", zap.String("op", op), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanPlant(row pgx.Row) (*domain.Plant, error) {
	var p domain.Plant
	err := row.Scan(&p.ID, &p.ForestID, &p.AssetID, &p.X, &p.Y, &p.Stage, &p.Health, &p.MaxHealth, &p.GrowthDays,
		&p.IsDead, &p.DeadHighlight, &p.WaterCountToday, &p.WaterTotal, &p.LastWateredDate, &p.PlantedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

var (
	thresholdCase = stageCase(func(s domain.GrowthStage) (string, bool) {
		return fmt.Sprint(s.GrowthThreshold()), true
	}, "NULL")
	nextStageCase = stageCase(func(s domain.GrowthStage) (string, bool) {
		next, ok := s.Next()
		return "'" + string(next) + "'", ok
	}, "growth_stage")
	nextMaxHealthCase = stageCase(func(s domain.GrowthStage) (string, bool) {
		next, ok := s.Next()
		return fmt.Sprint(next.MaxHealth()), ok
	}, "max_health")
)

// stageCase renders a per-stage value as a CASE over growth_stage. Stages
// without a value take otherwise.
func stageCase(value func(domain.GrowthStage) (string, bool), otherwise string) string {
	var b strings.Builder
	b.WriteString("CASE growth_stage")
	for _, s := range domain.Stages() {
		if v, ok := value(s); ok {
			fmt.Fprintf(&b, " WHEN '%s' THEN %s", s, v)
		}
	}
	fmt.Fprintf(&b, " ELSE %s END", otherwise)
	return b.String()
}
