package forestrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/internal/pg"
	"github.com/GlebRadaev/cocosforest/pkg/grid"
)

const (
	forestColumns     = `id, user_id, size, pond_x, pond_y, created_at`
	decorationColumns = `id, forest_id, asset_id, x, y, placed_at`

	decorationCellKey = "decorations_forest_id_x_y_key"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByUser(ctx context.Context, userID int) (*domain.Forest, error) {
	return r.getForest(ctx, `SELECT `+forestColumns+` FROM forests WHERE user_id = $1`, userID)
}

// GetByUserForUpdate locks the forest row, serialising every placement in it.
func (r *Repository) GetByUserForUpdate(ctx context.Context, userID int) (*domain.Forest, error) {
	return r.getForest(ctx, `SELECT `+forestColumns+` FROM forests WHERE user_id = $1 FOR UPDATE`, userID)
}

func (r *Repository) getForest(ctx context.Context, query string, userID int) (*domain.Forest, error) {
	var f domain.Forest
	err := r.db.QueryRow(ctx, query, userID).Scan(&f.ID, &f.UserID, &f.Size, &f.PondX, &f.PondY, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get forest", zap.Error(err))
		return nil, err
	}
	return &f, nil
}

func (r *Repository) Create(ctx context.Context, forest *domain.Forest) error {
	query := `
        INSERT INTO forests (user_id, size, pond_x, pond_y)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id) DO NOTHING
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, forest.UserID, forest.Size, forest.PondX, forest.PondY).Scan(&forest.ID, &forest.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrForestExists
		}
		zap.L().Error("can't create forest", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateLayout(ctx context.Context, forest *domain.Forest) error {
	query := `UPDATE forests SET size = $2, pond_x = $3, pond_y = $4 WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, forest.ID, forest.Size, forest.PondX, forest.PondY); err != nil {
		zap.L().Error("can't update forest layout", zap.Error(err))
		return err
	}
	return nil
}

// OccupiedCells lists every cell holding a plant or a decoration.
func (r *Repository) OccupiedCells(ctx context.Context, forestID int) ([]grid.Point, error) {
	query := `
        SELECT x, y FROM plants WHERE forest_id = $1
        UNION ALL
        SELECT x, y FROM decorations WHERE forest_id = $1
    `
	rows, err := r.db.Query(ctx, query, forestID)
	if err != nil {
		zap.L().Error("can't list occupied cells", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cells []grid.Point
	for rows.Next() {
		var p grid.Point
		if err := rows.Scan(&p.X, &p.Y); err != nil {
			zap.L().Error("can't scan occupied cell", zap.Error(err))
			return nil, err
		}
		cells = append(cells, p)
	}
	return cells, rows.Err()
}

// ShiftOccupants moves every plant and decoration of the forest by the
// shift. The first statement per table parks rows in the negative staging
// space, the second brings them back, so no intermediate state breaks the
// per-cell unique keys.
func (r *Repository) ShiftOccupants(ctx context.Context, forestID int, shift grid.Shift) error {
	for _, table := range []string{"plants", "decorations"} {
		stage := `UPDATE ` + table + ` SET x = -(x + $2) - 1, y = -(y + $3) - 1 WHERE forest_id = $1`
		if _, err := r.db.Exec(ctx, stage, forestID, shift.DX, shift.DY); err != nil {
			zap.L().Error("can't stage occupants", zap.String("table", table), zap.Error(err))
			return err
		}
		final := `UPDATE ` + table + ` SET x = -x - 1, y = -y - 1 WHERE forest_id = $1 AND x < 0`
		if _, err := r.db.Exec(ctx, final, forestID); err != nil {
			zap.L().Error("can't place staged occupants", zap.String("table", table), zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) GetAsset(ctx context.Context, id int) (*domain.Asset, error) {
	query := `SELECT id, name, kind, price_points, active FROM assets WHERE id = $1`
	var a domain.Asset
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.Kind, &a.PricePoints, &a.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get asset", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

// ListActiveAssets returns the shop catalog, cheapest first within a kind.
func (r *Repository) ListActiveAssets(ctx context.Context) ([]domain.Asset, error) {
	query := `SELECT id, name, kind, price_points, active FROM assets WHERE active ORDER BY kind, price_points, id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list assets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		var a domain.Asset
		if err := rows.Scan(&a.ID, &a.Name, &a.Kind, &a.PricePoints, &a.Active); err != nil {
			zap.L().Error("can't scan asset row", zap.Error(err))
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (r *Repository) ListDecorations(ctx context.Context, forestID int) ([]domain.Decoration, error) {
	query := `SELECT ` + decorationColumns + ` FROM decorations WHERE forest_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, forestID)
	if err != nil {
		zap.L().Error("can't list decorations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var decorations []domain.Decoration
	for rows.Next() {
		var d domain.Decoration
		if err := rows.Scan(&d.ID, &d.ForestID, &d.AssetID, &d.X, &d.Y, &d.PlacedAt); err != nil {
			zap.L().Error("can't scan decoration row", zap.Error(err))
			return nil, err
		}
		decorations = append(decorations, d)
	}
	return decorations, rows.Err()
}

func (r *Repository) GetDecoration(ctx context.Context, id int) (*domain.Decoration, error) {
	query := `SELECT ` + decorationColumns + ` FROM decorations WHERE id = $1`
	var d domain.Decoration
	err := r.db.QueryRow(ctx, query, id).Scan(&d.ID, &d.ForestID, &d.AssetID, &d.X, &d.Y, &d.PlacedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get decoration", zap.Error(err))
		return nil, err
	}
	return &d, nil
}

func (r *Repository) InsertDecoration(ctx context.Context, d *domain.Decoration) error {
	query := `
        INSERT INTO decorations (forest_id, asset_id, x, y)
        VALUES ($1, $2, $3, $4)
        RETURNING id, placed_at
    `
	err := r.db.QueryRow(ctx, query, d.ForestID, d.AssetID, d.X, d.Y).Scan(&d.ID, &d.PlacedAt)
	if err != nil {
		if pg.IsUniqueViolation(err, decorationCellKey) {
			return grid.ErrOccupied
		}
		zap.L().Error("can't insert decoration", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteDecoration(ctx context.Context, id int) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM decorations WHERE id = $1`, id); err != nil {
		zap.L().Error("can't delete decoration", zap.Error(err))
		return err
	}
	return nil
}
