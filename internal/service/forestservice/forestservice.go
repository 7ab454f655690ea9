package forestservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/internal/pg"
	"github.com/GlebRadaev/cocosforest/pkg/grid"
)

//go:generate mockgen -source=forestservice.go -destination=mock_forestservice.go -package=forestservice

type ForestRepo interface {
	GetByUser(ctx context.Context, userID int) (*domain.Forest, error)
	GetByUserForUpdate(ctx context.Context, userID int) (*domain.Forest, error)
	Create(ctx context.Context, forest *domain.Forest) error
	UpdateLayout(ctx context.Context, forest *domain.Forest) error
	OccupiedCells(ctx context.Context, forestID int) ([]grid.Point, error)
	ShiftOccupants(ctx context.Context, forestID int, shift grid.Shift) error
	GetAsset(ctx context.Context, id int) (*domain.Asset, error)
	ListActiveAssets(ctx context.Context) ([]domain.Asset, error)
	ListDecorations(ctx context.Context, forestID int) ([]domain.Decoration, error)
	GetDecoration(ctx context.Context, id int) (*domain.Decoration, error)
	InsertDecoration(ctx context.Context, d *domain.Decoration) error
	DeleteDecoration(ctx context.Context, id int) error
}

type PlantRepo interface {
	Insert(ctx context.Context, p *domain.Plant) error
	Get(ctx context.Context, id int) (*domain.Plant, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Plant, error)
	ListByForest(ctx context.Context, forestID int) ([]domain.Plant, error)
	UpdateWatering(ctx context.Context, p *domain.Plant) error
	UpdatePosition(ctx context.Context, id, x, y int) error
	Delete(ctx context.Context, id int) error

	DecayAll(ctx context.Context, amount int) (int64, error)
	PenalizeEmitters(ctx context.Context, day time.Time, limit decimal.Decimal, amount int) (int64, error)
	MarkDead(ctx context.Context) (int64, error)
	AdvanceGrowth(ctx context.Context) (int64, error)
	PromoteGrown(ctx context.Context, days int) (int64, error)
	ResetGrowth(ctx context.Context) (int64, error)
	ResetWatering(ctx context.Context) (int64, error)
	ListTreeOwners(ctx context.Context, stage domain.GrowthStage, minHealth int) ([]domain.TreeOwner, error)
	PhaseDone(ctx context.Context, job string, day time.Time, phase string) (bool, error)
	CompletePhase(ctx context.Context, job string, day time.Time, phase string, affected int64) error
}

type PointService interface {
	CreateAccount(ctx context.Context, userID int) error
	Spend(ctx context.Context, userID int, amount int64, reason domain.Reason, ref, desc string) (*domain.LedgerEntry, error)
	Earn(ctx context.Context, userID int, amount int64, reason domain.Reason, ref, desc string) (*domain.LedgerEntry, error)
}

// Rules holds the tunable numbers of the forest economy.
type Rules struct {
	WaterCost       int64
	WaterHeal       int
	DailyWaterLimit int
	ExpandCost      int64

	Decay           int
	EmissionLimit   decimal.Decimal
	EmissionPenalty int
	GrowthDays      int

	RewardStage     domain.GrowthStage
	RewardMinHealth int
	TreeReward      int64
	RewardWorkers   int
}

func DefaultRules() Rules {
	return Rules{
		WaterCost:       50,
		WaterHeal:       5,
		DailyWaterLimit: 3,
		ExpandCost:      1000,
		Decay:           5,
		EmissionLimit:   decimal.NewFromInt(40),
		EmissionPenalty: 10,
		GrowthDays:      3,
		RewardStage:     domain.StageLarge,
		RewardMinHealth: 80,
		TreeReward:      50,
		RewardWorkers:   8,
	}
}

type Service struct {
	forestRepo ForestRepo
	plantRepo  PlantRepo
	points     PointService
	txManager  pg.TXManager
	rules      Rules
	loc        *time.Location
	now        func() time.Time
}

func New(forestRepo ForestRepo, plantRepo PlantRepo, points PointService, txManager pg.TXManager, loc *time.Location) *Service {
	return &Service{
		forestRepo: forestRepo,
		plantRepo:  plantRepo,
		points:     points,
		txManager:  txManager,
		rules:      DefaultRules(),
		loc:        loc,
		now:        time.Now,
	}
}

func (s *Service) today() time.Time {
	return domain.DateOf(s.now(), s.loc)
}

// CreateForest lays out an empty default forest and opens the owner's points
// account alongside it.
func (s *Service) CreateForest(ctx context.Context, userID int) (*domain.Forest, error) {
	pond := grid.DefaultPond(grid.DefaultSize)
	forest := &domain.Forest{UserID: userID, Size: grid.DefaultSize, PondX: pond.X, PondY: pond.Y}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.points.CreateAccount(ctx, userID); err != nil {
			return err
		}
		return s.forestRepo.Create(ctx, forest)
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("forest created", zap.Int("userID", userID), zap.Int("forestID", forest.ID))
	return forest, nil
}

func (s *Service) GetForest(ctx context.Context, userID int) (*domain.ForestView, error) {
	forest, err := s.forestRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if forest == nil {
		return nil, domain.ErrForestNotFound
	}

	plants, err := s.plantRepo.ListByForest(ctx, forest.ID)
	if err != nil {
		return nil, err
	}
	decorations, err := s.forestRepo.ListDecorations(ctx, forest.ID)
	if err != nil {
		return nil, err
	}
	return &domain.ForestView{Forest: *forest, Plants: plants, Decorations: decorations}, nil
}

// Assets lists what can be planted or placed, with current prices.
func (s *Service) Assets(ctx context.Context) ([]domain.Asset, error) {
	return s.forestRepo.ListActiveAssets(ctx)
}

// Plant places a new SMALL plant and pays its price.
func (s *Service) Plant(ctx context.Context, userID, x, y, assetID int) (*domain.Plant, error) {
	var plant *domain.Plant
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		forest, g, err := s.lockGrid(ctx, userID)
		if err != nil {
			return err
		}

		asset, err := s.activeAsset(ctx, assetID)
		if err != nil {
			return err
		}
		if !asset.Plantable() {
			return domain.ErrAssetNotPlantable
		}
		if err := g.Validate(grid.Point{X: x, Y: y}); err != nil {
			return err
		}

		plant = &domain.Plant{
			ForestID:  forest.ID,
			AssetID:   asset.ID,
			X:         x,
			Y:         y,
			Stage:     domain.StageSmall,
			Health:    domain.StageSmall.MaxHealth(),
			MaxHealth: domain.StageSmall.MaxHealth(),
		}
		if err := s.plantRepo.Insert(ctx, plant); err != nil {
			return err
		}

		if asset.PricePoints > 0 {
			_, err = s.points.Spend(ctx, userID, asset.PricePoints, domain.ReasonPlant, strconv.Itoa(plant.ID), "plant "+asset.Name)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return plant, nil
}

// Water heals a living plant for a fee, at most DailyWaterLimit times per
// local day. Only the plant row is locked.
func (s *Service) Water(ctx context.Context, userID, plantID int) (*domain.Plant, error) {
	var plant *domain.Plant
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		forest, err := s.forest(ctx, userID)
		if err != nil {
			return err
		}
		plant, err = s.plantRepo.GetForUpdate(ctx, plantID)
		if err != nil {
			return err
		}
		if plant == nil || plant.ForestID != forest.ID {
			return domain.ErrPlantNotFound
		}
		if plant.IsDead {
			return domain.ErrPlantDead
		}

		today := s.today()
		if plant.LastWateredDate == nil || !domain.SameDate(*plant.LastWateredDate, today) {
			plant.WaterCountToday = 0
		}
		if plant.WaterCountToday >= s.rules.DailyWaterLimit {
			return domain.ErrWaterLimit
		}

		plant.WaterCountToday++
		plant.WaterTotal++
		plant.Health = min(plant.Health+s.rules.WaterHeal, plant.MaxHealth)
		plant.LastWateredDate = &today

		// the daily count is cleared by the nightly batch; the total never repeats
		ref := fmt.Sprintf("%d/%d", plant.ID, plant.WaterTotal)
		if _, err := s.points.Spend(ctx, userID, s.rules.WaterCost, domain.ReasonWater, ref, "water plant"); err != nil {
			return err
		}
		return s.plantRepo.UpdateWatering(ctx, plant)
	})
	if err != nil {
		return nil, err
	}
	return plant, nil
}

func (s *Service) Move(ctx context.Context, userID, plantID, x, y int) (*domain.Plant, error) {
	var plant *domain.Plant
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		forest, g, err := s.lockGrid(ctx, userID)
		if err != nil {
			return err
		}
		plant, err = s.ownedPlant(ctx, forest, plantID)
		if err != nil {
			return err
		}

		to := grid.Point{X: x, Y: y}
		if err := g.ValidateMove(grid.Point{X: plant.X, Y: plant.Y}, to); err != nil {
			return err
		}
		if err := s.plantRepo.UpdatePosition(ctx, plant.ID, x, y); err != nil {
			return err
		}
		plant.X, plant.Y = x, y
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plant, nil
}

// Remove clears a dead plant from the forest.
func (s *Service) Remove(ctx context.Context, userID, plantID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		forest, err := s.lockForest(ctx, userID)
		if err != nil {
			return err
		}
		plant, err := s.ownedPlant(ctx, forest, plantID)
		if err != nil {
			return err
		}
		if !plant.IsDead {
			return domain.ErrPlantNotDead
		}
		return s.plantRepo.Delete(ctx, plant.ID)
	})
}

// ExpandForest grows the forest by grid.ExpandStep and shifts every
// occupant so the old layout stays centred. The pond is recentred unless
// the centre is taken, in which case it moves with the layout.
func (s *Service) ExpandForest(ctx context.Context, userID int) (*domain.Forest, error) {
	var forest *domain.Forest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		forest, err = s.lockForest(ctx, userID)
		if err != nil {
			return err
		}
		cells, err := s.forestRepo.OccupiedCells(ctx, forest.ID)
		if err != nil {
			return err
		}

		exp := grid.Expand(forest.Size)
		ref := fmt.Sprintf("%d:%d", forest.ID, exp.Size)
		if _, err := s.points.Spend(ctx, userID, s.rules.ExpandCost, domain.ReasonExpand, ref, "expand forest"); err != nil {
			return err
		}
		if err := s.forestRepo.ShiftOccupants(ctx, forest.ID, exp.Shift); err != nil {
			return err
		}

		shifted := make([]grid.Point, 0, len(cells))
		for _, c := range cells {
			shifted = append(shifted, exp.Shift.Apply(c))
		}
		pond := exp.Pond
		if grid.New(exp.Size, pond, shifted).ValidatePond(pond) != nil {
			pond = exp.Shift.Apply(grid.Point{X: forest.PondX, Y: forest.PondY})
		}

		forest.Size = exp.Size
		forest.PondX, forest.PondY = pond.X, pond.Y
		return s.forestRepo.UpdateLayout(ctx, forest)
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("forest expanded", zap.Int("userID", userID), zap.Int("size", forest.Size))
	return forest, nil
}

func (s *Service) MovePond(ctx context.Context, userID, x, y int) (*domain.Forest, error) {
	var forest *domain.Forest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var (
			g   *grid.Grid
			err error
		)
		forest, g, err = s.lockGrid(ctx, userID)
		if err != nil {
			return err
		}
		if err := g.ValidatePond(grid.Point{X: x, Y: y}); err != nil {
			return err
		}
		forest.PondX, forest.PondY = x, y
		return s.forestRepo.UpdateLayout(ctx, forest)
	})
	if err != nil {
		return nil, err
	}
	return forest, nil
}

func (s *Service) PlaceDecoration(ctx context.Context, userID, assetID, x, y int) (*domain.Decoration, error) {
	var decoration *domain.Decoration
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		forest, g, err := s.lockGrid(ctx, userID)
		if err != nil {
			return err
		}
		asset, err := s.activeAsset(ctx, assetID)
		if err != nil {
			return err
		}
		if asset.Kind != domain.AssetDecoration {
			return domain.ErrAssetNotDecoration
		}
		if err := g.Validate(grid.Point{X: x, Y: y}); err != nil {
			return err
		}

		decoration = &domain.Decoration{ForestID: forest.ID, AssetID: asset.ID, X: x, Y: y}
		if err := s.forestRepo.InsertDecoration(ctx, decoration); err != nil {
			return err
		}
		if asset.PricePoints > 0 {
			_, err = s.points.Spend(ctx, userID, asset.PricePoints, domain.ReasonDecorate, strconv.Itoa(decoration.ID), "place "+asset.Name)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return decoration, nil
}

// RemoveDecoration takes a decoration back and refunds its current price.
func (s *Service) RemoveDecoration(ctx context.Context, userID, decorationID int) (int64, error) {
	var refund int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		forest, err := s.lockForest(ctx, userID)
		if err != nil {
			return err
		}
		decoration, err := s.forestRepo.GetDecoration(ctx, decorationID)
		if err != nil {
			return err
		}
		if decoration == nil || decoration.ForestID != forest.ID {
			return domain.ErrDecorationNotFound
		}
		asset, err := s.forestRepo.GetAsset(ctx, decoration.AssetID)
		if err != nil {
			return err
		}
		if err := s.forestRepo.DeleteDecoration(ctx, decoration.ID); err != nil {
			return err
		}

		if asset == nil || asset.PricePoints <= 0 {
			return nil
		}
		refund = asset.PricePoints
		_, err = s.points.Earn(ctx, userID, refund, domain.ReasonDecorationRefund, strconv.Itoa(decoration.ID), "refund "+asset.Name)
		return err
	})
	if err != nil {
		return 0, err
	}
	return refund, nil
}

func (s *Service) forest(ctx context.Context, userID int) (*domain.Forest, error) {
	forest, err := s.forestRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if forest == nil {
		return nil, domain.ErrForestNotFound
	}
	return forest, nil
}

func (s *Service) lockForest(ctx context.Context, userID int) (*domain.Forest, error) {
	forest, err := s.forestRepo.GetByUserForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if forest == nil {
		return nil, domain.ErrForestNotFound
	}
	return forest, nil
}

// lockGrid locks the forest and loads its occupancy.
func (s *Service) lockGrid(ctx context.Context, userID int) (*domain.Forest, *grid.Grid, error) {
	forest, err := s.lockForest(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	cells, err := s.forestRepo.OccupiedCells(ctx, forest.ID)
	if err != nil {
		return nil, nil, err
	}
	return forest, grid.New(forest.Size, grid.Point{X: forest.PondX, Y: forest.PondY}, cells), nil
}

func (s *Service) ownedPlant(ctx context.Context, forest *domain.Forest, plantID int) (*domain.Plant, error) {
	plant, err := s.plantRepo.Get(ctx, plantID)
	if err != nil {
		return nil, err
	}
	if plant == nil || plant.ForestID != forest.ID {
		return nil, domain.ErrPlantNotFound
	}
	return plant, nil
}

func (s *Service) activeAsset(ctx context.Context, assetID int) (*domain.Asset, error) {
	asset, err := s.forestRepo.GetAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil || !asset.Active {
		return nil, domain.ErrAssetNotFound
	}
	return asset, nil
}

// IsPlacementError reports whether err is a grid rule violation.
func IsPlacementError(err error) bool {
	return errors.Is(err, grid.ErrOutOfBounds) || errors.Is(err, grid.ErrPondArea) ||
		errors.Is(err, grid.ErrInvalidPond) || errors.Is(err, grid.ErrPondBlocked)
}
