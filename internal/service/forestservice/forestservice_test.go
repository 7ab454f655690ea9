package forestservice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/internal/pg"
	"github.com/GlebRadaev/cocosforest/pkg/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var (
	fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	today    = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
)

type mocks struct {
	forests *MockForestRepo
	plants  *MockPlantRepo
	points  *MockPointService
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		forests: NewMockForestRepo(ctrl),
		plants:  NewMockPlantRepo(ctrl),
		points:  NewMockPointService(ctrl),
	}
	tx := pg.NewMockTXManager(ctrl)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	service := New(m.forests, m.plants, m.points, tx, time.UTC)
	service.now = func() time.Time { return fixedNow }
	return service, m
}

func testForest() *domain.Forest {
	return &domain.Forest{ID: 3, UserID: 1, Size: 8, PondX: 3, PondY: 3}
}

func TestCreateForest(t *testing.T) {
	service, m := NewMock(t)

	m.points.EXPECT().CreateAccount(gomock.Any(), 1).Return(nil)
	m.forests.EXPECT().Create(gomock.Any(), &domain.Forest{UserID: 1, Size: 8, PondX: 3, PondY: 3}).Return(nil)
	forest, err := service.CreateForest(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 8, forest.Size)

	m.points.EXPECT().CreateAccount(gomock.Any(), 1).Return(nil)
	m.forests.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrForestExists)
	_, err = service.CreateForest(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrForestExists)

	m.points.EXPECT().CreateAccount(gomock.Any(), 2).Return(errors.New("db down"))
	_, err = service.CreateForest(context.Background(), 2)
	assert.Error(t, err)
}

func TestAssets(t *testing.T) {
	service, m := NewMock(t)
	catalog := []domain.Asset{{ID: 1, Name: "Pine", Kind: domain.AssetTree, PricePoints: 200, Active: true}}

	m.forests.EXPECT().ListActiveAssets(gomock.Any()).Return(catalog, nil)
	assets, err := service.Assets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog, assets)
}

func TestGetForest(t *testing.T) {
	service, m := NewMock(t)

	m.forests.EXPECT().GetByUser(gomock.Any(), 1).Return(testForest(), nil)
	m.plants.EXPECT().ListByForest(gomock.Any(), 3).Return([]domain.Plant{{ID: 7}}, nil)
	m.forests.EXPECT().ListDecorations(gomock.Any(), 3).Return(nil, nil)

	view, err := service.GetForest(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, view.Plants, 1)

	m.forests.EXPECT().GetByUser(gomock.Any(), 2).Return(nil, nil)
	_, err = service.GetForest(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrForestNotFound)
}

func TestPlant(t *testing.T) {
	pine := &domain.Asset{ID: 1, Name: "Pine", Kind: domain.AssetTree, PricePoints: 200, Active: true}
	lantern := &domain.Asset{ID: 4, Name: "Stone lantern", Kind: domain.AssetDecoration, PricePoints: 150, Active: true}

	tests := []struct {
		name          string
		x, y          int
		prepareMock   func(m mocks)
		expectedError error
	}{
		{
			name: "Plant pays the asset price",
			x:    0, y: 0,
			prepareMock: func(m mocks) {
				m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(testForest(), nil)
				m.forests.EXPECT().OccupiedCells(gomock.Any(), 3).Return(nil, nil)
				m.forests.EXPECT().GetAsset(gomock.Any(), 1).Return(pine, nil)
				m.plants.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Plant) error {
					assert.Equal(t, domain.StageSmall, p.Stage)
					assert.Equal(t, 60, p.Health)
					assert.Equal(t, 60, p.MaxHealth)
					p.ID = 7
					return nil
				})
				m.points.EXPECT().Spend(gomock.Any(), 1, int64(200), domain.ReasonPlant, "7", "plant Pine").
					Return(&domain.LedgerEntry{BalanceAfter: 800}, nil)
			},
		},
		{
			name: "Insufficient funds",
			x:    0, y: 0,
			prepareMock: func(m mocks) {
				m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(testForest(), nil)
				m.forests.EXPECT().OccupiedCells(gomock.Any(), 3).Return(nil, nil)
				m.forests.EXPECT().GetAsset(gomock.Any(), 1).Return(pine, nil)
				m.plants.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				m.points.EXPECT().Spend(gomock.Any(), 1, int64(200), domain.ReasonPlant, gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrInsufficientFunds)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
		{
			name: "Pond cell",
			x:    3, y: 4,
			prepareMock: func(m mocks) {
				m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(testForest(), nil)
				m.forests.EXPECT().OccupiedCells(gomock.Any(), 3).Return(nil, nil)
				m.forests.EXPECT().GetAsset(gomock.Any(), 1).Return(pine, nil)
			},
			expectedError: grid.ErrPondArea,
		},
		{
			name: "Occupied cell",
			x:    1, y: 1,
			prepareMock: func(m mocks) {
				m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(testForest(), nil)
				m.forests.EXPECT().OccupiedCells(gomock.Any(), 3).Return([]grid.Point{{X: 1, Y: 1}}, nil)
				m.forests.EXPECT().GetAsset(gomock.Any(), 1).Return(pine, nil)
			},
			expectedError: grid.ErrOccupied,
		},
		{
			name: "Outside the forest",
			x:    8, y: 0,
			prepareMock: func(m mocks) {
				m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(testForest(), nil)
				m.forests.EXPECT().OccupiedCells(gomock.Any(), 3).Return(nil, nil)
				m.forests.EXPECT().GetAsset(gomock.Any(), 1).Return(pine, nil)
			},
			expectedError: grid.ErrOutOfBounds,
		},
		{
			name: "Decoration asset cannot be planted",
			x:    0, y: 0,
			prepareMock: func(m mocks) {
				m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(testForest(), nil)
				m.forests.EXPECT().OccupiedCells(gomock.Any(), 3).Return(nil, nil)
				m.forests.EXPECT().GetAsset(gomock.Any(), 1).Return(lantern, nil)
			},
			expectedError: domain.ErrAssetNotPlantable,
		},
		{
			name: "Unknown asset",
			x:    0, y: 0,
			prepareMock: func(m mocks) {
				m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(testForest(), nil)
				m.forests.EXPECT().OccupiedCells(gomock.Any(), 3).Return(nil, nil)
				m.forests.EXPECT().GetAsset(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrAssetNotFound,
		},
		{
			name: "No forest",
			x:    0, y: 0,
			prepareMock: func(m mocks) {
				m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrForestNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			plant, err := service.Plant(context.Background(), 1, tt.x, tt.y, 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 7, plant.ID)
		})
	}
}

func TestWater(t *testing.T) {
	yesterday := today.AddDate(0, 0, -1)

	tests := []struct {
		name          string
		plant         domain.Plant
		spend         bool
		spendErr      error
		expectedError error
		health        int
		count         int
		total         int
	}{
		{
			name:   "First watering of the day",
			plant:  domain.Plant{ID: 7, ForestID: 3, Health: 50, MaxHealth: 60},
			spend:  true,
			health: 55,
			count:  1,
			total:  1,
		},
		{
			name:   "Health is capped",
			plant:  domain.Plant{ID: 7, ForestID: 3, Health: 58, MaxHealth: 60, WaterCountToday: 1, WaterTotal: 4, LastWateredDate: &today},
			spend:  true,
			health: 60,
			count:  2,
			total:  5,
		},
		{
			name:   "Yesterday's count does not carry over",
			plant:  domain.Plant{ID: 7, ForestID: 3, Health: 40, MaxHealth: 60, WaterCountToday: 3, WaterTotal: 3, LastWateredDate: &yesterday},
			spend:  true,
			health: 45,
			count:  1,
			total:  4,
		},
		{
			name:          "Fourth watering is refused",
			plant:         domain.Plant{ID: 7, ForestID: 3, Health: 40, MaxHealth: 60, WaterCountToday: 3, WaterTotal: 3, LastWateredDate: &today},
			expectedError: domain.ErrWaterLimit,
		},
		{
			name:          "Dead plant",
			plant:         domain.Plant{ID: 7, ForestID: 3, IsDead: true, MaxHealth: 60},
			expectedError: domain.ErrPlantDead,
		},
		{
			name:          "Someone else's plant",
			plant:         domain.Plant{ID: 7, ForestID: 4, Health: 50, MaxHealth: 60},
			expectedError: domain.ErrPlantNotFound,
		},
		{
			name:          "Not enough points",
			plant:         domain.Plant{ID: 7, ForestID: 3, Health: 50, MaxHealth: 60},
			spend:         true,
			spendErr:      domain.ErrInsufficientFunds,
			expectedError: domain.ErrInsufficientFunds,
			total:         1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			plant := tt.plant

			m.forests.EXPECT().GetByUser(gomock.Any(), 1).Return(testForest(), nil)
			m.plants.EXPECT().GetForUpdate(gomock.Any(), 7).Return(&plant, nil)
			if tt.spend {
				ref := fmt.Sprintf("7/%d", tt.total)
				m.points.EXPECT().Spend(gomock.Any(), 1, int64(50), domain.ReasonWater, ref, "water plant").
					Return(&domain.LedgerEntry{}, tt.spendErr)
			}
			if tt.spend && tt.spendErr == nil {
				m.plants.EXPECT().UpdateWatering(gomock.Any(), gomock.Any()).Return(nil)
			}

			watered, err := service.Water(context.Background(), 1, 7)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.health, watered.Health)
			assert.Equal(t, tt.count, watered.WaterCountToday)
			assert.Equal(t, tt.total, watered.WaterTotal)
			require.NotNil(t, watered.LastWateredDate)
			assert.Equal(t, today, *watered.LastWateredDate)
		})
	}
}

func TestWater_AfterNightlyResetSameDay(t *testing.T) {
	service, m := NewMock(t)
	stored := domain.Plant{ID: 7, ForestID: 3, Health: 20, MaxHealth: 60}

	keys := map[string]bool{}
	m.forests.EXPECT().GetByUser(gomock.Any(), 1).Return(testForest(), nil).AnyTimes()
	m.plants.EXPECT().GetForUpdate(gomock.Any(), 7).DoAndReturn(func(_ context.Context, _ int) (*domain.Plant, error) {
		p := stored
		return &p, nil
	}).AnyTimes()
	m.plants.EXPECT().UpdateWatering(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Plant) error {
		stored = *p
		return nil
	}).AnyTimes()
	m.points.EXPECT().Spend(gomock.Any(), 1, int64(50), domain.ReasonWater, gomock.Any(), "water plant").
		DoAndReturn(func(_ context.Context, userID int, _ int64, reason domain.Reason, ref, _ string) (*domain.LedgerEntry, error) {
			key := domain.IdempotencyKey(userID, reason, ref)
			if keys[key] {
				return nil, domain.ErrDuplicateEntry
			}
			keys[key] = true
			return &domain.LedgerEntry{}, nil
		}).AnyTimes()

	for i := 0; i < 3; i++ {
		_, err := service.Water(context.Background(), 1, 7)
		require.NoError(t, err)
	}
	_, err := service.Water(context.Background(), 1, 7)
	require.ErrorIs(t, err, domain.ErrWaterLimit)

	// the lifecycle batch runs later the same day
	stored.WaterCountToday = 0

	watered, err := service.Water(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, watered.WaterCountToday)
	assert.Equal(t, 4, watered.WaterTotal)
	assert.Len(t, keys, 4)
}

func TestMove(t *testing.T) {
	tests := []struct {
		name          string
		to            grid.Point
		cells         []grid.Point
		expectedError error
	}{
		{name: "Free cell", to: grid.Point{X: 6, Y: 6}, cells: []grid.Point{{X: 0, Y: 0}}},
		{name: "Same cell", to: grid.Point{X: 0, Y: 0}, cells: []grid.Point{{X: 0, Y: 0}}},
		{name: "Onto a decoration", to: grid.Point{X: 1, Y: 0}, cells: []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, expectedError: grid.ErrOccupied},
		{name: "Into the pond", to: grid.Point{X: 4, Y: 4}, cells: []grid.Point{{X: 0, Y: 0}}, expectedError: grid.ErrPondArea},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(testForest(), nil)
			m.forests.EXPECT().OccupiedCells(gomock.Any(), 3).Return(tt.cells, nil)
			m.plants.EXPECT().Get(gomock.Any(), 7).Return(&domain.Plant{ID: 7, ForestID: 3}, nil)
			if tt.expectedError == nil {
				m.plants.EXPECT().UpdatePosition(gomock.Any(), 7, tt.to.X, tt.to.Y).Return(nil)
			}

			plant, err := service.Move(context.Background(), 1, 7, tt.to.X, tt.to.Y)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, grid.Point{X: plant.X, Y: plant.Y})
		})
	}
}

func TestRemove(t *testing.T) {
	t.Run("Dead plant is removed", func(t *testing.T) {
		service, m := NewMock(t)
		m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(testForest(), nil)
		m.plants.EXPECT().Get(gomock.Any(), 7).Return(&domain.Plant{ID: 7, ForestID: 3, IsDead: true}, nil)
		m.plants.EXPECT().Delete(gomock.Any(), 7).Return(nil)

		assert.NoError(t, service.Remove(context.Background(), 1, 7))
	})

	t.Run("Living plant stays", func(t *testing.T) {
		service, m := NewMock(t)
		m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(testForest(), nil)
		m.plants.EXPECT().Get(gomock.Any(), 7).Return(&domain.Plant{ID: 7, ForestID: 3, Health: 10}, nil)

		assert.ErrorIs(t, service.Remove(context.Background(), 1, 7), domain.ErrPlantNotDead)
	})
}

func TestExpandForest(t *testing.T) {
	t.Run("Pond is recentred", func(t *testing.T) {
		service, m := NewMock(t)
		m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(testForest(), nil)
		m.forests.EXPECT().OccupiedCells(gomock.Any(), 3).Return([]grid.Point{{X: 0, Y: 0}, {X: 7, Y: 7}}, nil)
		m.points.EXPECT().Spend(gomock.Any(), 1, int64(1000), domain.ReasonExpand, "3:10", "expand forest").Return(&domain.LedgerEntry{}, nil)
		m.forests.EXPECT().ShiftOccupants(gomock.Any(), 3, grid.Shift{DX: 1, DY: 1}).Return(nil)
		m.forests.EXPECT().UpdateLayout(gomock.Any(), &domain.Forest{ID: 3, UserID: 1, Size: 10, PondX: 4, PondY: 4}).Return(nil)

		forest, err := service.ExpandForest(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 10, forest.Size)
	})

	t.Run("Moved pond travels with the layout when the centre is taken", func(t *testing.T) {
		service, m := NewMock(t)
		forest := testForest()
		forest.PondX, forest.PondY = 1, 1
		m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(forest, nil)
		m.forests.EXPECT().OccupiedCells(gomock.Any(), 3).Return([]grid.Point{{X: 3, Y: 3}}, nil)
		m.points.EXPECT().Spend(gomock.Any(), 1, int64(1000), domain.ReasonExpand, "3:10", "expand forest").Return(&domain.LedgerEntry{}, nil)
		m.forests.EXPECT().ShiftOccupants(gomock.Any(), 3, grid.Shift{DX: 1, DY: 1}).Return(nil)
		m.forests.EXPECT().UpdateLayout(gomock.Any(), &domain.Forest{ID: 3, UserID: 1, Size: 10, PondX: 2, PondY: 2}).Return(nil)

		_, err := service.ExpandForest(context.Background(), 1)
		require.NoError(t, err)
	})

	t.Run("Insufficient funds leaves the layout", func(t *testing.T) {
		service, m := NewMock(t)
		m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(testForest(), nil)
		m.forests.EXPECT().OccupiedCells(gomock.Any(), 3).Return(nil, nil)
		m.points.EXPECT().Spend(gomock.Any(), 1, int64(1000), domain.ReasonExpand, "3:10", "expand forest").Return(nil, domain.ErrInsufficientFunds)

		_, err := service.ExpandForest(context.Background(), 1)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})
}

func TestMovePond(t *testing.T) {
	tests := []struct {
		name          string
		to            grid.Point
		cells         []grid.Point
		expectedError error
	}{
		{name: "Valid anchor", to: grid.Point{X: 1, Y: 1}},
		{name: "Touches the border", to: grid.Point{X: 0, Y: 3}, expectedError: grid.ErrInvalidPond},
		{name: "Covers a plant", to: grid.Point{X: 1, Y: 1}, cells: []grid.Point{{X: 2, Y: 2}}, expectedError: grid.ErrPondBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(testForest(), nil)
			m.forests.EXPECT().OccupiedCells(gomock.Any(), 3).Return(tt.cells, nil)
			if tt.expectedError == nil {
				m.forests.EXPECT().UpdateLayout(gomock.Any(), gomock.Any()).Return(nil)
			}

			forest, err := service.MovePond(context.Background(), 1, tt.to.X, tt.to.Y)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, grid.Point{X: forest.PondX, Y: forest.PondY})
		})
	}
}

func TestDecorations(t *testing.T) {
	lantern := &domain.Asset{ID: 4, Name: "Stone lantern", Kind: domain.AssetDecoration, PricePoints: 150, Active: true}
	pine := &domain.Asset{ID: 1, Name: "Pine", Kind: domain.AssetTree, PricePoints: 200, Active: true}

	t.Run("Place pays the price", func(t *testing.T) {
		service, m := NewMock(t)
		m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(testForest(), nil)
		m.forests.EXPECT().OccupiedCells(gomock.Any(), 3).Return(nil, nil)
		m.forests.EXPECT().GetAsset(gomock.Any(), 4).Return(lantern, nil)
		m.forests.EXPECT().InsertDecoration(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d *domain.Decoration) error {
			d.ID = 9
			return nil
		})
		m.points.EXPECT().Spend(gomock.Any(), 1, int64(150), domain.ReasonDecorate, "9", "place Stone lantern").Return(&domain.LedgerEntry{}, nil)

		d, err := service.PlaceDecoration(context.Background(), 1, 4, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, 9, d.ID)
	})

	t.Run("Trees are not decorations", func(t *testing.T) {
		service, m := NewMock(t)
		m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(testForest(), nil)
		m.forests.EXPECT().OccupiedCells(gomock.Any(), 3).Return(nil, nil)
		m.forests.EXPECT().GetAsset(gomock.Any(), 1).Return(pine, nil)

		_, err := service.PlaceDecoration(context.Background(), 1, 1, 0, 1)
		assert.ErrorIs(t, err, domain.ErrAssetNotDecoration)
	})

	t.Run("Remove refunds the price", func(t *testing.T) {
		service, m := NewMock(t)
		m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(testForest(), nil)
		m.forests.EXPECT().GetDecoration(gomock.Any(), 9).Return(&domain.Decoration{ID: 9, ForestID: 3, AssetID: 4}, nil)
		m.forests.EXPECT().GetAsset(gomock.Any(), 4).Return(lantern, nil)
		m.forests.EXPECT().DeleteDecoration(gomock.Any(), 9).Return(nil)
		m.points.EXPECT().Earn(gomock.Any(), 1, int64(150), domain.ReasonDecorationRefund, "9", "refund Stone lantern").Return(&domain.LedgerEntry{}, nil)

		refund, err := service.RemoveDecoration(context.Background(), 1, 9)
		require.NoError(t, err)
		assert.Equal(t, int64(150), refund)
	})

	t.Run("Someone else's decoration", func(t *testing.T) {
		service, m := NewMock(t)
		m.forests.EXPECT().GetByUserForUpdate(gomock.Any(), 1).Return(testForest(), nil)
		m.forests.EXPECT().GetDecoration(gomock.Any(), 9).Return(&domain.Decoration{ID: 9, ForestID: 5, AssetID: 4}, nil)

		_, err := service.RemoveDecoration(context.Background(), 1, 9)
		assert.ErrorIs(t, err, domain.ErrDecorationNotFound)
	})
}

func TestIsPlacementError(t *testing.T) {
	assert.True(t, IsPlacementError(grid.ErrPondArea))
	assert.True(t, IsPlacementError(grid.ErrOutOfBounds))
	assert.False(t, IsPlacementError(grid.ErrOccupied))
	assert.False(t, IsPlacementError(errors.New("db error")))
}
