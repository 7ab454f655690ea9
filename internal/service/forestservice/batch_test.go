package forestservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/internal/pg"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func expectPhase(m mocks, phase string, done bool) {
	m.plants.EXPECT().PhaseDone(gomock.Any(), lifecycleJob, today, phase).Return(done, nil)
}

func TestRunDailyBatch_Order(t *testing.T) {
	service, m := NewMock(t)
	yesterday := today.AddDate(0, 0, -1)

	gomock.InOrder(
		m.plants.EXPECT().PhaseDone(gomock.Any(), lifecycleJob, today, PhaseDecay).Return(false, nil),
		m.plants.EXPECT().DecayAll(gomock.Any(), 5).Return(int64(10), nil),
		m.plants.EXPECT().CompletePhase(gomock.Any(), lifecycleJob, today, PhaseDecay, int64(10)).Return(nil),

		m.plants.EXPECT().PhaseDone(gomock.Any(), lifecycleJob, today, PhaseEmissionPenalty).Return(false, nil),
		m.plants.EXPECT().PenalizeEmitters(gomock.Any(), yesterday, decimal.NewFromInt(40), 10).Return(int64(2), nil),
		m.plants.EXPECT().CompletePhase(gomock.Any(), lifecycleJob, today, PhaseEmissionPenalty, int64(2)).Return(nil),

		m.plants.EXPECT().PhaseDone(gomock.Any(), lifecycleJob, today, PhaseDeath).Return(false, nil),
		m.plants.EXPECT().MarkDead(gomock.Any()).Return(int64(1), nil),
		m.plants.EXPECT().CompletePhase(gomock.Any(), lifecycleJob, today, PhaseDeath, int64(1)).Return(nil),

		m.plants.EXPECT().PhaseDone(gomock.Any(), lifecycleJob, today, PhaseGrowth).Return(false, nil),
		m.plants.EXPECT().AdvanceGrowth(gomock.Any()).Return(int64(6), nil),
		m.plants.EXPECT().PromoteGrown(gomock.Any(), 3).Return(int64(1), nil),
		m.plants.EXPECT().ResetGrowth(gomock.Any()).Return(int64(2), nil),
		m.plants.EXPECT().CompletePhase(gomock.Any(), lifecycleJob, today, PhaseGrowth, int64(8)).Return(nil),

		m.plants.EXPECT().PhaseDone(gomock.Any(), lifecycleJob, today, PhaseWaterReset).Return(false, nil),
		m.plants.EXPECT().ResetWatering(gomock.Any()).Return(int64(4), nil),
		m.plants.EXPECT().CompletePhase(gomock.Any(), lifecycleJob, today, PhaseWaterReset, int64(4)).Return(nil),

		m.plants.EXPECT().PhaseDone(gomock.Any(), lifecycleJob, today, PhaseTreeRewards).Return(false, nil),
		m.plants.EXPECT().ListTreeOwners(gomock.Any(), domain.StageLarge, 80).Return([]domain.TreeOwner{{UserID: 1, Trees: 2}}, nil),
		m.points.EXPECT().Earn(gomock.Any(), 1, int64(100), domain.ReasonTreeReward, "2024-06-01", gomock.Any()).Return(&domain.LedgerEntry{}, nil),
		m.plants.EXPECT().CompletePhase(gomock.Any(), lifecycleJob, today, PhaseTreeRewards, int64(1)).Return(nil),
	)

	report, err := service.RunDailyBatch(context.Background(), today)
	require.NoError(t, err)
	require.Len(t, report.Phases, 6)
	assert.Equal(t, 1, report.RewardedUsers)
	assert.Equal(t, 0, report.FailedUsers)
}

func TestRunDailyBatch_SkipsCompletedPhases(t *testing.T) {
	service, m := NewMock(t)

	for _, phase := range []string{PhaseDecay, PhaseEmissionPenalty, PhaseDeath, PhaseGrowth, PhaseWaterReset, PhaseTreeRewards} {
		expectPhase(m, phase, true)
	}

	report, err := service.RunDailyBatch(context.Background(), today)
	require.NoError(t, err)
	for _, res := range report.Phases {
		assert.True(t, res.Skipped, res.Phase)
	}
}

func TestRunDailyBatch_PhaseErrorStops(t *testing.T) {
	service, m := NewMock(t)

	expectPhase(m, PhaseDecay, true)
	expectPhase(m, PhaseEmissionPenalty, false)
	m.plants.EXPECT().PenalizeEmitters(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db error"))

	report, err := service.RunDailyBatch(context.Background(), today)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), PhaseEmissionPenalty)
	assert.Len(t, report.Phases, 1)
}

func TestRunDailyBatch_RewardFailures(t *testing.T) {
	service, m := NewMock(t)

	for _, phase := range []string{PhaseDecay, PhaseEmissionPenalty, PhaseDeath, PhaseGrowth, PhaseWaterReset} {
		expectPhase(m, phase, true)
	}
	expectPhase(m, PhaseTreeRewards, false)
	m.plants.EXPECT().ListTreeOwners(gomock.Any(), domain.StageLarge, 80).Return([]domain.TreeOwner{
		{UserID: 1, Trees: 1},
		{UserID: 2, Trees: 3},
		{UserID: 3, Trees: 1},
	}, nil)
	m.points.EXPECT().Earn(gomock.Any(), 1, int64(50), domain.ReasonTreeReward, "2024-06-01", gomock.Any()).Return(&domain.LedgerEntry{}, nil)
	m.points.EXPECT().Earn(gomock.Any(), 2, int64(150), domain.ReasonTreeReward, "2024-06-01", gomock.Any()).Return(nil, domain.ErrDuplicateEntry)
	m.points.EXPECT().Earn(gomock.Any(), 3, int64(50), domain.ReasonTreeReward, "2024-06-01", gomock.Any()).Return(nil, domain.ErrLedgerWrite)

	report, err := service.RunDailyBatch(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, 2, report.RewardedUsers)
	assert.Equal(t, 1, report.FailedUsers)
}

// memoryPlants applies the batch statements to plants held in memory.
type memoryPlants struct {
	PlantRepo

	plants    map[int]*domain.Plant
	owners    map[int]int
	emissions map[int]decimal.Decimal
	markers   map[string]bool
}

func newMemoryPlants(plants ...domain.Plant) *memoryPlants {
	m := &memoryPlants{
		plants:    map[int]*domain.Plant{},
		owners:    map[int]int{},
		emissions: map[int]decimal.Decimal{},
		markers:   map[string]bool{},
	}
	for i := range plants {
		p := plants[i]
		m.plants[p.ID] = &p
		m.owners[p.ForestID] = p.ForestID
	}
	return m
}

func (m *memoryPlants) update(match func(p *domain.Plant) bool, apply func(p *domain.Plant)) int64 {
	var n int64
	for _, p := range m.plants {
		if match(p) {
			apply(p)
			n++
		}
	}
	return n
}

func (m *memoryPlants) DecayAll(_ context.Context, amount int) (int64, error) {
	return m.update(func(p *domain.Plant) bool { return !p.IsDead },
		func(p *domain.Plant) { p.Health = max(p.Health-amount, 0) }), nil
}

func (m *memoryPlants) PenalizeEmitters(_ context.Context, _ time.Time, limit decimal.Decimal, amount int) (int64, error) {
	return m.update(func(p *domain.Plant) bool {
		return !p.IsDead && m.emissions[m.owners[p.ForestID]].GreaterThan(limit)
	}, func(p *domain.Plant) { p.Health = max(p.Health-amount, 0) }), nil
}

func (m *memoryPlants) MarkDead(context.Context) (int64, error) {
	return m.update(func(p *domain.Plant) bool { return p.Health == 0 && !p.IsDead },
		func(p *domain.Plant) { p.IsDead, p.DeadHighlight = true, true }), nil
}

func (m *memoryPlants) AdvanceGrowth(context.Context) (int64, error) {
	return m.update(func(p *domain.Plant) bool { return !p.IsDead && p.Health >= p.Stage.GrowthThreshold() },
		func(p *domain.Plant) { p.GrowthDays++ }), nil
}

func (m *memoryPlants) PromoteGrown(_ context.Context, days int) (int64, error) {
	return m.update(func(p *domain.Plant) bool {
		_, ok := p.Stage.Next()
		return !p.IsDead && p.GrowthDays >= days && ok
	}, func(p *domain.Plant) {
		p.Stage, _ = p.Stage.Next()
		p.MaxHealth = p.Stage.MaxHealth()
		p.GrowthDays = 0
	}), nil
}

func (m *memoryPlants) ResetGrowth(context.Context) (int64, error) {
	return m.update(func(p *domain.Plant) bool {
		return !p.IsDead && p.GrowthDays > 0 && p.Health < p.Stage.GrowthThreshold()
	}, func(p *domain.Plant) { p.GrowthDays = 0 }), nil
}

func (m *memoryPlants) ResetWatering(context.Context) (int64, error) {
	return m.update(func(p *domain.Plant) bool { return p.WaterCountToday != 0 },
		func(p *domain.Plant) { p.WaterCountToday = 0 }), nil
}

func (m *memoryPlants) ListTreeOwners(_ context.Context, stage domain.GrowthStage, minHealth int) ([]domain.TreeOwner, error) {
	counts := map[int]int{}
	for _, p := range m.plants {
		if !p.IsDead && p.Stage == stage && p.Health >= minHealth {
			counts[m.owners[p.ForestID]]++
		}
	}
	var owners []domain.TreeOwner
	for user, n := range counts {
		owners = append(owners, domain.TreeOwner{UserID: user, Trees: n})
	}
	return owners, nil
}

func (m *memoryPlants) PhaseDone(_ context.Context, job string, day time.Time, phase string) (bool, error) {
	return m.markers[job+day.Format(time.DateOnly)+phase], nil
}

func (m *memoryPlants) CompletePhase(_ context.Context, job string, day time.Time, phase string, _ int64) error {
	m.markers[job+day.Format(time.DateOnly)+phase] = true
	return nil
}

type memoryPoints struct {
	PointService

	mu     sync.Mutex
	earned map[string]int64
}

func (p *memoryPoints) Earn(_ context.Context, userID int, amount int64, reason domain.Reason, ref, _ string) (*domain.LedgerEntry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	key := domain.IdempotencyKey(userID, reason, ref)
	if _, ok := p.earned[key]; ok {
		return nil, domain.ErrDuplicateEntry
	}
	p.earned[key] = amount
	return &domain.LedgerEntry{}, nil
}

type passthroughTX struct{}

func (passthroughTX) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	return fn(ctx)
}

func newBatchService(plants *memoryPlants) (*Service, *memoryPoints) {
	points := &memoryPoints{earned: map[string]int64{}}
	return New(nil, plants, points, passthroughTX{}, time.UTC), points
}

func TestRunDailyBatch_SmallPlantGrowsToMedium(t *testing.T) {
	plants := newMemoryPlants(domain.Plant{ID: 1, ForestID: 1, Stage: domain.StageSmall, Health: 45, MaxHealth: 60})
	service, _ := newBatchService(plants)
	plant := plants.plants[1]

	for day := 0; day < 3; day++ {
		plant.Health = 45
		_, err := service.RunDailyBatch(context.Background(), today.AddDate(0, 0, day))
		require.NoError(t, err)

		if day < 2 {
			assert.Equal(t, domain.StageSmall, plant.Stage)
			assert.Equal(t, day+1, plant.GrowthDays)
		}
	}

	assert.Equal(t, domain.StageMedium, plant.Stage)
	assert.Equal(t, 0, plant.GrowthDays)
	assert.Equal(t, 80, plant.MaxHealth)
}

func TestRunDailyBatch_GrowthIsMonotonicAndDeathFinal(t *testing.T) {
	plants := newMemoryPlants(domain.Plant{ID: 1, ForestID: 1, Stage: domain.StageSmall, Health: 60, MaxHealth: 60})
	service, _ := newBatchService(plants)
	plant := plants.plants[1]

	order := map[domain.GrowthStage]int{}
	for i, s := range domain.Stages() {
		order[s] = i
	}

	stage := plant.Stage
	diedOn := -1
	for day := 0; day < 20; day++ {
		_, err := service.RunDailyBatch(context.Background(), today.AddDate(0, 0, day))
		require.NoError(t, err)

		assert.GreaterOrEqual(t, order[plant.Stage], order[stage], "stage went backwards on day %d", day)
		stage = plant.Stage
		assert.GreaterOrEqual(t, plant.Health, 0)

		if plant.IsDead && diedOn < 0 {
			diedOn = day
			assert.True(t, plant.DeadHighlight)
		}
		if diedOn >= 0 {
			assert.True(t, plant.IsDead)
			assert.Equal(t, 0, plant.Health)
		}
	}
	assert.GreaterOrEqual(t, diedOn, 0)
	assert.Equal(t, domain.StageMedium, plant.Stage)
}

func TestRunDailyBatch_RerunIsIdempotent(t *testing.T) {
	plants := newMemoryPlants(
		domain.Plant{ID: 1, ForestID: 1, Stage: domain.StageLarge, Health: 100, MaxHealth: 100, WaterCountToday: 2},
		domain.Plant{ID: 2, ForestID: 2, Stage: domain.StageSmall, Health: 30, MaxHealth: 60},
	)
	plants.emissions[2] = decimal.NewFromFloat(41.5)
	service, points := newBatchService(plants)

	report, err := service.RunDailyBatch(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, 1, report.RewardedUsers)
	assert.Equal(t, 95, plants.plants[1].Health)
	assert.Equal(t, 0, plants.plants[1].WaterCountToday)
	assert.Equal(t, 15, plants.plants[2].Health)
	assert.Equal(t, map[string]int64{"1:TREE_REWARD:2024-06-01": 50}, points.earned)

	report, err = service.RunDailyBatch(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, 95, plants.plants[1].Health)
	assert.Equal(t, 15, plants.plants[2].Health)
	assert.Len(t, points.earned, 1)
	for _, res := range report.Phases {
		assert.True(t, res.Skipped)
	}
}
