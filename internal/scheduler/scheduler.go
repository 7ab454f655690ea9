package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/GlebRadaev/cocosforest/internal/config"
	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/internal/metrics"
)

//go:generate mockgen -source=scheduler.go -destination=mock_scheduler.go -package=scheduler

const (
	jobSettlement = "settlement"
	jobLifecycle  = "lifecycle"
)

type ChallengeSettler interface {
	FailPending(ctx context.Context, day time.Time) (int64, error)
	PendingRewards(ctx context.Context, day time.Time) ([]domain.RewardCandidate, error)
	GrantReward(ctx context.Context, candidate domain.RewardCandidate) error
}

type PlantBatcher interface {
	RunDailyBatch(ctx context.Context, day time.Time) (*domain.BatchReport, error)
}

// Service triggers the daily jobs. The two jobs never run at the same time.
type Service struct {
	challenges ChallengeSettler
	plants     PlantBatcher
	workerPool WorkerPoolI

	loc            *time.Location
	settlementSpec string
	lifecycleSpec  string
	now            func() time.Time

	mu   sync.Mutex
	cron *cron.Cron
}

func New(cfg *config.Config, loc *time.Location, challenges ChallengeSettler, plants PlantBatcher) *Service {
	return &Service{
		challenges:     challenges,
		plants:         plants,
		workerPool:     NewWorkerPool(cfg.SettlementWorkers),
		loc:            loc,
		settlementSpec: cfg.SettlementSchedule,
		lifecycleSpec:  cfg.LifecycleSchedule,
		now:            time.Now,
	}
}

// Start registers both jobs on a cron scheduler in the configured zone and
// stops it when ctx is done.
func (s *Service) Start(ctx context.Context) error {
	logger := cron.PrintfLogger(zap.NewStdLog(zap.L().Named("cron")))
	s.cron = cron.New(
		cron.WithLocation(s.loc),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	if _, err := s.cron.AddFunc(s.settlementSpec, func() {
		if _, err := s.RunDailySettlement(ctx); err != nil {
			zap.L().Error("daily settlement failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("can't schedule settlement %q: %w", s.settlementSpec, err)
	}
	if _, err := s.cron.AddFunc(s.lifecycleSpec, func() {
		if _, err := s.RunPlantLifecycleBatch(ctx); err != nil {
			zap.L().Error("plant lifecycle batch failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("can't schedule lifecycle batch %q: %w", s.lifecycleSpec, err)
	}

	s.cron.Start()
	zap.L().Info("scheduler started",
		zap.String("settlement", s.settlementSpec),
		zap.String("lifecycle", s.lifecycleSpec),
		zap.String("timeZone", s.loc.String()))

	go func() {
		<-ctx.Done()
		<-s.cron.Stop().Done()
		s.workerPool.Close()
		zap.L().Info("scheduler stopped")
	}()
	return nil
}

func (s *Service) today() time.Time {
	return domain.DateOf(s.now(), s.loc)
}

// RunDailySettlement settles yesterday's challenges.
func (s *Service) RunDailySettlement(ctx context.Context) (*domain.SettlementReport, error) {
	return s.RunSettlementFor(ctx, s.today().AddDate(0, 0, -1))
}

// RunSettlementFor fails the day's PENDING instances and pays every DONE
// instance that was never claimed. A failed grant is logged and counted.
func (s *Service) RunSettlementFor(ctx context.Context, day time.Time) (report *domain.SettlementReport, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()
	defer func() { metrics.ObserveJob(jobSettlement, started, err) }()

	report = &domain.SettlementReport{Date: day}
	report.Failed, err = s.challenges.FailPending(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("fail pending instances: %w", err)
	}
	metrics.RecordSettlement("failed", int(report.Failed))

	candidates, err := s.challenges.PendingRewards(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("list unrewarded instances: %w", err)
	}

	var (
		wg              sync.WaitGroup
		granted, failed atomic.Int64
	)
	for _, candidate := range candidates {
		candidate := candidate
		wg.Add(1)
		err := s.workerPool.AddTask(ctx, func() error {
			defer wg.Done()
			if err := s.challenges.GrantReward(ctx, candidate); err != nil {
				failed.Add(1)
				return fmt.Errorf("grant reward for instance %d: %w", candidate.InstanceID, err)
			}
			granted.Add(1)
			return nil
		})
		if err != nil {
			wg.Done()
			failed.Add(1)
			zap.L().Error("can't queue reward grant", zap.Int64("instanceID", candidate.InstanceID), zap.Error(err))
		}
	}
	wg.Wait()

	report.Granted = int(granted.Load())
	report.GrantFailures = int(failed.Load())
	metrics.RecordSettlement("granted", report.Granted)
	metrics.RecordSettlement("grant_failed", report.GrantFailures)

	zap.L().Info("daily settlement finished",
		zap.Time("date", day),
		zap.Int64("failed", report.Failed),
		zap.Int("granted", report.Granted),
		zap.Int("grantFailures", report.GrantFailures))
	return report, nil
}

// RunPlantLifecycleBatch runs today's plant batch.
func (s *Service) RunPlantLifecycleBatch(ctx context.Context) (*domain.BatchReport, error) {
	return s.RunLifecycleFor(ctx, s.today())
}

func (s *Service) RunLifecycleFor(ctx context.Context, day time.Time) (report *domain.BatchReport, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()
	defer func() { metrics.ObserveJob(jobLifecycle, started, err) }()

	return s.plants.RunDailyBatch(ctx, day)
}

// Close releases the worker pool of a scheduler that was never started.
func (s *Service) Close() {
	s.workerPool.Close()
}
