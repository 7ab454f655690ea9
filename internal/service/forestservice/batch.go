package forestservice

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/internal/metrics"
)

const lifecycleJob = "lifecycle"

const (
	PhaseDecay           = "decay"
	PhaseEmissionPenalty = "emission_penalty"
	PhaseDeath           = "death"
	PhaseGrowth          = "growth"
	PhaseWaterReset      = "water_reset"
	PhaseTreeRewards     = "tree_rewards"
)

type phase struct {
	name string
	run  func(ctx context.Context, day time.Time) (int64, error)
}

func (s *Service) phases() []phase {
	return []phase{
		{PhaseDecay, func(ctx context.Context, _ time.Time) (int64, error) {
			return s.plantRepo.DecayAll(ctx, s.rules.Decay)
		}},
		{PhaseEmissionPenalty, func(ctx context.Context, day time.Time) (int64, error) {
			return s.plantRepo.PenalizeEmitters(ctx, day.AddDate(0, 0, -1), s.rules.EmissionLimit, s.rules.EmissionPenalty)
		}},
		{PhaseDeath, func(ctx context.Context, _ time.Time) (int64, error) {
			return s.plantRepo.MarkDead(ctx)
		}},
		{PhaseGrowth, s.growth},
		{PhaseWaterReset, func(ctx context.Context, _ time.Time) (int64, error) {
			return s.plantRepo.ResetWatering(ctx)
		}},
	}
}

// RunDailyBatch runs the nightly plant phases for day in order. Each phase
// commits on its own together with its completion marker, so a rerun for
// the same day skips finished phases. The first failing phase stops the
// batch.
func (s *Service) RunDailyBatch(ctx context.Context, day time.Time) (*domain.BatchReport, error) {
	report := &domain.BatchReport{Date: day}

	for _, p := range s.phases() {
		res, err := s.runPhase(ctx, day, p)
		if err != nil {
			return report, fmt.Errorf("phase %s: %w", p.name, err)
		}
		report.Phases = append(report.Phases, res)
	}

	res, err := s.treeRewards(ctx, day, report)
	if err != nil {
		return report, fmt.Errorf("phase %s: %w", PhaseTreeRewards, err)
	}
	report.Phases = append(report.Phases, res)

	zap.L().Info("plant lifecycle batch finished",
		zap.Time("date", day),
		zap.Int("rewardedUsers", report.RewardedUsers),
		zap.Int("failedUsers", report.FailedUsers))
	return report, nil
}

func (s *Service) runPhase(ctx context.Context, day time.Time, p phase) (domain.PhaseResult, error) {
	res := domain.PhaseResult{Phase: p.name}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		done, err := s.plantRepo.PhaseDone(ctx, lifecycleJob, day, p.name)
		if err != nil {
			return err
		}
		if done {
			res.Skipped = true
			return nil
		}

		res.Affected, err = p.run(ctx, day)
		if err != nil {
			return err
		}
		return s.plantRepo.CompletePhase(ctx, lifecycleJob, day, p.name, res.Affected)
	})
	if err != nil {
		zap.L().Error("plant batch phase failed", zap.String("phase", p.name), zap.Error(err))
		return res, err
	}

	if res.Skipped {
		zap.L().Info("plant batch phase already done", zap.String("phase", p.name))
	} else {
		metrics.RecordPhase(p.name, res.Affected)
		zap.L().Info("plant batch phase done", zap.String("phase", p.name), zap.Int64("affected", res.Affected))
	}
	return res, nil
}

// growth advances eligible plants, promotes the ones with enough growth
// days and resets the progress of the rest.
func (s *Service) growth(ctx context.Context, _ time.Time) (int64, error) {
	advanced, err := s.plantRepo.AdvanceGrowth(ctx)
	if err != nil {
		return 0, err
	}
	promoted, err := s.plantRepo.PromoteGrown(ctx, s.rules.GrowthDays)
	if err != nil {
		return 0, err
	}
	reset, err := s.plantRepo.ResetGrowth(ctx)
	if err != nil {
		return 0, err
	}
	zap.L().Debug("growth phase",
		zap.Int64("advanced", advanced), zap.Int64("promoted", promoted), zap.Int64("reset", reset))
	return advanced + reset, nil
}

// treeRewards pays every owner of mature trees once per day. Each owner is
// paid in its own transaction; a failed owner is logged and skipped.
func (s *Service) treeRewards(ctx context.Context, day time.Time, report *domain.BatchReport) (domain.PhaseResult, error) {
	res := domain.PhaseResult{Phase: PhaseTreeRewards}

	done, err := s.plantRepo.PhaseDone(ctx, lifecycleJob, day, PhaseTreeRewards)
	if err != nil {
		return res, err
	}
	if done {
		res.Skipped = true
		return res, nil
	}

	owners, err := s.plantRepo.ListTreeOwners(ctx, s.rules.RewardStage, s.rules.RewardMinHealth)
	if err != nil {
		return res, err
	}

	var rewarded, failed atomic.Int64
	ref := day.Format(time.DateOnly)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.rules.RewardWorkers, 1))
	for _, owner := range owners {
		owner := owner
		g.Go(func() error {
			amount := int64(owner.Trees) * s.rules.TreeReward
			_, err := s.points.Earn(gctx, owner.UserID, amount, domain.ReasonTreeReward, ref, "daily tree reward")
			switch {
			case err == nil, errors.Is(err, domain.ErrDuplicateEntry):
				rewarded.Add(1)
			default:
				failed.Add(1)
				zap.L().Error("tree reward failed", zap.Int("userID", owner.UserID), zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()

	report.RewardedUsers = int(rewarded.Load())
	report.FailedUsers = int(failed.Load())
	res.Affected = rewarded.Load()

	metrics.RecordPhase(PhaseTreeRewards, res.Affected)

	// Without a marker a rerun retries the failed owners; paid owners hit
	// their idempotency key and count as paid.
	if report.FailedUsers > 0 {
		return res, nil
	}
	return res, s.plantRepo.CompletePhase(ctx, lifecycleJob, day, PhaseTreeRewards, res.Affected)
}
