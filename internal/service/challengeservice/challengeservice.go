package challengeservice

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/internal/metrics"
	"github.com/GlebRadaev/cocosforest/internal/pg"
)

//go:generate mockgen -source=challengeservice.go -destination=mock_challengeservice.go -package=challengeservice

const warningMisconfigured = "challenge_misconfigured"

type ChallengeRepo interface {
	ListActive(ctx context.Context) ([]domain.Challenge, error)
	GetChallenge(ctx context.Context, id int) (*domain.Challenge, error)
	EnsureInstance(ctx context.Context, userID, challengeID int, date time.Time) (*domain.ChallengeInstance, error)
	GetInstance(ctx context.Context, id int64) (*domain.ChallengeInstance, error)
	GetInstanceForUpdate(ctx context.Context, id int64) (*domain.ChallengeInstance, error)
	MarkAchieved(ctx context.Context, id int64, at time.Time) (bool, error)
	MarkRewarded(ctx context.Context, id int64, amount int64) (bool, error)
	FailPending(ctx context.Context, date time.Time) (int64, error)
	ListUnrewarded(ctx context.Context, date time.Time) ([]domain.RewardCandidate, error)
}

type ActivityRepo interface {
	ListApprovedTransactions(ctx context.Context, userID int, from, to time.Time) ([]domain.CardTransaction, error)
	GetSteps(ctx context.Context, userID int, date time.Time) (int, error)
	UpsertSteps(ctx context.Context, userID int, date time.Time, steps int) error
	GetEmission(ctx context.Context, userID int, date time.Time) (decimal.Decimal, error)
}

type PointService interface {
	Earn(ctx context.Context, userID int, amount int64, reason domain.Reason, ref, desc string) (*domain.LedgerEntry, error)
}

// Service owns the status of challenge instances.
type Service struct {
	challengeRepo ChallengeRepo
	activityRepo  ActivityRepo
	points        PointService
	txManager     pg.TXManager
	evaluators    map[domain.MetricType]Evaluator
	loc           *time.Location
	now           func() time.Time
}

func New(challengeRepo ChallengeRepo, activityRepo ActivityRepo, points PointService, txManager pg.TXManager, loc *time.Location) *Service {
	return &Service{
		challengeRepo: challengeRepo,
		activityRepo:  activityRepo,
		points:        points,
		txManager:     txManager,
		evaluators: map[domain.MetricType]Evaluator{
			domain.MetricAttendance: attendanceEvaluator{},
			domain.MetricAmount:     &amountEvaluator{activity: activityRepo, filters: NewFilterCache(filterCacheSize), loc: loc},
			domain.MetricSteps:      &stepsEvaluator{activity: activityRepo},
			domain.MetricEmission:   &emissionEvaluator{activity: activityRepo},
		},
		loc: loc,
		now: time.Now,
	}
}

func (s *Service) today() time.Time {
	return domain.DateOf(s.now(), s.loc)
}

func (s *Service) Today(ctx context.Context, userID int) (*domain.TodayView, error) {
	return s.EnsureAndEvaluate(ctx, userID, s.today())
}

// EnsureAndEvaluate creates missing instances for every active challenge and
// judges each one for the given day.
func (s *Service) EnsureAndEvaluate(ctx context.Context, userID int, day time.Time) (*domain.TodayView, error) {
	challenges, err := s.challengeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	view := &domain.TodayView{Date: day, Items: make([]domain.TodayItem, 0, len(challenges))}
	for i := range challenges {
		item, err := s.evaluateOne(ctx, &challenges[i], userID, day)
		if err != nil {
			return nil, err
		}
		view.Items = append(view.Items, item)
	}
	return view, nil
}

func (s *Service) evaluateOne(ctx context.Context, c *domain.Challenge, userID int, day time.Time) (domain.TodayItem, error) {
	inst, err := s.challengeRepo.EnsureInstance(ctx, userID, c.ID, day)
	if err != nil {
		return domain.TodayItem{}, err
	}

	m, err := s.measure(ctx, c, userID, day)
	if err != nil {
		zap.L().Error("challenge evaluation failed",
			zap.Int("challengeID", c.ID), zap.Int("userID", userID), zap.Error(err))
		return domain.TodayItem{}, err
	}

	if m.Achieved && inst.Status == domain.StatusPending {
		inst, err = s.achieve(ctx, inst)
		if err != nil {
			return domain.TodayItem{}, err
		}
	}
	return toItem(c, inst, m), nil
}

func (s *Service) measure(ctx context.Context, c *domain.Challenge, userID int, day time.Time) (Measurement, error) {
	if c.Verification == domain.VerificationReceipt {
		return Measurement{Metrics: map[string]any{"verification": string(domain.VerificationReceipt)}}, nil
	}

	ev, ok := s.evaluators[c.MetricType]
	if !ok || c.Misconfigured() {
		zap.L().Warn("challenge misconfigured, skipping evaluation",
			zap.Int("challengeID", c.ID),
			zap.String("metricType", string(c.MetricType)),
			zap.String("comparator", string(c.Comparator)))
		metrics.RecordEvaluation(string(c.MetricType), "misconfigured")
		return Measurement{Metrics: map[string]any{"warning": warningMisconfigured}}, nil
	}

	m, err := ev.Evaluate(ctx, c, userID, day)
	if err != nil {
		return Measurement{}, err
	}
	if m.Metrics == nil {
		m.Metrics = map[string]any{}
	}
	m.Metrics["threshold"] = c.Threshold.InexactFloat64()

	verdict := "not_achieved"
	if m.Achieved {
		verdict = "achieved"
	}
	metrics.RecordEvaluation(string(c.MetricType), verdict)
	return m, nil
}

// achieve moves a PENDING instance to DONE. If another writer moved it
// first, the stored state wins.
func (s *Service) achieve(ctx context.Context, inst *domain.ChallengeInstance) (*domain.ChallengeInstance, error) {
	at := s.now()
	ok, err := s.challengeRepo.MarkAchieved(ctx, inst.ID, at)
	if err != nil {
		return nil, err
	}
	if ok {
		inst.Status = domain.StatusDone
		inst.AchievedAt = &at
		return inst, nil
	}

	fresh, err := s.challengeRepo.GetInstance(ctx, inst.ID)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		return inst, nil
	}
	return fresh, nil
}

// Claim pays the reward of an achieved instance once. Claiming an already
// rewarded instance returns the earlier amount without paying again.
func (s *Service) Claim(ctx context.Context, userID int, instanceID int64) (int64, error) {
	var awarded int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		inst, err := s.challengeRepo.GetInstanceForUpdate(ctx, instanceID)
		if err != nil {
			return err
		}
		if inst == nil || inst.UserID != userID {
			return domain.ErrInstanceNotFound
		}
		if inst.Status != domain.StatusDone {
			return domain.ErrNotAchieved
		}
		if inst.Rewarded() {
			awarded = inst.RewardGrantedAmount
			return nil
		}

		c, err := s.challengeRepo.GetChallenge(ctx, inst.ChallengeID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrChallengeNotFound
		}

		awarded, err = s.grant(ctx, inst, c.RewardPoints)
		return err
	})
	if err != nil {
		return 0, err
	}
	return awarded, nil
}

// GrantReward pays a settlement candidate if it is still DONE and unpaid.
func (s *Service) GrantReward(ctx context.Context, candidate domain.RewardCandidate) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		inst, err := s.challengeRepo.GetInstanceForUpdate(ctx, candidate.InstanceID)
		if err != nil {
			return err
		}
		if inst == nil {
			return domain.ErrInstanceNotFound
		}
		if inst.Status != domain.StatusDone || inst.Rewarded() {
			return nil
		}
		_, err = s.grant(ctx, inst, candidate.RewardPoints)
		return err
	})
}

// FailPending closes every instance of the day that never achieved.
func (s *Service) FailPending(ctx context.Context, day time.Time) (int64, error) {
	return s.challengeRepo.FailPending(ctx, day)
}

func (s *Service) PendingRewards(ctx context.Context, day time.Time) ([]domain.RewardCandidate, error) {
	return s.challengeRepo.ListUnrewarded(ctx, day)
}

// grant must run inside a transaction holding the instance row lock.
func (s *Service) grant(ctx context.Context, inst *domain.ChallengeInstance, reward int64) (int64, error) {
	if reward <= 0 {
		return 0, nil
	}

	ref := strconv.FormatInt(inst.ID, 10)
	if _, err := s.points.Earn(ctx, inst.UserID, reward, domain.ReasonChallengeReward, ref, "challenge reward"); err != nil {
		return 0, err
	}

	ok, err := s.challengeRepo.MarkRewarded(ctx, inst.ID, reward)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: instance %d", domain.ErrConcurrencyConflict, inst.ID)
	}

	zap.L().Info("challenge reward granted",
		zap.Int64("instanceID", inst.ID), zap.Int("userID", inst.UserID), zap.Int64("points", reward))
	return reward, nil
}

// UpdateSteps stores today's step count and re-judges step challenges.
func (s *Service) UpdateSteps(ctx context.Context, userID int, steps int) ([]domain.TodayItem, error) {
	if steps < 0 {
		steps = 0
	}
	day := s.today()
	if err := s.activityRepo.UpsertSteps(ctx, userID, day, steps); err != nil {
		return nil, err
	}

	challenges, err := s.challengeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]domain.TodayItem, 0, 1)
	for i := range challenges {
		c := &challenges[i]
		if c.MetricType != domain.MetricSteps || c.Verification == domain.VerificationReceipt {
			continue
		}
		item, err := s.evaluateOne(ctx, c, userID, day)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// VerifyReceipt completes a receipt-verified challenge from OCR text. A
// rejected receipt changes nothing.
func (s *Service) VerifyReceipt(ctx context.Context, userID, challengeID int, ocrText string) (*domain.ReceiptVerdict, error) {
	c, err := s.challengeRepo.GetChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if c == nil || !c.Active {
		return nil, domain.ErrChallengeNotFound
	}
	if c.Verification != domain.VerificationReceipt {
		return nil, domain.ErrNotReceiptBased
	}

	if !LooksLikeReceipt(ocrText) {
		return &domain.ReceiptVerdict{Reason: "not_a_receipt"}, nil
	}
	if !ContainsReusableCup(ocrText) {
		return &domain.ReceiptVerdict{Reason: "no_reusable_cup"}, nil
	}

	day := s.today()
	verdict := &domain.ReceiptVerdict{Verified: true}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		inst, err := s.challengeRepo.EnsureInstance(ctx, userID, c.ID, day)
		if err != nil {
			return err
		}
		inst, err = s.challengeRepo.GetInstanceForUpdate(ctx, inst.ID)
		if err != nil {
			return err
		}
		if inst == nil {
			return domain.ErrInstanceNotFound
		}
		verdict.InstanceID = inst.ID

		switch inst.Status {
		case domain.StatusFail:
			verdict.Verified = false
			verdict.Reason = "closed"
			return nil
		case domain.StatusPending:
			if inst, err = s.achieve(ctx, inst); err != nil {
				return err
			}
		}

		if inst.Rewarded() {
			verdict.Awarded = inst.RewardGrantedAmount
			verdict.Reason = "already_rewarded"
			return nil
		}
		verdict.Awarded, err = s.grant(ctx, inst, c.RewardPoints)
		return err
	})
	if err != nil {
		return nil, err
	}
	return verdict, nil
}

func toItem(c *domain.Challenge, inst *domain.ChallengeInstance, m Measurement) domain.TodayItem {
	rewarded := inst.Rewarded()
	var awardedAt *time.Time
	if rewarded {
		awardedAt = inst.AchievedAt
	}
	return domain.TodayItem{
		ID:           inst.ID,
		ChallengeID:  c.ID,
		Title:        c.Title,
		Rule:         Rule(c),
		RewardPoints: c.RewardPoints,
		Status:       inst.Status,
		Claimable:    inst.Status == domain.StatusDone && !rewarded && c.RewardPoints > 0,
		Metrics:      m.Metrics,
		Awarded:      inst.RewardGrantedAmount,
		AwardedAt:    awardedAt,
		Message:      Message(c, inst.Status, m.Value),
	}
}
