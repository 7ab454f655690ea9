package challengeservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/cocosforest/internal/domain"
)

// Measurement is the outcome of judging one challenge for one user and day.
type Measurement struct {
	Value    decimal.Decimal
	Metrics  map[string]any
	Achieved bool
}

// Evaluator judges challenges of a single metric type.
type Evaluator interface {
	Evaluate(ctx context.Context, c *domain.Challenge, userID int, day time.Time) (Measurement, error)
}

type attendanceEvaluator struct{}

func (attendanceEvaluator) Evaluate(context.Context, *domain.Challenge, int, time.Time) (Measurement, error) {
	return Measurement{
		Value:    decimal.NewFromInt(1),
		Metrics:  map[string]any{"attended": true},
		Achieved: true,
	}, nil
}

type amountEvaluator struct {
	activity ActivityRepo
	filters  *FilterCache
	loc      *time.Location
}

func (e *amountEvaluator) Evaluate(ctx context.Context, c *domain.Challenge, userID int, day time.Time) (Measurement, error) {
	from, to := domain.DayBounds(day, e.loc)
	txs, err := e.activity.ListApprovedTransactions(ctx, userID, from, to)
	if err != nil {
		return Measurement{}, err
	}

	filter := e.filters.Compile(c.FilterConditions)
	spent := decimal.Zero
	matched := 0
	for _, tx := range txs {
		if filter.Match(tx) {
			spent = spent.Add(tx.Amount)
			matched++
		}
	}

	return Measurement{
		Value: spent,
		Metrics: map[string]any{
			"amount":       map[string]any{"krw": spent.IntPart()},
			"transactions": matched,
		},
		Achieved: c.Comparator.Compare(spent, c.Threshold),
	}, nil
}

type stepsEvaluator struct {
	activity ActivityRepo
}

func (e *stepsEvaluator) Evaluate(ctx context.Context, c *domain.Challenge, userID int, day time.Time) (Measurement, error) {
	steps, err := e.activity.GetSteps(ctx, userID, day)
	if err != nil {
		return Measurement{}, err
	}
	value := decimal.NewFromInt(int64(steps))
	return Measurement{
		Value:    value,
		Metrics:  map[string]any{"steps": steps},
		Achieved: c.Comparator.Compare(value, c.Threshold),
	}, nil
}

// emissionEvaluator reports the day's emission but never achieves until a
// verified emission feed exists.
type emissionEvaluator struct {
	activity ActivityRepo
}

func (e *emissionEvaluator) Evaluate(ctx context.Context, _ *domain.Challenge, userID int, day time.Time) (Measurement, error) {
	total, err := e.activity.GetEmission(ctx, userID, day)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{
		Value:   total,
		Metrics: map[string]any{"emission": map[string]any{"kg": total.InexactFloat64()}},
	}, nil
}
