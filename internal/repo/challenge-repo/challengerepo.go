package challengerepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/internal/pg"
)

const challengeColumns = `id, code, title, description, COALESCE(metric_type, ''), COALESCE(comparator, ''),
        COALESCE(threshold, 0), reward_points, COALESCE(filter_conditions::text, ''), verification, active`

const instanceColumns = `id, user_id, challenge_id, challenge_date, status, reward_granted_amount, achieved_at, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListActive(ctx context.Context) ([]domain.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE active = TRUE ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list challenges", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var challenges []domain.Challenge
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			zap.L().Error("can't scan challenge row", zap.Error(err))
			return nil, err
		}
		challenges = append(challenges, *c)
	}
	return challenges, rows.Err()
}

func (r *Repository) GetChallenge(ctx context.Context, id int) (*domain.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE id = $1`
	c, err := scanChallenge(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get challenge", zap.Error(err))
		return nil, err
	}
	return c, nil
}

// EnsureInstance returns the user's instance for the date, creating it as
// PENDING on first access. Concurrent first access is settled by the unique
// key: the losing insert does nothing and both callers read the same row.
func (r *Repository) EnsureInstance(ctx context.Context, userID, challengeID int, date time.Time) (*domain.ChallengeInstance, error) {
	insert := `
        INSERT INTO challenge_instances (user_id, challenge_id, challenge_date, status)
        VALUES ($1, $2, $3, 'PENDING')
        ON CONFLICT (user_id, challenge_id, challenge_date) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, insert, userID, challengeID, date); err != nil {
		zap.L().Error("can't create challenge instance", zap.Error(err))
		return nil, err
	}

	query := `SELECT ` + instanceColumns + ` FROM challenge_instances WHERE user_id = $1 AND challenge_id = $2 AND challenge_date = $3`
	inst, err := scanInstance(r.db.QueryRow(ctx, query, userID, challengeID, date))
	if err != nil {
		zap.L().Error("can't read challenge instance", zap.Error(err))
		return nil, err
	}
	return inst, nil
}

func (r *Repository) GetInstance(ctx context.Context, id int64) (*domain.ChallengeInstance, error) {
	return r.getInstance(ctx, `SELECT `+instanceColumns+` FROM challenge_instances WHERE id = $1`, id)
}

// GetInstanceForUpdate locks the row until the surrounding transaction ends.
func (r *Repository) GetInstanceForUpdate(ctx context.Context, id int64) (*domain.ChallengeInstance, error) {
	return r.getInstance(ctx, `SELECT `+instanceColumns+` FROM challenge_instances WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) getInstance(ctx context.Context, query string, id int64) (*domain.ChallengeInstance, error) {
	inst, err := scanInstance(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get challenge instance", zap.Error(err))
		return nil, err
	}
	return inst, nil
}

// MarkAchieved moves a PENDING instance to DONE. It reports false when the
// instance had already left PENDING.
func (r *Repository) MarkAchieved(ctx context.Context, id int64, at time.Time) (bool, error) {
	query := `
        UPDATE challenge_instances
        SET status = 'DONE', achieved_at = $2, updated_at = now()
        WHERE id = $1 AND status = 'PENDING'
    `
	tag, err := r.db.Exec(ctx, query, id, at)
	if err != nil {
		zap.L().Error("can't mark challenge achieved", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkRewarded records the granted amount once.
func (r *Repository) MarkRewarded(ctx context.Context, id int64, amount int64) (bool, error) {
	query := `
        UPDATE challenge_instances
        SET reward_granted_amount = $2, updated_at = now()
        WHERE id = $1 AND status = 'DONE' AND reward_granted_amount = 0
    `
	tag, err := r.db.Exec(ctx, query, id, amount)
	if err != nil {
		zap.L().Error("can't mark challenge rewarded", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FailPending(ctx context.Context, date time.Time) (int64, error) {
	query := `
        UPDATE challenge_instances
        SET status = 'FAIL', updated_at = now()
        WHERE challenge_date = $1 AND status = 'PENDING'
    `
	tag, err := r.db.Exec(ctx, query, date)
	if err != nil {
		zap.L().Error("can't fail pending challenges", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) ListUnrewarded(ctx context.Context, date time.Time) ([]domain.RewardCandidate, error) {
	query := `
        SELECT ci.id, ci.user_id, c.reward_points
        FROM challenge_instances ci
        JOIN challenges c ON c.id = ci.challenge_id
        WHERE ci.challenge_date = $1 AND ci.status = 'DONE' AND ci.reward_granted_amount = 0 AND c.reward_points > 0
        ORDER BY ci.id
    `
	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		zap.L().Error("can't list unrewarded challenges", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.RewardCandidate
	for rows.Next() {
		var c domain.RewardCandidate
		if err := rows.Scan(&c.InstanceID, &c.UserID, &c.RewardPoints); err != nil {
			zap.L().Error("can't scan reward candidate", zap.Error(err))
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func scanChallenge(row pgx.Row) (*domain.Challenge, error) {
	var c domain.Challenge
	err := row.Scan(&c.ID, &c.Code, &c.Title, &c.Description, &c.MetricType, &c.Comparator,
		&c.Threshold, &c.RewardPoints, &c.FilterConditions, &c.Verification, &c.Active)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanInstance(row pgx.Row) (*domain.ChallengeInstance, error) {
	var i domain.ChallengeInstance
	err := row.Scan(&i.ID, &i.UserID, &i.ChallengeID, &i.ChallengeDate, &i.Status,
		&i.RewardGrantedAmount, &i.AchievedAt, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
