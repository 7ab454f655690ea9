package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GlebRadaev/cocosforest/internal/config"
	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/internal/pg"
	"github.com/GlebRadaev/cocosforest/internal/repo"
	"github.com/GlebRadaev/cocosforest/internal/scheduler"
	"github.com/GlebRadaev/cocosforest/internal/service"
	"github.com/GlebRadaev/cocosforest/pkg/auth"
	"github.com/GlebRadaev/cocosforest/pkg/logger"
)

//go:generate mockgen -source=cli.go -destination=mock_cli.go -package=cli

type Jobs interface {
	RunDailySettlement(ctx context.Context) (*domain.SettlementReport, error)
	RunSettlementFor(ctx context.Context, day time.Time) (*domain.SettlementReport, error)
	RunPlantLifecycleBatch(ctx context.Context) (*domain.BatchReport, error)
	RunLifecycleFor(ctx context.Context, day time.Time) (*domain.BatchReport, error)
}

type Ledger interface {
	Reconcile(ctx context.Context, userID int) (int64, int64, error)
}

// Backend is what the operator commands act on.
type Backend struct {
	Jobs    Jobs
	Ledger  Ledger
	Migrate func() error
	Close   func()
}

// Opener connects a Backend for cfg.
type Opener func(ctx context.Context, cfg *config.Config, loc *time.Location) (*Backend, error)

// OpenDatabase wires the real repositories and services on a pgx pool.
func OpenDatabase(ctx context.Context, cfg *config.Config, loc *time.Location) (*Backend, error) {
	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	srv := service.New(repo.New(pg.New(pool)), txManager, loc)
	sched := scheduler.New(cfg, loc, srv.ChallengeService, srv.ForestService)

	return &Backend{
		Jobs:    sched,
		Ledger:  srv.PointService,
		Migrate: func() error { return pg.RunMigrations(pool) },
		Close: func() {
			sched.Close()
			pool.Close()
		},
	}, nil
}

type runtime struct {
	cfg     *config.Config
	loc     *time.Location
	backend *Backend
}

// NewRootCmd builds forestctl. open is called lazily by the commands that
// need the database.
func NewRootCmd(open Opener) *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:           "forestctl",
		Short:         "Operator tool for the Cocos Forest game economy",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			rt.cfg = config.Load()
			if err := logger.InitLogger(rt.cfg); err != nil {
				return fmt.Errorf("can't init logger: %w", err)
			}
			loc, err := rt.cfg.Location()
			if err != nil {
				return err
			}
			rt.loc = loc
			return nil
		},
	}

	connect := func(cmd *cobra.Command) (*Backend, error) {
		if rt.backend == nil {
			b, err := open(cmd.Context(), rt.cfg, rt.loc)
			if err != nil {
				return nil, err
			}
			rt.backend = b
		}
		return rt.backend, nil
	}

	root.AddCommand(
		newMigrateCmd(connect),
		newSettleCmd(rt, connect),
		newLifecycleCmd(rt, connect),
		newReconcileCmd(connect),
		newTokenCmd(rt),
	)

	// post-run hooks do not run when RunE fails
	for _, c := range root.Commands() {
		if c.RunE == nil {
			continue
		}
		runE := c.RunE
		c.RunE = func(cmd *cobra.Command, args []string) error {
			defer rt.close()
			return runE(cmd, args)
		}
	}
	return root
}

func (rt *runtime) close() {
	if rt.backend != nil && rt.backend.Close != nil {
		rt.backend.Close()
		rt.backend = nil
	}
}

type connectFn func(cmd *cobra.Command) (*Backend, error)

func newMigrateCmd(connect connectFn) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := connect(cmd)
			if err != nil {
				return err
			}
			if err := b.Migrate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func newSettleCmd(rt *runtime, connect connectFn) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Settle the challenges of a day",
		Long: `Fail every PENDING challenge instance of the day and pay the rewards of
achieved instances that were never claimed. Without --date yesterday is settled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := dateFlag(cmd, rt.loc)
			if err != nil {
				return err
			}
			b, err := connect(cmd)
			if err != nil {
				return err
			}

			var report *domain.SettlementReport
			if day.IsZero() {
				report, err = b.Jobs.RunDailySettlement(cmd.Context())
			} else {
				report, err = b.Jobs.RunSettlementFor(cmd.Context(), day)
			}
			if err != nil {
				return err
			}
			printSettlement(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().String("date", "", "day to settle, YYYY-MM-DD")
	return cmd
}

func newLifecycleCmd(rt *runtime, connect connectFn) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lifecycle",
		Short: "Run the plant lifecycle batch",
		Long: `Run decay, emission penalty, death, growth, watering reset and tree rewards.
Phases already completed for the date are skipped. Without --date today is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := dateFlag(cmd, rt.loc)
			if err != nil {
				return err
			}
			b, err := connect(cmd)
			if err != nil {
				return err
			}

			var report *domain.BatchReport
			if day.IsZero() {
				report, err = b.Jobs.RunPlantLifecycleBatch(cmd.Context())
			} else {
				report, err = b.Jobs.RunLifecycleFor(cmd.Context(), day)
			}
			if err != nil {
				return err
			}
			printBatch(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().String("date", "", "batch date, YYYY-MM-DD")
	return cmd
}

func newReconcileCmd(connect connectFn) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Compare a user's balance with the replayed ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetInt("user")
			if userID <= 0 {
				return fmt.Errorf("--user is required")
			}
			b, err := connect(cmd)
			if err != nil {
				return err
			}

			stored, replayed, err := b.Ledger.Reconcile(cmd.Context(), userID)
			if err != nil && !errors.Is(err, domain.ErrLedgerMismatch) {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %d: balance %d, ledger %d\n", userID, stored, replayed)
			return err
		},
	}
	cmd.Flags().Int("user", 0, "user id")
	return cmd
}

func newTokenCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for local testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetInt("user")
			if userID <= 0 {
				return fmt.Errorf("--user is required")
			}
			ttl, _ := cmd.Flags().GetDuration("ttl")

			token, err := auth.NewJWTService(rt.cfg.JWTSecret).GenerateJWT(userID, time.Now().Add(ttl))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().Int("user", 0, "user id")
	cmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime")
	return cmd
}

// dateFlag returns the zero time when --date is not set.
func dateFlag(cmd *cobra.Command, loc *time.Location) (time.Time, error) {
	raw, _ := cmd.Flags().GetString("date")
	if raw == "" {
		return time.Time{}, nil
	}
	day, err := time.ParseInLocation(time.DateOnly, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: %w", raw, err)
	}
	return day, nil
}

func printSettlement(w io.Writer, r *domain.SettlementReport) {
	fmt.Fprintf(w, "settlement %s: failed %d, granted %d, grant failures %d\n",
		r.Date.Format(time.DateOnly), r.Failed, r.Granted, r.GrantFailures)
}

func printBatch(w io.Writer, r *domain.BatchReport) {
	fmt.Fprintf(w, "lifecycle %s\n", r.Date.Format(time.DateOnly))
	for _, p := range r.Phases {
		if p.Skipped {
			fmt.Fprintf(w, "  %-16s skipped\n", p.Phase)
			continue
		}
		fmt.Fprintf(w, "  %-16s %d\n", p.Phase, p.Affected)
	}
	fmt.Fprintf(w, "  rewarded users %d, failed users %d\n", r.RewardedUsers, r.FailedUsers)
	zap.L().Info("lifecycle batch finished from cli",
		zap.Time("date", r.Date), zap.Int("rewarded", r.RewardedUsers), zap.Int("failed", r.FailedUsers))
}
