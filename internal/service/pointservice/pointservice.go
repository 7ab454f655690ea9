package pointservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/internal/metrics"
	"github.com/GlebRadaev/cocosforest/internal/pg"
)

//go:generate mockgen -source=pointservice.go -destination=mock_pointservice.go -package=pointservice

const defaultHistoryLimit = 50

type BalanceRepo interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	CreateBalance(ctx context.Context, userID int) error
	Debit(ctx context.Context, userID int, amount, expected int64) (int64, bool, error)
	Credit(ctx context.Context, userID int, amount int64) (int64, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) error
	ListByUser(ctx context.Context, userID int, limit int) ([]domain.LedgerEntry, error)
	Replay(ctx context.Context, userID int) (int64, error)
}

// Service is the only writer of balances and ledger entries.
type Service struct {
	balanceRepo BalanceRepo
	ledgerRepo  LedgerRepo
	txManager   pg.TXManager
}

func New(balanceRepo BalanceRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		balanceRepo: balanceRepo,
		ledgerRepo:  ledgerRepo,
		txManager:   txManager,
	}
}

func (s *Service) CreateAccount(ctx context.Context, userID int) error {
	if err := s.balanceRepo.CreateBalance(ctx, userID); err != nil {
		zap.L().Error("failed to create points account", zap.Int("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

// Spend debits amount if the balance covers it. The debit is conditional on
// the balance read in the same transaction; a concurrent change surfaces as
// domain.ErrConcurrencyConflict and is not retried here.
func (s *Service) Spend(ctx context.Context, userID int, amount int64, reason domain.Reason, ref, desc string) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var entry *domain.LedgerEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.balanceRepo.GetBalance(ctx, userID)
		if err != nil {
			return err
		}
		if balance == nil {
			return domain.ErrAccountNotFound
		}
		if balance.CurrentBalance < amount {
			return domain.ErrInsufficientFunds
		}

		after, ok, err := s.balanceRepo.Debit(ctx, userID, amount, balance.CurrentBalance)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrConcurrencyConflict
		}

		entry = newEntry(userID, domain.DirectionSpend, amount, after, reason, ref, desc)
		return s.append(ctx, entry)
	})
	s.record(domain.DirectionSpend, reason, amount, err)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Earn credits amount unconditionally.
func (s *Service) Earn(ctx context.Context, userID int, amount int64, reason domain.Reason, ref, desc string) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var entry *domain.LedgerEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		after, err := s.balanceRepo.Credit(ctx, userID, amount)
		if err != nil {
			return err
		}
		entry = newEntry(userID, domain.DirectionEarn, amount, after, reason, ref, desc)
		return s.append(ctx, entry)
	})
	s.record(domain.DirectionEarn, reason, amount, err)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) Balance(ctx context.Context, userID int) (int64, error) {
	balance, err := s.balanceRepo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	if balance == nil {
		return 0, domain.ErrAccountNotFound
	}
	return balance.CurrentBalance, nil
}

func (s *Service) History(ctx context.Context, userID int, limit int) ([]domain.LedgerEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = defaultHistoryLimit
	}
	entries, err := s.ledgerRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch ledger history", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// Reconcile replays the user's ledger and compares it with the stored balance.
func (s *Service) Reconcile(ctx context.Context, userID int) (int64, int64, error) {
	var stored, replayed int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.balanceRepo.GetBalance(ctx, userID)
		if err != nil {
			return err
		}
		if balance == nil {
			return domain.ErrAccountNotFound
		}
		stored = balance.CurrentBalance

		replayed, err = s.ledgerRepo.Replay(ctx, userID)
		return err
	})
	if err != nil {
		return 0, 0, err
	}
	if stored != replayed {
		zap.L().Error("ledger drift detected",
			zap.Int("userID", userID), zap.Int64("balance", stored), zap.Int64("ledger", replayed))
		return stored, replayed, domain.ErrLedgerMismatch
	}
	return stored, replayed, nil
}

func (s *Service) append(ctx context.Context, entry *domain.LedgerEntry) error {
	err := s.ledgerRepo.Append(ctx, entry)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrDuplicateEntry):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrLedgerWrite, err)
	}
}

func (s *Service) record(direction domain.Direction, reason domain.Reason, amount int64, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInsufficientFunds):
		outcome = "insufficient_funds"
	case errors.Is(err, domain.ErrConcurrencyConflict):
		outcome = "conflict"
	case errors.Is(err, domain.ErrDuplicateEntry):
		outcome = "duplicate"
	default:
		outcome = "error"
	}
	metrics.RecordLedger(string(direction), string(reason), outcome, amount)
}

func newEntry(userID int, direction domain.Direction, amount, after int64, reason domain.Reason, ref, desc string) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		EntryID:        uuid.New(),
		UserID:         userID,
		Direction:      direction,
		Amount:         amount,
		BalanceAfter:   after,
		Reason:         reason,
		Reference:      ref,
		Description:    desc,
		IdempotencyKey: domain.IdempotencyKey(userID, reason, ref),
	}
}
