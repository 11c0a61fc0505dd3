package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/corepay/payments-platform/internal/api/metrics"
	"github.com/corepay/payments-platform/internal/core/domain"
	"github.com/corepay/payments-platform/internal/core/ports"
)

// casRetries bounds re-reads after a lost version race with another replica.
const casRetries = 3

// AccountLocker serializes ledger mutations per account within the process.
type AccountLocker interface {
	Lock(key string) (unlock func())
}

// ReplayChecker abstracts the idempotency store (Redis).
type ReplayChecker interface {
	IsDuplicate(ctx context.Context, accountID, key string) (bool, error)
	Mark(ctx context.Context, accountID, key string) error
}

// AccountService implements account creation, reads, and the ledger's
// deposit/withdraw operations.
type AccountService struct {
	repo   ports.AccountRepository
	locks  AccountLocker
	replay ReplayChecker
	logger zerolog.Logger
}

// NewAccountService returns an AccountService. replay may be nil, in which
// case idempotency-key replays are not detected.
func NewAccountService(repo ports.AccountRepository, locks AccountLocker, replay ReplayChecker, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, locks: locks, replay: replay, logger: logger}
}

// CreateAccount creates an account with a zero balance and an empty ledger.
// Username uniqueness is enforced by the store's unique constraint, which is
// the sole authority: there is no check-then-insert race window.
func (s *AccountService) CreateAccount(ctx context.Context, username, password string) (*domain.Account, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Balance:      0,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	metrics.AccountsCreatedTotal.Inc()
	s.logger.Info().Str("account_id", account.ID).Str("username", username).Msg("account created")
	return account, nil
}

func (s *AccountService) GetBalance(ctx context.Context, accountID string) (float64, error) {
	account, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

func (s *AccountService) GetTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	if _, err := s.repo.FindByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.repo.ListTransactions(ctx, accountID)
}

// Deposit adds amount to the account balance and appends a ledger entry.
func (s *AccountService) Deposit(ctx context.Context, in ports.LedgerOpInput) (*ports.LedgerResult, error) {
	return s.mutate(ctx, in, domain.DirectionDeposit)
}

// Withdraw subtracts amount from the account balance and appends a ledger
// entry. The balance never goes negative: an over-withdraw is rejected with
// domain.ErrInsufficientFunds and leaves balance and log unchanged.
func (s *AccountService) Withdraw(ctx context.Context, in ports.LedgerOpInput) (*ports.LedgerResult, error) {
	return s.mutate(ctx, in, domain.DirectionWithdraw)
}

// mutate runs the read-modify-write cycle for a single ledger mutation.
// The keyed lock admits at most one in-flight mutation per account in this
// process; the version CAS in ApplyTransaction covers sibling replicas
// sharing the database file.
func (s *AccountService) mutate(ctx context.Context, in ports.LedgerOpInput, direction domain.TransactionDirection) (*ports.LedgerResult, error) {
	if in.Amount <= 0 {
		metrics.LedgerErrorsTotal.WithLabelValues("invalid_amount").Inc()
		return nil, domain.ErrInvalidAmount
	}

	start := time.Now()

	unlock := s.locks.Lock(in.AccountID)
	defer unlock()

	if replayed, result := s.checkReplay(ctx, in); replayed {
		return result, nil
	}

	var lastErr error
	for attempt := 0; attempt < casRetries; attempt++ {
		account, err := s.repo.FindByID(ctx, in.AccountID)
		if err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				metrics.LedgerErrorsTotal.WithLabelValues("account_not_found").Inc()
			}
			return nil, err
		}

		newBalance := account.Balance + in.Amount
		if direction == domain.DirectionWithdraw {
			if account.Balance < in.Amount {
				metrics.LedgerErrorsTotal.WithLabelValues("insufficient_funds").Inc()
				return nil, domain.ErrInsufficientFunds
			}
			newBalance = account.Balance - in.Amount
		}

		entry := &domain.Transaction{
			AccountID: in.AccountID,
			Direction: direction,
			Amount:    in.Amount,
			CreatedAt: time.Now().UTC(),
		}

		err = s.repo.ApplyTransaction(ctx, entry, newBalance, account.Version)
		if errors.Is(err, domain.ErrVersionConflict) {
			lastErr = err
			s.logger.Debug().Str("account_id", in.AccountID).Int("attempt", attempt+1).Msg("version conflict, retrying")
			continue
		}
		if err != nil {
			metrics.LedgerErrorsTotal.WithLabelValues("write_failed").Inc()
			return nil, err
		}

		s.markReplay(ctx, in)

		metrics.LedgerOperationsTotal.WithLabelValues(string(direction)).Inc()
		metrics.LedgerOperationDuration.WithLabelValues(string(direction)).Observe(time.Since(start).Seconds())
		s.logger.Info().
			Str("account_id", in.AccountID).
			Str("direction", string(direction)).
			Float64("amount", in.Amount).
			Float64("balance", newBalance).
			Msg("ledger entry applied")

		return &ports.LedgerResult{Balance: newBalance, Entry: *entry}, nil
	}

	metrics.LedgerErrorsTotal.WithLabelValues("version_conflict").Inc()
	return nil, fmt.Errorf("apply ledger mutation: retries exhausted: %w", lastErr)
}

// checkReplay reports whether this mutation was already applied under the
// same idempotency key. A failed check is logged and treated as a miss.
func (s *AccountService) checkReplay(ctx context.Context, in ports.LedgerOpInput) (bool, *ports.LedgerResult) {
	if s.replay == nil || in.IdempotencyKey == "" {
		return false, nil
	}

	isDup, err := s.replay.IsDuplicate(ctx, in.AccountID, in.IdempotencyKey)
	if err != nil {
		s.logger.Warn().Err(err).Str("account_id", in.AccountID).Msg("replay check failed, processing anyway")
		return false, nil
	}
	if !isDup {
		metrics.LedgerReplaysTotal.WithLabelValues("miss").Inc()
		return false, nil
	}

	metrics.LedgerReplaysTotal.WithLabelValues("hit").Inc()
	account, err := s.repo.FindByID(ctx, in.AccountID)
	if err != nil {
		return false, nil
	}
	s.logger.Info().Str("account_id", in.AccountID).Str("idempotency_key", in.IdempotencyKey).Msg("idempotent replay")
	return true, &ports.LedgerResult{Balance: account.Balance, AlreadyApplied: true}
}

func (s *AccountService) markReplay(ctx context.Context, in ports.LedgerOpInput) {
	if s.replay == nil || in.IdempotencyKey == "" {
		return
	}
	if err := s.replay.Mark(ctx, in.AccountID, in.IdempotencyKey); err != nil {
		s.logger.Warn().Err(err).Str("account_id", in.AccountID).Msg("failed to set replay key")
	}
}
