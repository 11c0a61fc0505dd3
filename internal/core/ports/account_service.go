package ports

import (
	"context"

	"github.com/corepay/payments-platform/internal/core/domain"
)

// LedgerOpInput carries the parameters of a deposit or withdraw.
type LedgerOpInput struct {
	AccountID string
	Amount    float64
	// IdempotencyKey, when non-empty, lets an identical replay of the
	// operation return the current state without reapplying the mutation.
	IdempotencyKey string
}

// LedgerResult is returned by the service after a ledger mutation.
type LedgerResult struct {
	Balance float64
	Entry   domain.Transaction
	// AlreadyApplied is true when the IdempotencyKey matched a previously
	// applied mutation and no new entry was written.
	AlreadyApplied bool
}

type AccountService interface {
	CreateAccount(ctx context.Context, username, password string) (*domain.Account, error)
	GetBalance(ctx context.Context, accountID string) (float64, error)
	GetTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error)
	Deposit(ctx context.Context, in LedgerOpInput) (*LedgerResult, error)
	Withdraw(ctx context.Context, in LedgerOpInput) (*LedgerResult, error)
}
