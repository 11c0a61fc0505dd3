package ports

import (
	"context"

	"github.com/corepay/payments-platform/internal/core/domain"
)

// AccountRepository defines the persistence contract for accounts and
// their ledgers.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	FindByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// ApplyTransaction persists a ledger mutation atomically: the balance
	// update and the entry append commit together or not at all. The write
	// is guarded by a compare-and-swap on the account version; a stale
	// expectedVersion returns domain.ErrVersionConflict and leaves the
	// account untouched.
	ApplyTransaction(ctx context.Context, entry *domain.Transaction, newBalance float64, expectedVersion int64) error
}
