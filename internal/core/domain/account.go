package domain

import (
	"fmt"
	"strconv"
	"time"
)

// TransactionDirection is the sign of a ledger mutation.
type TransactionDirection string

const (
	DirectionDeposit  TransactionDirection = "deposit"
	DirectionWithdraw TransactionDirection = "withdraw"
)

// Account is the ledger aggregate: a balance plus its append-only
// transaction log. Balance is mutated exclusively through deposit and
// withdraw operations and must always equal the sum of signed entry
// amounts (and never go negative).
type Account struct {
	ID           string    `json:"account_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Balance      float64   `json:"balance"`
	// Version increments on every ledger mutation and backs the
	// compare-and-swap write in the store.
	Version   int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Transaction is a single typed entry in an account's ledger.
// Entries are append-only: never reordered, never truncated.
type Transaction struct {
	ID        int64                `json:"id"`
	AccountID string               `json:"account_id"`
	Direction TransactionDirection `json:"direction"`
	Amount    float64              `json:"amount"`
	CreatedAt time.Time            `json:"created_at"`
}

// Signed returns the entry amount with its direction applied.
func (t Transaction) Signed() float64 {
	if t.Direction == DirectionWithdraw {
		return -t.Amount
	}
	return t.Amount
}

// Describe renders the entry in the wire format clients expect,
// e.g. "Deposited $100" or "Withdrew $50.5".
func (t Transaction) Describe() string {
	verb := "Deposited"
	if t.Direction == DirectionWithdraw {
		verb = "Withdrew"
	}
	return fmt.Sprintf("%s $%s", verb, FormatAmount(t.Amount))
}

// FormatAmount renders a monetary amount without trailing zeros.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
