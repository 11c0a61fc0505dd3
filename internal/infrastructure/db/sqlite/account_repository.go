package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/corepay/payments-platform/internal/core/domain"
	"github.com/corepay/payments-platform/internal/core/ports"
)

// Compile-time interface satisfaction check.
var _ ports.AccountRepository = (*AccountRepository)(nil)

// AccountRepository is the SQLite implementation of the AccountRepository
// port.
type AccountRepository struct {
	db *DB
}

func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts a new account. The UNIQUE constraint on username is the
// sole authority on uniqueness; a violation maps to ErrDuplicateUsername.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `INSERT INTO accounts (account_id, username, password_hash, balance, version, created_at)
VALUES (?, ?, ?, ?, ?, ?)`

	createdAt := account.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.db.Writer.ExecContext(ctx, query,
		account.ID, account.Username, account.PasswordHash, account.Balance, account.Version, createdAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("create account %s: %w", account.Username, domain.ErrDuplicateUsername)
		}
		return fmt.Errorf("create account %s: %w", account.Username, err)
	}

	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, accountID string) (*domain.Account, error) {
	const query = `SELECT account_id, username, password_hash, balance, version, created_at
FROM accounts WHERE account_id = ?`

	account, err := scanAccount(r.db.Reader.QueryRowContext(ctx, query, accountID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find account %s: %w", accountID, err)
	}

	return account, nil
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	const query = `SELECT account_id, username, password_hash, balance, version, created_at
FROM accounts WHERE username = ?`

	account, err := scanAccount(r.db.Reader.QueryRowContext(ctx, query, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find account by username %s: %w", username, err)
	}

	return account, nil
}

// ListTransactions returns the account's ledger entries in append order.
func (r *AccountRepository) ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	const query = `SELECT id, account_id, direction, amount, created_at
FROM transactions WHERE account_id = ? ORDER BY id`

	rows, err := r.db.Reader.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list transactions for %s: %w", accountID, err)
	}
	defer rows.Close()

	var entries []domain.Transaction
	for rows.Next() {
		var entry domain.Transaction
		var direction string
		if err := rows.Scan(&entry.ID, &entry.AccountID, &direction, &entry.Amount, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		entry.Direction = domain.TransactionDirection(direction)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return entries, nil
}

// ApplyTransaction commits a balance update and the matching ledger entry in
// one database transaction. The UPDATE carries a compare-and-swap on the
// version column; zero affected rows on an existing account means another
// writer got there first and the caller must re-read.
func (r *AccountRepository) ApplyTransaction(ctx context.Context, entry *domain.Transaction, newBalance float64, expectedVersion int64) error {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ledger tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE accounts SET balance = ?, version = version + 1 WHERE account_id = ? AND version = ?`,
		newBalance, entry.AccountID, expectedVersion)
	if err != nil {
		return fmt.Errorf("update balance for %s: %w", entry.AccountID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if affected == 0 {
		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(1) FROM accounts WHERE account_id = ?`, entry.AccountID).Scan(&exists); err != nil {
			return fmt.Errorf("check account %s: %w", entry.AccountID, err)
		}
		if exists == 0 {
			return domain.ErrAccountNotFound
		}
		return domain.ErrVersionConflict
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (account_id, direction, amount, created_at) VALUES (?, ?, ?, ?)`,
		entry.AccountID, string(entry.Direction), entry.Amount, createdAt)
	if err != nil {
		return fmt.Errorf("append ledger entry for %s: %w", entry.AccountID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read entry id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ledger tx: %w", err)
	}

	entry.ID = id
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*domain.Account, error) {
	var account domain.Account
	if err := s.Scan(&account.ID, &account.Username, &account.PasswordHash,
		&account.Balance, &account.Version, &account.CreatedAt); err != nil {
		return nil, err
	}
	return &account, nil
}
