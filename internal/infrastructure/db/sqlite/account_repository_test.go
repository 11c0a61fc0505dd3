package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/corepay/payments-platform/internal/core/domain"
)

func testAccount(id, username string) *domain.Account {
	return &domain.Account{
		ID:           id,
		Username:     username,
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestAccountRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t, RunAccountsMigrations)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, testAccount("acct-1", "alice")); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	byID, err := repo.FindByID(ctx, "acct-1")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if byID.Username != "alice" || byID.Balance != 0 || byID.Version != 0 {
		t.Fatalf("unexpected account: %+v", byID)
	}

	byName, err := repo.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("FindByUsername returned error: %v", err)
	}
	if byName.ID != "acct-1" {
		t.Fatalf("expected acct-1, got %s", byName.ID)
	}
}

func TestAccountRepository_Create_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t, RunAccountsMigrations)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, testAccount("acct-1", "alice")); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := repo.Create(ctx, testAccount("acct-2", "alice")); !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAccountRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t, RunAccountsMigrations)
	repo := NewAccountRepository(db)

	if _, err := repo.FindByID(context.Background(), "ghost"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepository_ApplyTransaction(t *testing.T) {
	db := setupTestDB(t, RunAccountsMigrations)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, testAccount("acct-1", "alice")); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	entry := &domain.Transaction{
		AccountID: "acct-1",
		Direction: domain.DirectionDeposit,
		Amount:    100,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.ApplyTransaction(ctx, entry, 100, 0); err != nil {
		t.Fatalf("ApplyTransaction returned error: %v", err)
	}
	if entry.ID == 0 {
		t.Fatalf("expected entry id to be assigned")
	}

	account, err := repo.FindByID(ctx, "acct-1")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if account.Balance != 100 {
		t.Fatalf("expected balance 100, got %v", account.Balance)
	}
	if account.Version != 1 {
		t.Fatalf("expected version 1, got %d", account.Version)
	}
}

func TestAccountRepository_ApplyTransaction_VersionConflict(t *testing.T) {
	db := setupTestDB(t, RunAccountsMigrations)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, testAccount("acct-1", "alice")); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	first := &domain.Transaction{AccountID: "acct-1", Direction: domain.DirectionDeposit, Amount: 10}
	if err := repo.ApplyTransaction(ctx, first, 10, 0); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}

	// Stale version: another writer already bumped it.
	stale := &domain.Transaction{AccountID: "acct-1", Direction: domain.DirectionDeposit, Amount: 20}
	if err := repo.ApplyTransaction(ctx, stale, 30, 0); !errors.Is(err, domain.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}

	// The losing write must leave no trace.
	account, _ := repo.FindByID(ctx, "acct-1")
	if account.Balance != 10 {
		t.Fatalf("expected balance 10 after lost race, got %v", account.Balance)
	}
	entries, _ := repo.ListTransactions(ctx, "acct-1")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after lost race, got %d", len(entries))
	}
}

func TestAccountRepository_ApplyTransaction_AccountNotFound(t *testing.T) {
	db := setupTestDB(t, RunAccountsMigrations)
	repo := NewAccountRepository(db)

	entry := &domain.Transaction{AccountID: "ghost", Direction: domain.DirectionDeposit, Amount: 10}
	if err := repo.ApplyTransaction(context.Background(), entry, 10, 0); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepository_ListTransactions_AppendOrder(t *testing.T) {
	db := setupTestDB(t, RunAccountsMigrations)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, testAccount("acct-1", "alice")); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	amounts := []float64{100, 30, 5}
	balance := 0.0
	for i, amount := range amounts {
		balance += amount
		entry := &domain.Transaction{AccountID: "acct-1", Direction: domain.DirectionDeposit, Amount: amount}
		if err := repo.ApplyTransaction(ctx, entry, balance, int64(i)); err != nil {
			t.Fatalf("apply %d failed: %v", i, err)
		}
	}

	entries, err := repo.ListTransactions(ctx, "acct-1")
	if err != nil {
		t.Fatalf("ListTransactions returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, amount := range amounts {
		if entries[i].Amount != amount {
			t.Fatalf("entry %d: expected amount %v, got %v", i, amount, entries[i].Amount)
		}
	}
}
