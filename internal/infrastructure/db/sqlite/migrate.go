package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/accounts/*.sql
var accountsMigrationsFS embed.FS

//go:embed migrations/templates/*.sql
var templatesMigrationsFS embed.FS

// RunAccountsMigrations applies the accounts service schema (accounts +
// transactions tables). Safe to call on every startup; already-applied
// migrations are skipped.
func RunAccountsMigrations(db *sql.DB) error {
	return runMigrations(db, accountsMigrationsFS, "migrations/accounts")
}

// RunTemplatesMigrations applies the templates service schema.
func RunTemplatesMigrations(db *sql.DB) error {
	return runMigrations(db, templatesMigrationsFS, "migrations/templates")
}

func runMigrations(db *sql.DB, fs embed.FS, dir string) error {
	sourceDriver, err := iofs.New(fs, dir)
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}
