package config

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	sqliteDriver  = "sqlite"
	sqliteTimeout = 5 * time.Second

	sqliteUpsert = `INSERT INTO settings (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	sqliteSelect = `SELECT value FROM settings WHERE key = ?`
)

// SQLiteBackend keeps settings in a single-table SQLite database. Commits run
// in one transaction.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLiteBackend opens (creating if needed) the database at path.
func OpenSQLiteBackend(path string) (*SQLiteBackend, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite backend requires a settings path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("error creating settings directory: %w", err)
	}

	db, err := sql.Open(sqliteDriver, path)
	if err != nil {
		return nil, fmt.Errorf("error opening settings database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrateSQLite(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteBackend{db: db}, nil
}

// migrateSQLite applies the embedded schema migrations.
func migrateSQLite(db *sql.DB) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	// m.Close would also close db, which the backend keeps using
	m, err := migrate.NewWithInstance("iofs", src, sqliteDriver, driver)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) Lookup(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), sqliteTimeout)
	defer cancel()

	var value string
	err := b.db.QueryRowContext(ctx, sqliteSelect, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (b *SQLiteBackend) Commit(values map[string]string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), sqliteTimeout)
	defer cancel()

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting settings transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, sqliteUpsert)
	if err != nil {
		return fmt.Errorf("error preparing settings upsert: %w", err)
	}
	defer stmt.Close()

	for key, value := range values {
		if _, err = stmt.ExecContext(ctx, key, value); err != nil {
			return fmt.Errorf("error writing setting %q: %w", key, err)
		}
	}

	return tx.Commit()
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
