// Package storage is the local durable store: a sqlite database holding
// workout sessions (templates and completed logs) and custom exercises.
// The app is single-user and accesses the store sequentially; writes that
// span tables run in transactions so a failed save leaves nothing behind.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations
var migrationsFS embed.FS

// ErrNotFound reports a lookup by id that matched nothing.
var ErrNotFound = errors.New("not found")

// timeLayout is RFC 3339 with fixed nanosecond width. Dates are stored as
// TEXT and compared with ORDER BY; RFC3339Nano trims trailing zeros, which
// breaks lexicographic ordering within a second.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// DB wraps the sqlite handle and provides repository methods.
type DB struct {
	sql *sql.DB
}

// Open opens (or creates) the sqlite database at path with foreign keys
// enforced.
func Open(ctx context.Context, path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &DB{sql: db}, nil
}

// Close closes the underlying handle.
func (db *DB) Close() error {
	return db.sql.Close()
}

// RunMigrations applies all pending embedded migrations to the database at
// path.
func RunMigrations(path string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite://"+path)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
