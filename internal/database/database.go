// Package database owns the process-wide handle to the file-backed content
// store.
//
// The store is initialized lazily: the first repository call opens (creating
// if necessary) the SQLite file, brings the schema up to date and seeds the
// baseline catalog if the store is empty. Every later call reuses the
// memoized handle, which lives for the rest of the process.
package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

// StorePath is the fixed location of the content store, relative to the
// working directory of the running process.
const StorePath = "database.sqlite"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store lazily constructs and exclusively owns the single database handle
// used by the repositories. Concurrent first accesses converge on a single
// initialization; there is no teardown, the handle lives until the process
// exits.
type Store struct {
	path string

	once sync.Once
	db   *sql.DB
	err  error
}

// New creates a store for the SQLite file at the given path. The file is not
// opened until the first DB call.
func New(path string) *Store {
	return &Store{path: path}
}

// NewWithDB wraps an already-open handle and skips schema creation and
// seeding. Intended for tests that bring their own database.
func NewWithDB(db *sql.DB) *Store {
	s := &Store{db: db}
	s.once.Do(func() {})
	return s
}

// DB returns the database handle, performing the one-time open, schema
// creation and seed on first call. An initialization failure is memoized for
// the process lifetime and returned to every caller; it is not retried.
func (s *Store) DB(ctx context.Context) (*sql.DB, error) {
	s.once.Do(func() {
		s.db, s.err = s.initialize(ctx)
	})
	if s.err != nil {
		return nil, fmt.Errorf("content store initialization failed: %w", s.err)
	}
	return s.db, nil
}

func (s *Store) initialize(ctx context.Context) (*sql.DB, error) {
	// _foreign_keys enables the pragma on every pooled connection, so the
	// activities ON DELETE CASCADE actually fires.
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on", s.path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite serializes writers itself; a single pooled connection keeps
	// concurrent requests from tripping over SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// runMigrations brings the schema up to date from the embedded migrations
func runMigrations(db *sql.DB) error {
	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
