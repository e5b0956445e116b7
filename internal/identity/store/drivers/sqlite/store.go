package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/campfirehq/identity/internal/identity/store"
	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	dsn string
}

// NewStore opens (or creates) the sqlite database at dsn. Callers normally
// pass a file: DSN with _busy_timeout and WAL journal options.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Users() store.Users { return &usersRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns sqlite unique-constraint violations into the store's
// ErrAlreadyExists sentinel. modernc.org/sqlite wraps SQLITE_CONSTRAINT
// errors without a stable sentinel type, so the message check stays.
func mapConstraint(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}
