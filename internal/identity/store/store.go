package store

import (
	"context"
	"errors"

	"github.com/campfirehq/identity/internal/identity/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement it. Sub-repositories keep concerns separated and mockable.
type Store interface {
	Users() Users

	// ApplyMigrations brings the schema up to date from the embedded
	// migration files.
	ApplyMigrations() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error

	// Close releases the underlying resources.
	Close() error
}

// Users is the identity repository. Email uniqueness is enforced by the
// database constraint, not by check-then-create: two concurrent creates for
// the same email race, and the loser gets ErrAlreadyExists.
type Users interface {
	// CreateUser inserts a new identity (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is already registered.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByEmail is the sign-in lookup. Returns ErrNotFound when absent.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByID returns a user by id. Returns ErrNotFound when absent.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// CountUsers returns the total number of identity records.
	CountUsers(ctx context.Context) (int64, error)

	// ListUsers returns up to limit records starting at offset, newest first.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}
