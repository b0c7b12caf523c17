package store

import (
	"context"
	"errors"

	"github.com/contabr/accounts/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle transactions as it automatically
	// handles commit/rollback logic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// ListUsers returns all users ordered by id.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// CreateUser inserts a new user and returns the generated id.
	// Unique-index violations on document or email surface as ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// UpdateUser rewrites name, document, email and updated_at for u.ID.
	UpdateUser(ctx context.Context, u domain.User) error

	// DeleteUser removes the row. Deleting an absent id is not an error here;
	// callers fetch first when they need not-found semantics.
	DeleteUser(ctx context.Context, id int64) error

	// DocumentInUse reports whether another user (id != excludeID) already
	// holds this document. Pass excludeID 0 when creating.
	DocumentInUse(ctx context.Context, document string, excludeID int64) (bool, error)

	// EmailInUse is the email counterpart of DocumentInUse.
	EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error)
}
