package store

import (
	"context"

	"github.com/drivenpass/drivenpass/models"
)

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the account with the given email.
	// Returns ErrUserNotFound when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// ListUsers returns all registered accounts without password hashes.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// VaultRepository is the common storage contract for user-owned vault
// records (credentials, cards, notes). Every method is scoped by the owning
// user identifier: a record that exists but belongs to a different user is
// reported as ErrRecordNotFound.
type VaultRepository[T any] interface {
	// Create persists a new record owned by userID and returns it with
	// server-assigned fields populated. Returns ErrDuplicateTitle when a
	// per-user title uniqueness constraint is violated.
	Create(ctx context.Context, rec T, userID int64) (T, error)

	// FindAll returns every record owned by userID. The slice is empty,
	// never nil, when the user owns no records.
	FindAll(ctx context.Context, userID int64) ([]T, error)

	// FindByID returns the record with the given id if it is owned by
	// userID, otherwise ErrRecordNotFound.
	FindByID(ctx context.Context, id, userID int64) (T, error)

	// Update overwrites the mutable fields of the record with the given id
	// if it is owned by userID and returns the stored result.
	// Returns ErrRecordNotFound or ErrDuplicateTitle accordingly.
	Update(ctx context.Context, id int64, rec T, userID int64) (T, error)

	// Delete removes the record with the given id if it is owned by userID,
	// otherwise returns ErrRecordNotFound.
	Delete(ctx context.Context, id, userID int64) error
}
