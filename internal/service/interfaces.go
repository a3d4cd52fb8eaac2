package service

import (
	"context"

	"github.com/drivenpass/drivenpass/models"
)

// AuthService handles user registration, credential verification, and JWT
// token lifecycle.
type AuthService interface {
	// RegisterUser creates a new account from the email and plaintext
	// password carried in user. The password is hashed before storage and
	// never persisted in plaintext.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the email/password pair and issues a signed token.
	// Unknown email and wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// ListUsers returns all registered accounts without password hashes.
	ListUsers(ctx context.Context) ([]models.User, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	// Any validation failure yields ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultService is the common business-logic contract for user-owned vault
// records. Implementations validate required fields, encrypt sensitive
// subfields, and delegate persistence to an ownership-scoped repository.
// The authenticated owner identifier always comes from verified token
// claims, never from the request body.
type VaultService[T any] interface {
	Create(ctx context.Context, rec T, userID int64) (T, error)
	List(ctx context.Context, userID int64) ([]T, error)
	GetByID(ctx context.Context, id, userID int64) (T, error)
	Update(ctx context.Context, id int64, rec T, userID int64) (T, error)
	Delete(ctx context.Context, id, userID int64) error
}

// CredentialService extends the generic vault contract with plaintext
// recovery of a stored credential password.
type CredentialService interface {
	VaultService[models.Credential]

	// Decrypt returns the plaintext password of the credential with the
	// given id, if it is owned by userID.
	Decrypt(ctx context.Context, id, userID int64) (string, error)
}
