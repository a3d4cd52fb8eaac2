package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the database at registration time.
	UserID int64 `json:"id"`

	// Email is the unique user identifier used during authentication.
	// Stored case-sensitively.
	Email string `json:"email"`

	// Password carries the plaintext password on inbound register/login
	// requests only. It is never persisted and never serialized back
	// to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password. The hash
	// embeds its own salt and cost factor. Never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
