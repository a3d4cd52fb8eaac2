package models

import "time"

// Credential represents a stored login credential owned by a single user.
//
// The Password field is a ciphertext string produced by the secret cipher;
// it is persisted and serialized only in encrypted form. The plaintext is
// available exclusively through the one-shot decrypt operation.
type Credential struct {
	// ID is the unique identifier of the credential record.
	ID int64 `json:"id"`

	// Title is a user-chosen label. Uniqueness is not enforced.
	Title string `json:"title"`

	// URL is the optional address of the resource the credential applies to.
	URL string `json:"url,omitempty"`

	// Username is the optional login identifier.
	Username string `json:"username,omitempty"`

	// Password is the encrypted secret. Always ciphertext outside of a
	// single request's memory.
	Password string `json:"password"`

	// UserID is the owning user. Set at creation, never reassigned.
	UserID int64 `json:"-"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the most recent modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "credentials"
}
