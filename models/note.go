package models

import "time"

// Note represents a secure free-form note owned by a single user.
// Note titles are unique within the scope of one owning user.
type Note struct {
	// ID is the unique identifier of the note record.
	ID int64 `json:"id"`

	// Title is a user-chosen label, unique per owning user.
	Title string `json:"title"`

	// Content is the note body.
	Content string `json:"content"`

	// UserID is the owning user. Set at creation, never reassigned.
	UserID int64 `json:"-"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the most recent modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
