package models

import "time"

// CardType enumerates the supported payment card kinds.
type CardType string

const (
	// CardTypeCredit marks a credit card.
	CardTypeCredit CardType = "CREDIT"

	// CardTypeDebit marks a debit card.
	CardTypeDebit CardType = "DEBIT"

	// CardTypeBoth marks a card usable in both credit and debit mode.
	CardTypeBoth CardType = "BOTH"
)

// Valid reports whether t is one of the enumerated card types.
func (t CardType) Valid() bool {
	switch t {
	case CardTypeCredit, CardTypeDebit, CardTypeBoth:
		return true
	}
	return false
}

// Card represents a stored payment card owned by a single user.
//
// CardNumber and SecurityCode are ciphertext strings produced by the secret
// cipher; they are persisted and serialized only in encrypted form.
type Card struct {
	// ID is the unique identifier of the card record.
	ID int64 `json:"id"`

	// Title is a user-chosen label, unique per owning user.
	Title string `json:"title"`

	// CardNumber is the encrypted primary account number.
	CardNumber string `json:"cardNumber"`

	// CardName is the cardholder name printed on the card.
	CardName string `json:"cardName"`

	// SecurityCode is the encrypted CVV/CVC.
	SecurityCode string `json:"securityCode"`

	// Expiration is the card expiration date string (e.g. "2027-08-01").
	Expiration string `json:"expiration"`

	// Virtual marks virtual (non-physical) cards.
	Virtual bool `json:"virtual"`

	// CardType is the enumerated card kind: CREDIT, DEBIT or BOTH.
	CardType CardType `json:"cardType"`

	// UserID is the owning user. Set at creation, never reassigned.
	UserID int64 `json:"-"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the most recent modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Card model.
func (c Card) TableName() string {
	return "cards"
}
