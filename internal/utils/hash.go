package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinBcryptCost is the lowest bcrypt work factor accepted for password
// hashing. NewHasher silently raises smaller values to this floor.
const MinBcryptCost = 10

// Hasher provides bcrypt password hashing with a fixed work factor.
// Each Hash call embeds a fresh random salt, so hashing the same password
// twice yields different digests; use Verify for comparison.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher configured with the given bcrypt cost.
// Costs below MinBcryptCost are raised to MinBcryptCost.
func NewHasher(cost int) *Hasher {
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	return &Hasher{cost: cost}
}

// Hash computes a salted bcrypt digest of the given password.
//
// Returns:
//
//	string - the bcrypt digest in its standard encoded form
//	error  - non-nil if the password exceeds bcrypt's 72-byte limit or
//	         hashing fails
func (h *Hasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error occurred during password hashing: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether the given plaintext password matches the stored
// bcrypt digest.
func (h *Hasher) Verify(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
