package store

import (
	"github.com/drivenpass/drivenpass/internal/logger"
	"github.com/drivenpass/drivenpass/models"
)

// credentialTable maps [models.Credential] onto the "credentials" table.
// The password column holds the ciphertext produced by the secret cipher;
// the repository never sees plaintext.
var credentialTable = vaultTable[models.Credential]{
	name:          "credentials",
	insertColumns: []string{"title", "url", "username", "password"},
	selectColumns: []string{"id", "title", "url", "username", "password", "user_id", "created_at", "updated_at"},
	insertValues: func(rec models.Credential) []any {
		return []any{rec.Title, rec.URL, rec.Username, rec.Password}
	},
	updateValues: func(rec models.Credential) map[string]any {
		return map[string]any{
			"title":    rec.Title,
			"url":      rec.URL,
			"username": rec.Username,
			"password": rec.Password,
		}
	},
	scanDest: func(rec *models.Credential) []any {
		return []any{&rec.ID, &rec.Title, &rec.URL, &rec.Username, &rec.Password, &rec.UserID, &rec.CreatedAt, &rec.UpdatedAt}
	},
}

// NewCredentialRepository constructs a [VaultRepository] for credentials
// backed by the provided database connection and logger.
func NewCredentialRepository(db *DB, log *logger.Logger) VaultRepository[models.Credential] {
	return newVaultRepository(db, log, credentialTable)
}
