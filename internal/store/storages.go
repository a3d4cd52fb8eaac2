package store

import (
	"github.com/drivenpass/drivenpass/internal/logger"
	"github.com/drivenpass/drivenpass/models"
)

// Storages bundles every repository the application needs. It is built once
// at startup and handed to the service layer.
type Storages struct {
	UserRepository       UserRepository
	CredentialRepository VaultRepository[models.Credential]
	CardRepository       VaultRepository[models.Card]
	NoteRepository       VaultRepository[models.Note]
}

// NewStorages constructs all repositories on top of a single shared
// database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		CredentialRepository: NewCredentialRepository(db, log),
		CardRepository:       NewCardRepository(db, log),
		NoteRepository:       NewNoteRepository(db, log),
	}
}
