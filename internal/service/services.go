package service

import (
	"github.com/drivenpass/drivenpass/internal/config"
	"github.com/drivenpass/drivenpass/internal/crypto"
	"github.com/drivenpass/drivenpass/internal/logger"
	"github.com/drivenpass/drivenpass/internal/store"
	"github.com/drivenpass/drivenpass/models"
)

// Services bundles every business-logic service the HTTP layer needs.
// It is built once at startup; the secret cipher is constructed by the
// caller from the configured secret and injected here, never held as
// global state.
type Services struct {
	AuthService       AuthService
	CredentialService CredentialService
	CardService       VaultService[models.Card]
	NoteService       VaultService[models.Note]
}

// NewServices wires all services to their repositories.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, cipher crypto.SecretCipher, log *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, log),
		CredentialService: NewCredentialService(storages.CredentialRepository, cipher, log),
		CardService:       NewCardService(storages.CardRepository, cipher, log),
		NoteService:       NewNoteService(storages.NoteRepository, log),
	}
}
