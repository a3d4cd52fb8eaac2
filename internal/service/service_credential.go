package service

import (
	"context"
	"fmt"

	"github.com/drivenpass/drivenpass/internal/crypto"
	"github.com/drivenpass/drivenpass/internal/logger"
	"github.com/drivenpass/drivenpass/internal/store"
	"github.com/drivenpass/drivenpass/models"
)

// credentialService implements [CredentialService]. It reuses the generic
// vault mechanics and adds plaintext recovery of the stored password.
type credentialService struct {
	*vaultService[models.Credential]
	cipher crypto.SecretCipher
}

// NewCredentialService constructs a [CredentialService]. The cipher seals
// the password field before persistence; title and password are required,
// URL and username are optional.
func NewCredentialService(repo store.VaultRepository[models.Credential], cipher crypto.SecretCipher, log *logger.Logger) CredentialService {
	validate := func(rec models.Credential) error {
		var missing []string
		if rec.Title == "" {
			missing = append(missing, "title")
		}
		if rec.Password == "" {
			missing = append(missing, "password")
		}
		if len(missing) > 0 {
			return &MissingFieldsError{Fields: missing}
		}
		return nil
	}

	seal := func(rec models.Credential) (models.Credential, error) {
		encrypted, err := cipher.Encrypt(rec.Password)
		if err != nil {
			return models.Credential{}, fmt.Errorf("encrypt password: %w", err)
		}
		rec.Password = encrypted
		return rec, nil
	}

	return &credentialService{
		vaultService: newVaultService(repo, validate, seal, log),
		cipher:       cipher,
	}
}

// Decrypt returns the plaintext password of the credential with the given id,
// if it is owned by userID.
//
// Returns store.ErrRecordNotFound for missing or foreign records, or a
// crypto.ErrCipher-wrapped error when the stored blob cannot be opened
// (corrupted ciphertext or a rotated secret).
func (s *credentialService) Decrypt(ctx context.Context, id, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	record, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("user_id", userID).Msg("record lookup ended with error")
		return "", fmt.Errorf("record lookup ended with error: %w", err)
	}

	plaintext, err := s.cipher.Decrypt(record.Password)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("user_id", userID).Msg("stored password could not be decrypted")
		return "", fmt.Errorf("stored password could not be decrypted: %w", err)
	}

	return plaintext, nil
}
