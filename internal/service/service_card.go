package service

import (
	"fmt"

	"github.com/drivenpass/drivenpass/internal/crypto"
	"github.com/drivenpass/drivenpass/internal/logger"
	"github.com/drivenpass/drivenpass/internal/store"
	"github.com/drivenpass/drivenpass/models"
)

// NewCardService constructs a [VaultService] for payment cards. The cipher
// seals the card number and security code before persistence. All fields
// except the virtual flag are required, and the card type must be one of
// the allowed enumeration values.
func NewCardService(repo store.VaultRepository[models.Card], cipher crypto.SecretCipher, log *logger.Logger) VaultService[models.Card] {
	validate := func(rec models.Card) error {
		var missing []string
		if rec.Title == "" {
			missing = append(missing, "title")
		}
		if rec.CardNumber == "" {
			missing = append(missing, "cardNumber")
		}
		if rec.CardName == "" {
			missing = append(missing, "cardName")
		}
		if rec.SecurityCode == "" {
			missing = append(missing, "securityCode")
		}
		if rec.Expiration == "" {
			missing = append(missing, "expiration")
		}
		if rec.CardType == "" {
			missing = append(missing, "cardType")
		}
		if len(missing) > 0 {
			return &MissingFieldsError{Fields: missing}
		}
		if !rec.CardType.Valid() {
			return ErrInvalidCardType
		}
		return nil
	}

	seal := func(rec models.Card) (models.Card, error) {
		encryptedNumber, err := cipher.Encrypt(rec.CardNumber)
		if err != nil {
			return models.Card{}, fmt.Errorf("encrypt card number: %w", err)
		}
		encryptedCode, err := cipher.Encrypt(rec.SecurityCode)
		if err != nil {
			return models.Card{}, fmt.Errorf("encrypt security code: %w", err)
		}
		rec.CardNumber = encryptedNumber
		rec.SecurityCode = encryptedCode
		return rec, nil
	}

	return newVaultService(repo, validate, seal, log)
}
