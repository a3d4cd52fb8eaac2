package store

import (
	"github.com/drivenpass/drivenpass/internal/logger"
	"github.com/drivenpass/drivenpass/models"
)

// cardTable maps [models.Card] onto the "cards" table. The card_number and
// security_code columns hold ciphertext produced by the secret cipher. The
// per-user title uniqueness index makes duplicate titles surface as
// [ErrDuplicateTitle].
var cardTable = vaultTable[models.Card]{
	name:          "cards",
	insertColumns: []string{"title", "card_number", "card_name", "security_code", "expiration", "virtual", "card_type"},
	selectColumns: []string{"id", "title", "card_number", "card_name", "security_code", "expiration", "virtual", "card_type", "user_id", "created_at", "updated_at"},
	insertValues: func(rec models.Card) []any {
		return []any{rec.Title, rec.CardNumber, rec.CardName, rec.SecurityCode, rec.Expiration, rec.Virtual, rec.CardType}
	},
	updateValues: func(rec models.Card) map[string]any {
		return map[string]any{
			"title":         rec.Title,
			"card_number":   rec.CardNumber,
			"card_name":     rec.CardName,
			"security_code": rec.SecurityCode,
			"expiration":    rec.Expiration,
			"virtual":       rec.Virtual,
			"card_type":     rec.CardType,
		}
	},
	scanDest: func(rec *models.Card) []any {
		return []any{&rec.ID, &rec.Title, &rec.CardNumber, &rec.CardName, &rec.SecurityCode, &rec.Expiration, &rec.Virtual, &rec.CardType, &rec.UserID, &rec.CreatedAt, &rec.UpdatedAt}
	},
}

// NewCardRepository constructs a [VaultRepository] for cards backed by the
// provided database connection and logger.
func NewCardRepository(db *DB, log *logger.Logger) VaultRepository[models.Card] {
	return newVaultRepository(db, log, cardTable)
}
