package store

import (
	"github.com/drivenpass/drivenpass/internal/logger"
	"github.com/drivenpass/drivenpass/models"
)

// noteTable maps [models.Note] onto the "notes" table. Note content is not
// a sensitive field and is stored in plaintext. The per-user title
// uniqueness index makes duplicate titles surface as [ErrDuplicateTitle].
var noteTable = vaultTable[models.Note]{
	name:          "notes",
	insertColumns: []string{"title", "content"},
	selectColumns: []string{"id", "title", "content", "user_id", "created_at", "updated_at"},
	insertValues: func(rec models.Note) []any {
		return []any{rec.Title, rec.Content}
	},
	updateValues: func(rec models.Note) map[string]any {
		return map[string]any{
			"title":   rec.Title,
			"content": rec.Content,
		}
	},
	scanDest: func(rec *models.Note) []any {
		return []any{&rec.ID, &rec.Title, &rec.Content, &rec.UserID, &rec.CreatedAt, &rec.UpdatedAt}
	},
}

// NewNoteRepository constructs a [VaultRepository] for notes backed by the
// provided database connection and logger.
func NewNoteRepository(db *DB, log *logger.Logger) VaultRepository[models.Note] {
	return newVaultRepository(db, log, noteTable)
}
