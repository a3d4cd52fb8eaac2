package service

import (
	"github.com/drivenpass/drivenpass/internal/logger"
	"github.com/drivenpass/drivenpass/internal/store"
	"github.com/drivenpass/drivenpass/models"
)

// NewNoteService constructs a [VaultService] for notes. Notes carry no
// sensitive fields, so no seal hook is installed; title and content are
// both required. Per-user title uniqueness is enforced by the storage
// layer and surfaces as store.ErrDuplicateTitle.
func NewNoteService(repo store.VaultRepository[models.Note], log *logger.Logger) VaultService[models.Note] {
	validate := func(rec models.Note) error {
		var missing []string
		if rec.Title == "" {
			missing = append(missing, "title")
		}
		if rec.Content == "" {
			missing = append(missing, "content")
		}
		if len(missing) > 0 {
			return &MissingFieldsError{Fields: missing}
		}
		return nil
	}

	return newVaultService(repo, validate, nil, log)
}
