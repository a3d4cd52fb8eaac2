package http

import (
	"net/http"

	"github.com/drivenpass/drivenpass/internal/logger"
	"github.com/drivenpass/drivenpass/internal/utils"
)

// decryptCredential returns the plaintext password of one credential.
// The response body is the bare plaintext, not a JSON envelope; this is the
// only endpoint where a stored secret leaves the server unencrypted.
func (h *Handler) decryptCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		log.Err(err).Msg("invalid id")
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	plaintext, err := h.services.CredentialService.Decrypt(ctx, id, userID)
	if err != nil {
		writeVaultError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(plaintext)); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}
