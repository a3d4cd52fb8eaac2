// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/drivenpass/drivenpass/internal/crypto"
	"github.com/drivenpass/drivenpass/internal/logger"
	"github.com/drivenpass/drivenpass/internal/service"
	"github.com/drivenpass/drivenpass/internal/store"
	"github.com/drivenpass/drivenpass/internal/utils"
)

// vaultRoutes wires one vault entity's CRUD endpoints onto a chi router.
// The same code serves credentials, cards, and notes; the entity-specific
// behaviour lives entirely in the injected [service.VaultService].
//
// Every handler resolves the owner from the context populated by the auth
// middleware. A body-supplied user identifier is never consulted.
type vaultRoutes[T any] struct {
	svc service.VaultService[T]
}

func newVaultRoutes[T any](svc service.VaultService[T]) *vaultRoutes[T] {
	return &vaultRoutes[T]{svc: svc}
}

// mount registers the CRUD endpoints on r:
//
//	POST   /       create
//	GET    /       list
//	GET    /{id}   get one
//	PUT    /{id}   update
//	DELETE /{id}   delete
func (vr *vaultRoutes[T]) mount(r chi.Router) {
	r.Post("/", vr.create)
	r.Get("/", vr.list)
	r.Get("/{id}", vr.get)
	r.Put("/{id}", vr.update)
	r.Delete("/{id}", vr.remove)
}

func (vr *vaultRoutes[T]) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var rec T
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := vr.svc.Create(ctx, rec, userID)
	if err != nil {
		writeVaultError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}

func (vr *vaultRoutes[T]) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	records, err := vr.svc.List(ctx, userID)
	if err != nil {
		writeVaultError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, records, http.StatusOK); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}

func (vr *vaultRoutes[T]) get(w http.ResponseWriter, r *http.Request) {
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

	record, err := vr.svc.GetByID(ctx, id, userID)
	if err != nil {
		writeVaultError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, record, http.StatusOK); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}

func (vr *vaultRoutes[T]) update(w http.ResponseWriter, r *http.Request) {
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

	var rec T
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := vr.svc.Update(ctx, id, rec, userID)
	if err != nil {
		writeVaultError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}

func (vr *vaultRoutes[T]) remove(w http.ResponseWriter, r *http.Request) {
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

	if err := vr.svc.Delete(ctx, id, userID); err != nil {
		writeVaultError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseIDParam reads the {id} URL parameter as a base-10 int64.
func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// writeVaultError translates service and storage errors into HTTP responses:
//
//	missing fields, invalid card type → 400
//	record not found (or not owned)   → 404
//	duplicate title                   → 409
//	anything else, incl. cipher fault → 500
func writeVaultError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var missingErr *service.MissingFieldsError
	switch {
	case errors.As(err, &missingErr):
		log.Err(err).Msg("missing required fields")
		http.Error(w, missingErr.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCardType):
		log.Err(err).Msg("invalid card type")
		http.Error(w, service.ErrInvalidCardType.Error(), http.StatusBadRequest)
	case errors.Is(err, store.ErrRecordNotFound):
		log.Err(err).Msg("record not found")
		http.Error(w, store.ErrRecordNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, store.ErrDuplicateTitle):
		log.Err(err).Msg("duplicate title")
		http.Error(w, store.ErrDuplicateTitle.Error(), http.StatusConflict)
	case errors.Is(err, crypto.ErrCipher):
		log.Err(err).Msg("cipher failure")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	default:
		log.Err(err).Msg("unexpected error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
