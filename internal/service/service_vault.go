// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/drivenpass/drivenpass/internal/logger"
	"github.com/drivenpass/drivenpass/internal/store"
)

// vaultService is the generic implementation of [VaultService] shared by
// credentials, cards, and notes. The per-entity differences are captured by
// two hooks:
//
//   - validate inspects an incoming record and rejects it before any cipher
//     or storage work happens;
//   - seal transforms the record's sensitive fields into ciphertext (the
//     identity function for entities without sensitive fields).
//
// Ownership enforcement lives below, in the repository: every call passes
// the authenticated userID through, and the repository folds it into each
// WHERE clause.
type vaultService[T any] struct {
	repo     store.VaultRepository[T]
	validate func(rec T) error
	seal     func(rec T) (T, error)
	logger   *logger.Logger
}

func newVaultService[T any](repo store.VaultRepository[T], validate func(rec T) error, seal func(rec T) (T, error), log *logger.Logger) *vaultService[T] {
	return &vaultService[T]{
		repo:     repo,
		validate: validate,
		seal:     seal,
		logger:   log,
	}
}

// Create validates the record, seals its sensitive fields, and persists it
// under the given owner. The returned record carries ciphertext, never
// plaintext.
func (s *vaultService[T]) Create(ctx context.Context, rec T, userID int64) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	if err := s.validate(rec); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("record validation failed")
		return zero, err
	}

	sealed, err := s.sealRecord(rec)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("record encryption failed")
		return zero, err
	}

	created, err := s.repo.Create(ctx, sealed, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("record creation ended with error")
		return zero, fmt.Errorf("record creation ended with error: %w", err)
	}

	return created, nil
}

// List returns every record owned by userID.
func (s *vaultService[T]) List(ctx context.Context, userID int64) ([]T, error) {
	log := logger.FromContext(ctx)

	records, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("record listing ended with error")
		return nil, fmt.Errorf("record listing ended with error: %w", err)
	}

	return records, nil
}

// GetByID returns the record with the given id if it is owned by userID.
// A record owned by someone else is indistinguishable from a missing one.
func (s *vaultService[T]) GetByID(ctx context.Context, id, userID int64) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	record, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("user_id", userID).Msg("record lookup ended with error")
		return zero, fmt.Errorf("record lookup ended with error: %w", err)
	}

	return record, nil
}

// Update validates and seals the incoming record, then overwrites the stored
// record with the given id if it is owned by userID.
func (s *vaultService[T]) Update(ctx context.Context, id int64, rec T, userID int64) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	if err := s.validate(rec); err != nil {
		log.Error().Err(err).Int64("id", id).Int64("user_id", userID).Msg("record validation failed")
		return zero, err
	}

	sealed, err := s.sealRecord(rec)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("user_id", userID).Msg("record encryption failed")
		return zero, err
	}

	updated, err := s.repo.Update(ctx, id, sealed, userID)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("user_id", userID).Msg("record update ended with error")
		return zero, fmt.Errorf("record update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes the record with the given id if it is owned by userID.
// Deleting an already-deleted record fails the same way as deleting a
// record that never existed.
func (s *vaultService[T]) Delete(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		log.Err(err).Int64("id", id).Int64("user_id", userID).Msg("record deletion ended with error")
		return fmt.Errorf("record deletion ended with error: %w", err)
	}

	return nil
}

func (s *vaultService[T]) sealRecord(rec T) (T, error) {
	if s.seal == nil {
		return rec, nil
	}
	return s.seal(rec)
}
