// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/drivenpass/drivenpass/internal/logger"
	"github.com/jackc/pgerrcode"
)

// vaultRepository is the PostgreSQL-backed implementation of
// [VaultRepository] shared by all vault entities. The per-entity differences
// (table name, columns, scanning) live in the [vaultTable] descriptor; the
// ownership-scoped CRUD mechanics live here, once.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (table, user_id, record id).
type vaultRepository[T any] struct {
	db     *DB
	logger *logger.Logger
	table  vaultTable[T]
}

// newVaultRepository constructs a [VaultRepository] backed by the provided
// database connection, logger, and table descriptor.
func newVaultRepository[T any](db *DB, log *logger.Logger, table vaultTable[T]) *vaultRepository[T] {
	log.Debug().Str("table", table.name).Msg("creating vault repository")
	return &vaultRepository[T]{
		db:     db,
		logger: log,
		table:  table,
	}
}

// Create persists a new record owned by userID and returns the fully
// populated record with server-assigned fields (id, timestamps).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateTitle].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *vaultRepository[T]) Create(ctx context.Context, rec T, userID int64) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	query, args, err := r.table.buildInsertQuery(rec, userID)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Create").
			Str("table", r.table.name).
			Int64("user_id", userID).
			Msg("failed to build insert query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Create").
			Str("table", r.table.name).
			Int64("user_id", userID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to execute insert")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return zero, ErrDuplicateTitle
		default:
			return zero, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created := rec
	if err := row.Scan(r.table.scanDest(&created)...); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return zero, ErrDuplicateTitle
		}
		log.Err(err).
			Str("func", "vaultRepository.Create").
			Str("table", r.table.name).
			Int64("user_id", userID).
			Msg("failed to scan created record")
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindAll retrieves every record owned by the given user.
//
// Returns an empty slice when no records are found.
func (r *vaultRepository[T]) FindAll(ctx context.Context, userID int64) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.table.buildSelectAllQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.FindAll").
			Str("table", r.table.name).
			Int64("user_id", userID).
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.db.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "vaultRepository.FindAll").
			Str("table", r.table.name).
			Int64("user_id", userID).
			Bool("retryable", r.db.retryable(queryErr)).
			Msg("failed to execute query for listing records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	results := make([]T, 0, 50)

	for rows.Next() {
		var rec T

		if scanErr := rows.Scan(r.table.scanDest(&rec)...); scanErr != nil {
			log.Err(scanErr).
				Str("func", "vaultRepository.FindAll").
				Str("table", r.table.name).
				Int64("user_id", userID).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "vaultRepository.FindAll").
			Str("table", r.table.name).
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// FindByID retrieves the record with the given id if it is owned by userID.
//
// An ownership mismatch and a missing record both yield [ErrRecordNotFound]:
// the WHERE clause filters by both id and user_id, so the repository cannot
// tell the two cases apart, and neither should the caller.
func (r *vaultRepository[T]) FindByID(ctx context.Context, id, userID int64) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	query, args, err := r.table.buildSelectByIDQuery(id, userID)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.FindByID").
			Str("table", r.table.name).
			Int64("user_id", userID).
			Msg("failed to build select query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "vaultRepository.FindByID").
			Str("table", r.table.name).
			Int64("id", id).
			Int64("user_id", userID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to execute select")
		return zero, fmt.Errorf("unexpected DB error: %w", err)
	}

	var rec T
	if err := row.Scan(r.table.scanDest(&rec)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrRecordNotFound
		}
		log.Err(err).
			Str("func", "vaultRepository.FindByID").
			Str("table", r.table.name).
			Int64("id", id).
			Int64("user_id", userID).
			Msg("failed to scan record")
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

// Update overwrites the mutable fields of the record with the given id if it
// is owned by userID and returns the stored result.
//
// Error handling:
//   - no matching row (wrong id or wrong owner) → [ErrRecordNotFound].
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateTitle].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *vaultRepository[T]) Update(ctx context.Context, id int64, rec T, userID int64) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	query, args, err := r.table.buildUpdateQuery(id, rec, userID)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Update").
			Str("table", r.table.name).
			Int64("user_id", userID).
			Msg("failed to build update query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Update").
			Str("table", r.table.name).
			Int64("id", id).
			Int64("user_id", userID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to execute update")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return zero, ErrDuplicateTitle
		default:
			return zero, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	updated := rec
	if err := row.Scan(r.table.scanDest(&updated)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrRecordNotFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return zero, ErrDuplicateTitle
		}
		log.Err(err).
			Str("func", "vaultRepository.Update").
			Str("table", r.table.name).
			Int64("id", id).
			Int64("user_id", userID).
			Msg("failed to scan updated record")
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// Delete removes the record with the given id if it is owned by userID.
//
// A zero affected-row count (wrong id or wrong owner) yields
// [ErrRecordNotFound], which also makes a repeated delete fail.
func (r *vaultRepository[T]) Delete(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.table.buildDeleteQuery(id, userID)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Delete").
			Str("table", r.table.name).
			Int64("user_id", userID).
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, execErr := r.db.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "vaultRepository.Delete").
			Str("table", r.table.name).
			Int64("id", id).
			Int64("user_id", userID).
			Bool("retryable", r.db.retryable(execErr)).
			Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Delete").
			Str("table", r.table.name).
			Int64("id", id).
			Int64("user_id", userID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
