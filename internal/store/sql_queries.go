package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/drivenpass/drivenpass/models"
)

// psql builds parameterised queries with PostgreSQL-style $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("email", "password_hash").
		Values(user.Email, user.PasswordHash).
		Suffix("RETURNING user_id, email, password_hash, created_at").
		ToSql()
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select("user_id", "email", "password_hash", "created_at").
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildListUsersQuery() (string, []any, error) {
	// password_hash is intentionally not selected: the listing is public
	return psql.Select("user_id", "email", "created_at").
		From("users").
		OrderBy("user_id").
		ToSql()
}

// vaultTable describes how one vault entity maps onto its table: column
// names, how a record's fields become insert/update arguments, and how a
// result row is scanned back. It is the only per-entity code the generic
// vault repository needs.
type vaultTable[T any] struct {
	name string

	// insertColumns excludes id, user_id and the timestamps; those are
	// assigned by the database or appended by the query builders.
	insertColumns []string

	// selectColumns is the full column set returned by every query,
	// including RETURNING clauses.
	selectColumns []string

	// insertValues returns the arguments matching insertColumns.
	insertValues func(rec T) []any

	// updateValues returns the mutable column set for UPDATE statements.
	updateValues func(rec T) map[string]any

	// scanDest returns pointers to the record's fields in selectColumns
	// order, ready to be passed to Row.Scan.
	scanDest func(rec *T) []any
}

func (t vaultTable[T]) buildInsertQuery(rec T, userID int64) (string, []any, error) {
	return psql.Insert(t.name).
		Columns(append(append([]string{}, t.insertColumns...), "user_id")...).
		Values(append(t.insertValues(rec), userID)...).
		Suffix("RETURNING " + strings.Join(t.selectColumns, ", ")).
		ToSql()
}

func (t vaultTable[T]) buildSelectAllQuery(userID int64) (string, []any, error) {
	return psql.Select(t.selectColumns...).
		From(t.name).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
}

func (t vaultTable[T]) buildSelectByIDQuery(id, userID int64) (string, []any, error) {
	// user_id is part of every WHERE clause: ownership filtering happens in
	// the database, not in Go code.
	return psql.Select(t.selectColumns...).
		From(t.name).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func (t vaultTable[T]) buildUpdateQuery(id int64, rec T, userID int64) (string, []any, error) {
	return psql.Update(t.name).
		SetMap(t.updateValues(rec)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(t.selectColumns, ", ")).
		ToSql()
}

func (t vaultTable[T]) buildDeleteQuery(id, userID int64) (string, []any, error) {
	return psql.Delete(t.name).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}
