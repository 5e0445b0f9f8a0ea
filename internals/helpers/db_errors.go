// file: internals/helpers/db_errors.go
package helper

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type DBErrorKind int

const (
	DBErrOther DBErrorKind = iota
	DBErrUnique
	DBErrForeignKey
)

// ClassifyDBError maps driver errors (pgx, lib/pq, gorm translated, sqlite
// text) onto the few kinds the handlers care about.
func ClassifyDBError(err error) DBErrorKind {
	if err == nil {
		return DBErrOther
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return DBErrUnique
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return DBErrForeignKey
	}

	// pgx
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return kindFromSQLState(pgxErr.Code)
	}
	// lib/pq
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return kindFromSQLState(string(pqErr.Code))
	}

	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505"):
		return DBErrUnique
	case strings.Contains(s, "foreign key constraint") || strings.Contains(s, "23503"):
		return DBErrForeignKey
	}
	return DBErrOther
}

func IsUniqueViolation(err error) bool { return ClassifyDBError(err) == DBErrUnique }

func IsForeignKeyViolation(err error) bool { return ClassifyDBError(err) == DBErrForeignKey }

func kindFromSQLState(code string) DBErrorKind {
	switch code {
	case "23505":
		return DBErrUnique
	case "23503":
		return DBErrForeignKey
	default:
		return DBErrOther
	}
}
