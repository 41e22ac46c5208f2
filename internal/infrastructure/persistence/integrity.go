package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// IntegrityKind classifies a constraint failure reported by the store
type IntegrityKind int

const (
	// NotIntegrity means the error is not a constraint failure
	NotIntegrity IntegrityKind = iota
	// UniqueViolation is a duplicate value on a unique index
	UniqueViolation
	// ForeignKeyViolation is a reference to a missing parent row
	ForeignKeyViolation
	// OtherIntegrity covers the remaining constraint classes (not null, check, ...)
	OtherIntegrity
)

// String returns the kind name used in logs and metrics
func (k IntegrityKind) String() string {
	switch k {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case OtherIntegrity:
		return "integrity_violation"
	default:
		return "none"
	}
}

// PostgreSQL SQLSTATE codes (class 23, integrity constraint violation)
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgIntegrityClass      = "23"
)

// IntegrityError is a store constraint failure that a repository chose not to
// translate into a domain error.
type IntegrityError struct {
	Kind IntegrityKind
	Err  error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// ClassifyIntegrity inspects err and reports which constraint, if any, it violated.
//
// GORM's translated errors are checked first (TranslateError is enabled on
// every connection), then the native driver errors for pgx, lib/pq and sqlite.
func ClassifyIntegrity(err error) IntegrityKind {
	if err == nil {
		return NotIntegrity
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return UniqueViolation
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ForeignKeyViolation
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return OtherIntegrity
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifySQLState(pgErr.Code)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifySQLState(string(pqErr.Code))
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return classifySQLite(sqliteErr)
	}

	return classifyMessage(err.Error())
}

func classifySQLState(code string) IntegrityKind {
	switch {
	case code == pgUniqueViolation:
		return UniqueViolation
	case code == pgForeignKeyViolation:
		return ForeignKeyViolation
	case strings.HasPrefix(code, pgIntegrityClass):
		return OtherIntegrity
	default:
		return NotIntegrity
	}
}

func classifySQLite(err sqlite3.Error) IntegrityKind {
	if err.Code != sqlite3.ErrConstraint {
		return NotIntegrity
	}
	switch err.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	default:
		return OtherIntegrity
	}
}

// classifyMessage handles drivers whose errors reach us only as text.
func classifyMessage(msg string) IntegrityKind {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "unique constraint"),
		strings.Contains(lower, "duplicate key"),
		strings.Contains(lower, "duplicate entry"):
		return UniqueViolation
	case strings.Contains(lower, "foreign key constraint"):
		return ForeignKeyViolation
	case strings.Contains(lower, "violates not-null constraint"),
		strings.Contains(lower, "not null constraint failed"),
		strings.Contains(lower, "violates check constraint"):
		return OtherIntegrity
	default:
		return NotIntegrity
	}
}
