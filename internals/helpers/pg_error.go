// file: internals/helpers/pg_error.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error codes we care about
const (
	pgUndefinedTable   = "42P01"
	pgUndefinedColumn  = "42703"
	pgUniqueViolation  = "23505"
	pgFKViolation      = "23503"
	pgCheckViolation   = "23514"
)

// FromDBError maps a persistence error to a fiber error with a readable
// message. Schema errors (missing table/column) get an actionable message so
// the operator knows a migration was not applied.
func FromDBError(err error, entity string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, entity+" not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUndefinedTable, pgUndefinedColumn:
			return fiber.NewError(fiber.StatusInternalServerError,
				"Database schema is out of date ("+pgErr.Message+"). Apply the pending migrations and retry.")
		case pgUniqueViolation:
			return fiber.NewError(fiber.StatusConflict, entity+" already exists")
		case pgFKViolation:
			return fiber.NewError(fiber.StatusConflict, entity+" is referenced by other records")
		case pgCheckViolation:
			return fiber.NewError(fiber.StatusBadRequest, "Invalid value for "+entity)
		}
	}

	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
