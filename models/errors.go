package models

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrSchemaApply is returned when the schema could not be created or migrated.
	ErrSchemaApply = errors.New("schema apply failed")
	// ErrUniqueViolation is returned when an insert collides with a unique title.
	ErrUniqueViolation = errors.New("unique constraint violation")
	// ErrConnectivity is returned when the store cannot be reached.
	ErrConnectivity = errors.New("store unreachable")
	// ErrUnsupportedDriver is returned by Open for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

const sqlStateUniqueViolation = "23505"

// classify tags a driver error with the matching sentinel while keeping the
// original error in the chain.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUniqueViolation), errors.Is(err, ErrConnectivity):
		return err
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	case isConnectivity(err):
		return fmt.Errorf("%w: %w", ErrConnectivity, err)
	default:
		return err
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlStateUniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == sqlStateUniqueViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	// go-mssqldb is not imported directly; 2601/2627 surface in the message.
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Cannot insert duplicate key")
}

func isConnectivity(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pgConnErr *pgconn.ConnectError
	if errors.As(err, &pgConnErr) {
		return true
	}
	// database/sql does not export its closed-pool error.
	return strings.Contains(err.Error(), "sql: database is closed")
}
