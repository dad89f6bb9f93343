package database

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	apperrors "github.com/pageza/recipebook/backend/internal/errors"
	"gorm.io/gorm"
)

// mysqlDuplicateEntry is the MySQL server error number for a unique key violation
const mysqlDuplicateEntry = 1062

// Executor runs single statements on a connection checked out of the pool
type Executor struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewExecutor creates an executor over db's pool
func NewExecutor(db *DB, logger *slog.Logger) *Executor {
	return &Executor{db: db.DB, logger: logger}
}

// Run acquires one connection, passes it to fn and releases it on every exit
// path. fn is expected to issue exactly one statement. Failures are returned
// as QUERY errors, unique key violations as CONFLICT and a missing record as
// NOT_FOUND.
func (e *Executor) Run(ctx context.Context, op string, fn func(conn *gorm.DB) error) error {
	start := time.Now()
	err := e.db.WithContext(ctx).Connection(fn)
	elapsed := time.Since(start)
	queryDuration.WithLabelValues(op).Observe(elapsed.Seconds())

	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Wrap(apperrors.ErrCodeNotFound, "record not found", err)
	}

	code := apperrors.ErrCodeQuery
	message := "database query failed"
	if isDuplicateKey(err) {
		code = apperrors.ErrCodeConflict
		message = "duplicate entry"
	}

	queryFailures.WithLabelValues(op, string(code)).Inc()
	e.logger.ErrorContext(ctx, "query failed",
		"op", op,
		"duration", elapsed,
		"error", err,
	)

	return apperrors.WrapWithContext(code, message, err, map[string]any{"op": op})
}

// isDuplicateKey recognizes unique violations from every supported driver,
// including those the dialector does not translate.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
