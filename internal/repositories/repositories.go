package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/sbilibin2017/quota-ledger/internal/logger"
	"github.com/sbilibin2017/quota-ledger/internal/models"
)

// TxGetter returns the transaction carried by ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the transaction from ctx when there is one.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs query, args, result, error with the query on a single line.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// translateError maps driver errors onto the ledger error kinds.
func translateError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return errors.Wrap(models.ErrNotFound, op)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return errors.Wrapf(models.ErrDuplicateKey, "%s: %s", op, pgErr.ConstraintName)
		case pgForeignKeyViolation, pgCheckViolation, pgNotNullViolation:
			return errors.Wrapf(models.ErrConstraintViolation, "%s: %s", op, pgErr.Message)
		}
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return errors.Wrapf(models.ErrDuplicateKey, "%s: %s", op, liteErr.Error())
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return errors.Wrapf(models.ErrConstraintViolation, "%s: %s", op, liteErr.Error())
		}
		if liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			if strings.Contains(liteErr.Error(), "UNIQUE") {
				return errors.Wrapf(models.ErrDuplicateKey, "%s: %s", op, liteErr.Error())
			}
			return errors.Wrapf(models.ErrConstraintViolation, "%s: %s", op, liteErr.Error())
		}
	}

	return errors.Wrap(err, op)
}

// execAffectingOne runs a statement that must touch exactly one row.
func execAffectingOne(ctx context.Context, ex sqlx.ExtContext, op, query string, args ...any) error {
	res, err := ex.ExecContext(ctx, ex.Rebind(query), args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return translateError(err, op)
	}
	if rowsAffected == 0 {
		return errors.Wrap(models.ErrNotFound, op)
	}
	return nil
}
