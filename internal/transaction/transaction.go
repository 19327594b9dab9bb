// Package transaction runs ledger operations inside a single database transaction.
package transaction

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/quota-ledger/internal/logger"
)

// Manager begins, commits and rolls back transactions on a store handle.
type Manager struct {
	db *sqlx.DB
}

// NewManager creates a Manager over db.
func NewManager(db *sqlx.DB) *Manager {
	return &Manager{db: db}
}

// Do runs fn with a transaction stored in its context. The transaction is
// committed when fn returns nil and rolled back otherwise. If ctx already
// carries a transaction, fn joins it and the outer caller decides the outcome.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if FromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(setTxToContext(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to roll back transaction", "error", rbErr, "cause", err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return err
	}
	return nil
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// FromContext retrieves the transaction from the context. Returns nil if not present.
func FromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
