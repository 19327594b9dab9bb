// Package database opens the ledger store and applies its schema.
package database

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/sbilibin2017/quota-ledger/internal/logger"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Config describes how to reach the ledger store.
type Config struct {
	Driver       string // DriverPostgres or DriverSQLite
	DSN          string // Connection string or SQLite path
	MaxOpenConns int
	MaxIdleConns int
	Migrate      bool // Apply the schema after connecting
}

// PostgresDSN builds a pgx connection string.
func PostgresDSN(host string, port int, user, password, dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", user, password, host, port, dbName)
}

// SQLiteDSN turns a file path (or ":memory:") into a DSN with foreign keys enabled.
func SQLiteDSN(path string) string {
	dsn := path
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Open connects to the store described by cfg. The caller owns the returned
// handle and must Close it.
func Open(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	dsn := cfg.DSN
	if cfg.Driver == DriverSQLite {
		dsn = SQLiteDSN(cfg.DSN)
	} else if cfg.Driver != DriverPostgres {
		return nil, errors.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := sqlx.ConnectContext(ctx, cfg.Driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", cfg.Driver)
	}

	if cfg.Driver == DriverSQLite {
		// One connection: an in-memory database lives and dies with its connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		if cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			db.SetMaxIdleConns(cfg.MaxIdleConns)
		}
	}

	if cfg.Migrate {
		if err := Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
	}

	logger.Log.Infow("ledger store opened", "driver", cfg.Driver, "migrate", cfg.Migrate)
	return db, nil
}

// Migrate creates the ledger tables if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	schema := postgresSchema
	if db.DriverName() == DriverSQLite {
		schema = sqliteSchema
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "failed to apply schema")
	}
	return nil
}
