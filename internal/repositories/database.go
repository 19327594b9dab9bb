package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/quota-ledger/internal/models"
)

const databaseColumns = `"DatabaseId", "Name", "nBytes", "dLastCheck", "dCreated", "bEnabled"`

// DatabaseReadRepository handles DB read operations
type DatabaseReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewDatabaseReadRepository(db *sqlx.DB, txGetter TxGetter) *DatabaseReadRepository {
	return &DatabaseReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the database with the given id or models.ErrNotFound.
func (r *DatabaseReadRepository) GetByID(ctx context.Context, databaseID int64) (*models.Database, error) {
	query := `SELECT ` + databaseColumns + ` FROM "DB" WHERE "DatabaseId" = ?`
	return r.get(ctx, query, databaseID)
}

// GetByName returns the database with the given name or models.ErrNotFound.
func (r *DatabaseReadRepository) GetByName(ctx context.Context, name string) (*models.Database, error) {
	query := `SELECT ` + databaseColumns + ` FROM "DB" WHERE "Name" = ?`
	return r.get(ctx, query, name)
}

func (r *DatabaseReadRepository) get(ctx context.Context, query string, arg any) (*models.Database, error) {
	ex := executor(ctx, r.db, r.txGetter)

	var database models.Database
	err := sqlx.GetContext(ctx, ex, &database, ex.Rebind(query), arg)

	logQuery(query, []any{arg}, database.DatabaseID, err)

	if err != nil {
		return nil, translateError(err, "get database")
	}
	return &database, nil
}

// ListByOwner returns the databases owned by a user ordered by id.
func (r *DatabaseReadRepository) ListByOwner(ctx context.Context, userID int64) ([]models.Database, error) {
	const query = `
		SELECT d."DatabaseId", d."Name", d."nBytes", d."dLastCheck", d."dCreated", d."bEnabled"
		FROM "DB" d
		JOIN "DBOwner" o ON o."DatabaseId" = d."DatabaseId"
		WHERE o."UserId" = ?
		ORDER BY d."DatabaseId"
	`

	ex := executor(ctx, r.db, r.txGetter)

	databases := []models.Database{}
	err := sqlx.SelectContext(ctx, ex, &databases, ex.Rebind(query), userID)

	logQuery(query, []any{userID}, len(databases), err)

	if err != nil {
		return nil, translateError(err, "list owned databases")
	}
	return databases, nil
}

// DatabaseWriteRepository handles DB write operations
type DatabaseWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewDatabaseWriteRepository(db *sqlx.DB, txGetter TxGetter) *DatabaseWriteRepository {
	return &DatabaseWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a database and returns the generated id.
func (r *DatabaseWriteRepository) Save(ctx context.Context, database *models.Database) (int64, error) {
	const query = `
		INSERT INTO "DB" ("Name", "nBytes", "dLastCheck", "dCreated", "bEnabled")
		VALUES (?, ?, ?, ?, ?)
		RETURNING "DatabaseId"
	`
	args := []any{database.Name, database.NBytes, database.DLastCheck, database.DCreated, database.BEnabled}

	ex := executor(ctx, r.db, r.txGetter)

	var databaseID int64
	err := sqlx.GetContext(ctx, ex, &databaseID, ex.Rebind(query), args...)

	logQuery(query, args, databaseID, err)

	if err != nil {
		return 0, translateError(err, "save database")
	}
	return databaseID, nil
}

// UpdateUsage overwrites the measured size and the time it was measured.
func (r *DatabaseWriteRepository) UpdateUsage(ctx context.Context, databaseID, nBytes int64, checkedAt time.Time) error {
	const query = `UPDATE "DB" SET "nBytes" = ?, "dLastCheck" = ? WHERE "DatabaseId" = ?`
	return execAffectingOne(ctx, executor(ctx, r.db, r.txGetter), "update database usage", query, nBytes, checkedAt, databaseID)
}

// SetEnabled flips the bEnabled flag of a database.
func (r *DatabaseWriteRepository) SetEnabled(ctx context.Context, databaseID int64, enabled bool) error {
	const query = `UPDATE "DB" SET "bEnabled" = ? WHERE "DatabaseId" = ?`
	return execAffectingOne(ctx, executor(ctx, r.db, r.txGetter), "set database enabled", query, enabled, databaseID)
}

// Delete removes a database; its quota and ownership rows go with it.
func (r *DatabaseWriteRepository) Delete(ctx context.Context, databaseID int64) error {
	const query = `DELETE FROM "DB" WHERE "DatabaseId" = ?`
	return execAffectingOne(ctx, executor(ctx, r.db, r.txGetter), "delete database", query, databaseID)
}
