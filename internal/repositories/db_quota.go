package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/quota-ledger/internal/models"
)

// DBQuotaRepository reads and writes DBQuota rows
type DBQuotaRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewDBQuotaRepository(db *sqlx.DB, txGetter TxGetter) *DBQuotaRepository {
	return &DBQuotaRepository{db: db, txGetter: txGetter}
}

// Save inserts the quota row of a new database.
func (r *DBQuotaRepository) Save(ctx context.Context, quota models.DBQuota) error {
	const query = `
		INSERT INTO "DBQuota" ("DatabaseId", "nBytesSoft", "nBytesHard", "dCreated")
		VALUES (?, ?, ?, ?)
	`
	args := []any{quota.DatabaseID, quota.NBytesSoft, quota.NBytesHard, quota.DCreated}

	ex := executor(ctx, r.db, r.txGetter)
	_, err := ex.ExecContext(ctx, ex.Rebind(query), args...)

	logQuery(query, args, nil, err)

	return translateError(err, "save database quota")
}

// GetByDatabaseID returns the quota of a database.
func (r *DBQuotaRepository) GetByDatabaseID(ctx context.Context, databaseID int64) (*models.DBQuota, error) {
	const query = `SELECT "DatabaseId", "nBytesSoft", "nBytesHard", "dCreated" FROM "DBQuota" WHERE "DatabaseId" = ?`

	ex := executor(ctx, r.db, r.txGetter)

	var quota models.DBQuota
	err := sqlx.GetContext(ctx, ex, &quota, ex.Rebind(query), databaseID)

	logQuery(query, []any{databaseID}, quota, err)

	if err != nil {
		return nil, translateError(err, "get database quota")
	}
	return &quota, nil
}

// UpdateBytes overwrites the soft and hard byte ceilings.
func (r *DBQuotaRepository) UpdateBytes(ctx context.Context, databaseID, soft, hard int64) error {
	const query = `UPDATE "DBQuota" SET "nBytesSoft" = ?, "nBytesHard" = ? WHERE "DatabaseId" = ?`
	return execAffectingOne(ctx, executor(ctx, r.db, r.txGetter), "update database quota", query, soft, hard, databaseID)
}
