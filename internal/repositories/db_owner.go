package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/quota-ledger/internal/models"
)

// DBOwnerRepository reads and writes ownership links
type DBOwnerRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewDBOwnerRepository(db *sqlx.DB, txGetter TxGetter) *DBOwnerRepository {
	return &DBOwnerRepository{db: db, txGetter: txGetter}
}

// Save inserts an ownership link. A second owner for the same database
// surfaces as models.ErrDuplicateKey.
func (r *DBOwnerRepository) Save(ctx context.Context, owner models.DBOwner) error {
	const query = `INSERT INTO "DBOwner" ("DatabaseId", "UserId", "GroupId") VALUES (?, ?, ?)`
	args := []any{owner.DatabaseID, owner.UserID, owner.GroupID}

	ex := executor(ctx, r.db, r.txGetter)
	_, err := ex.ExecContext(ctx, ex.Rebind(query), args...)

	logQuery(query, args, nil, err)

	return translateError(err, "save database owner")
}

// GetByDatabaseID returns the ownership link of a database or models.ErrNotFound.
func (r *DBOwnerRepository) GetByDatabaseID(ctx context.Context, databaseID int64) (*models.DBOwner, error) {
	const query = `SELECT "DatabaseId", "UserId", "GroupId" FROM "DBOwner" WHERE "DatabaseId" = ?`

	ex := executor(ctx, r.db, r.txGetter)

	var owner models.DBOwner
	err := sqlx.GetContext(ctx, ex, &owner, ex.Rebind(query), databaseID)

	logQuery(query, []any{databaseID}, owner, err)

	if err != nil {
		return nil, translateError(err, "get database owner")
	}
	return &owner, nil
}
