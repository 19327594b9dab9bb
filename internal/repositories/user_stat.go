package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/quota-ledger/internal/models"
)

// UserStatRepository reads and writes cached per-user aggregates
type UserStatRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserStatRepository(db *sqlx.DB, txGetter TxGetter) *UserStatRepository {
	return &UserStatRepository{db: db, txGetter: txGetter}
}

// Save inserts the stat row of a new user.
func (r *UserStatRepository) Save(ctx context.Context, stat models.UserStat) error {
	const query = `
		INSERT INTO "UserStat" ("UserId", "nDatabases", "nBytes", "dLastCheck")
		VALUES (?, ?, ?, ?)
	`
	args := []any{stat.UserID, stat.NDatabases, stat.NBytes, stat.DLastCheck}

	ex := executor(ctx, r.db, r.txGetter)
	_, err := ex.ExecContext(ctx, ex.Rebind(query), args...)

	logQuery(query, args, nil, err)

	return translateError(err, "save user stat")
}

// GetByUserID returns the cached aggregates of a user.
func (r *UserStatRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserStat, error) {
	const query = `SELECT "UserId", "nDatabases", "nBytes", "dLastCheck" FROM "UserStat" WHERE "UserId" = ?`

	ex := executor(ctx, r.db, r.txGetter)

	var stat models.UserStat
	err := sqlx.GetContext(ctx, ex, &stat, ex.Rebind(query), userID)

	logQuery(query, []any{userID}, stat, err)

	if err != nil {
		return nil, translateError(err, "get user stat")
	}
	return &stat, nil
}

// Update overwrites the cached aggregates of stat.UserID.
func (r *UserStatRepository) Update(ctx context.Context, stat models.UserStat) error {
	const query = `UPDATE "UserStat" SET "nDatabases" = ?, "nBytes" = ?, "dLastCheck" = ? WHERE "UserId" = ?`
	return execAffectingOne(ctx, executor(ctx, r.db, r.txGetter), "update user stat", query,
		stat.NDatabases, stat.NBytes, stat.DLastCheck, stat.UserID)
}
