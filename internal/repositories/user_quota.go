package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/quota-ledger/internal/models"
)

// UserQuotaRepository reads and writes UserQuota rows
type UserQuotaRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserQuotaRepository(db *sqlx.DB, txGetter TxGetter) *UserQuotaRepository {
	return &UserQuotaRepository{db: db, txGetter: txGetter}
}

// Save inserts the quota row of a new user.
func (r *UserQuotaRepository) Save(ctx context.Context, quota models.UserQuota) error {
	const query = `
		INSERT INTO "UserQuota" ("UserId", "nDatabasesHard", "nBytesSoft", "nBytesHard", "dCreated")
		VALUES (?, ?, ?, ?, ?)
	`
	args := []any{quota.UserID, quota.NDatabasesHard, quota.NBytesSoft, quota.NBytesHard, quota.DCreated}

	ex := executor(ctx, r.db, r.txGetter)
	_, err := ex.ExecContext(ctx, ex.Rebind(query), args...)

	logQuery(query, args, nil, err)

	return translateError(err, "save user quota")
}

// GetByUserID returns the quota of a user.
func (r *UserQuotaRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserQuota, error) {
	const query = `
		SELECT "UserId", "nDatabasesHard", "nBytesSoft", "nBytesHard", "dCreated"
		FROM "UserQuota"
		WHERE "UserId" = ?
	`

	ex := executor(ctx, r.db, r.txGetter)

	var quota models.UserQuota
	err := sqlx.GetContext(ctx, ex, &quota, ex.Rebind(query), userID)

	logQuery(query, []any{userID}, quota, err)

	if err != nil {
		return nil, translateError(err, "get user quota")
	}
	return &quota, nil
}

// UpdateBytes overwrites the soft and hard byte ceilings.
func (r *UserQuotaRepository) UpdateBytes(ctx context.Context, userID, soft, hard int64) error {
	const query = `UPDATE "UserQuota" SET "nBytesSoft" = ?, "nBytesHard" = ? WHERE "UserId" = ?`
	return execAffectingOne(ctx, executor(ctx, r.db, r.txGetter), "update user quota", query, soft, hard, userID)
}

// UpdateDatabasesHard overwrites the maximum number of databases.
func (r *UserQuotaRepository) UpdateDatabasesHard(ctx context.Context, userID, nDatabasesHard int64) error {
	const query = `UPDATE "UserQuota" SET "nDatabasesHard" = ? WHERE "UserId" = ?`
	return execAffectingOne(ctx, executor(ctx, r.db, r.txGetter), "update user database limit", query, nDatabasesHard, userID)
}
