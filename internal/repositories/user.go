package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/quota-ledger/internal/models"
)

const userColumns = `"UserId", "Username", "Password", "Name", "Email", "UL", "dCreated", "dSignup", "bEnabled"`

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user with the given id or models.ErrNotFound.
func (r *UserReadRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM "User" WHERE "UserId" = ?`
	return r.get(ctx, query, userID)
}

// GetByUsername returns the user with the given username or models.ErrNotFound.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM "User" WHERE "Username" = ?`
	return r.get(ctx, query, username)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.User, error) {
	ex := executor(ctx, r.db, r.txGetter)

	var user models.User
	err := sqlx.GetContext(ctx, ex, &user, ex.Rebind(query), arg)

	logQuery(query, []any{arg}, user.UserID, err)

	if err != nil {
		return nil, translateError(err, "get user")
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a user and returns the generated id.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.User) (int64, error) {
	const query = `
		INSERT INTO "User" ("Username", "Password", "Name", "Email", "UL", "dCreated", "dSignup", "bEnabled")
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING "UserId"
	`
	// The secret is never logged.
	args := []any{user.Username, user.Password, user.Name, user.Email, user.UL, user.DCreated, user.DSignup, user.BEnabled}

	ex := executor(ctx, r.db, r.txGetter)

	var userID int64
	err := sqlx.GetContext(ctx, ex, &userID, ex.Rebind(query), args...)

	logQuery(query, []any{user.Username, user.Name, user.Email}, userID, err)

	if err != nil {
		return 0, translateError(err, "save user")
	}
	return userID, nil
}

// SetEnabled flips the bEnabled flag of a user.
func (r *UserWriteRepository) SetEnabled(ctx context.Context, userID int64, enabled bool) error {
	const query = `UPDATE "User" SET "bEnabled" = ? WHERE "UserId" = ?`
	return execAffectingOne(ctx, executor(ctx, r.db, r.txGetter), "set user enabled", query, enabled, userID)
}

// Delete removes a user; quota, stat and ownership rows go with it.
func (r *UserWriteRepository) Delete(ctx context.Context, userID int64) error {
	const query = `DELETE FROM "User" WHERE "UserId" = ?`
	return execAffectingOne(ctx, executor(ctx, r.db, r.txGetter), "delete user", query, userID)
}
