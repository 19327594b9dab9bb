package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/quota-ledger/internal/database"
	"github.com/sbilibin2017/quota-ledger/internal/models"
	"github.com/sbilibin2017/quota-ledger/internal/transaction"
)

// setupSQLite opens a fresh in-memory ledger store.
func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(context.Background(), database.Config{
		Driver:  database.DriverSQLite,
		DSN:     ":memory:",
		Migrate: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

var testNow = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func newTestUser(username string) *models.User {
	return &models.User{
		Username: username,
		Password: "hash-" + username,
		Name:     "Name " + username,
		Email:    username + "@example.com",
		UL:       models.DefaultUserLevel,
		DCreated: testNow,
		DSignup:  testNow,
		BEnabled: true,
	}
}

func newTestDatabase(name string) *models.Database {
	return &models.Database{
		Name:       name,
		DLastCheck: models.NeverChecked,
		DCreated:   testNow,
		BEnabled:   true,
	}
}

// seedUser inserts a user with its quota and stat rows.
func seedUser(t *testing.T, db *sqlx.DB, username string) int64 {
	t.Helper()
	ctx := context.Background()

	userID, err := NewUserWriteRepository(db, transaction.FromContext).Save(ctx, newTestUser(username))
	require.NoError(t, err)
	require.NoError(t, NewUserQuotaRepository(db, transaction.FromContext).Save(ctx, models.NewUserQuota(userID, testNow)))
	require.NoError(t, NewUserStatRepository(db, transaction.FromContext).Save(ctx, models.UserStat{UserID: userID, DLastCheck: models.NeverChecked}))

	return userID
}

// seedDatabase inserts a database with its quota row.
func seedDatabase(t *testing.T, db *sqlx.DB, name string) int64 {
	t.Helper()
	ctx := context.Background()

	databaseID, err := NewDatabaseWriteRepository(db, transaction.FromContext).Save(ctx, newTestDatabase(name))
	require.NoError(t, err)
	require.NoError(t, NewDBQuotaRepository(db, transaction.FromContext).Save(ctx, models.DBQuota{DatabaseID: databaseID, DCreated: testNow}))

	return databaseID
}

func countRows(t *testing.T, db *sqlx.DB, table string, column string, id int64) int {
	t.Helper()

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM "`+table+`" WHERE "`+column+`" = ?`, id))
	return n
}
