package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/quota-ledger/internal/models"
	"github.com/sbilibin2017/quota-ledger/internal/transaction"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db := setupSQLite(t)
	repo := NewUserWriteRepository(db, transaction.FromContext)
	ctx := context.Background()

	userID, err := repo.Save(ctx, newTestUser("alice"))
	require.NoError(t, err)
	assert.Positive(t, userID)

	var user struct {
		Username string `db:"Username"`
		Password string `db:"Password"`
		Email    string `db:"Email"`
	}
	err = db.Get(&user, `SELECT "Username", "Password", "Email" FROM "User" WHERE "UserId" = ?`, userID)
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hash-alice", user.Password)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUserWriteRepository_SaveDuplicate(t *testing.T) {
	db := setupSQLite(t)
	repo := NewUserWriteRepository(db, transaction.FromContext)
	ctx := context.Background()

	_, err := repo.Save(ctx, newTestUser("alice"))
	require.NoError(t, err)

	_, err = repo.Save(ctx, newTestUser("alice"))
	assert.ErrorIs(t, err, models.ErrDuplicateKey)
}

func TestUserReadRepository_Get(t *testing.T) {
	db := setupSQLite(t)
	userID := seedUser(t, db, "charlie")
	seedUser(t, db, "dave")

	repo := NewUserReadRepository(db, transaction.FromContext)
	ctx := context.Background()

	t.Run("ByID", func(t *testing.T) {
		user, err := repo.GetByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "charlie", user.Username)
		assert.Equal(t, int16(models.DefaultUserLevel), user.UL)
		assert.True(t, user.BEnabled)
		assert.True(t, testNow.Equal(user.DCreated))
	})

	t.Run("ByUsername", func(t *testing.T) {
		user, err := repo.GetByUsername(ctx, "dave")
		require.NoError(t, err)
		assert.Equal(t, "dave", user.Username)
		assert.Equal(t, "Name dave", user.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := repo.GetByUsername(ctx, "nonexistent")
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, user)

		user, err = repo.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, user)
	})
}

func TestUserWriteRepository_SetEnabled(t *testing.T) {
	db := setupSQLite(t)
	userID := seedUser(t, db, "erin")
	repo := NewUserWriteRepository(db, transaction.FromContext)
	ctx := context.Background()

	require.NoError(t, repo.SetEnabled(ctx, userID, false))

	user, err := NewUserReadRepository(db, transaction.FromContext).GetByID(ctx, userID)
	require.NoError(t, err)
	assert.False(t, user.BEnabled)

	assert.ErrorIs(t, repo.SetEnabled(ctx, 9999, true), models.ErrNotFound)
}

func TestUserWriteRepository_DeleteCascades(t *testing.T) {
	db := setupSQLite(t)
	userID := seedUser(t, db, "frank")
	databaseID := seedDatabase(t, db, "frank+db")
	ctx := context.Background()

	require.NoError(t, NewDBOwnerRepository(db, transaction.FromContext).Save(ctx, models.DBOwner{DatabaseID: databaseID, UserID: userID}))

	repo := NewUserWriteRepository(db, transaction.FromContext)
	require.NoError(t, repo.Delete(ctx, userID))

	assert.Zero(t, countRows(t, db, "User", "UserId", userID))
	assert.Zero(t, countRows(t, db, "UserQuota", "UserId", userID))
	assert.Zero(t, countRows(t, db, "UserStat", "UserId", userID))
	assert.Zero(t, countRows(t, db, "DBOwner", "UserId", userID))
	// The database itself survives, unowned.
	assert.Equal(t, 1, countRows(t, db, "DB", "DatabaseId", databaseID))

	assert.ErrorIs(t, repo.Delete(ctx, userID), models.ErrNotFound)
}

func TestUserQuotaRepository(t *testing.T) {
	db := setupSQLite(t)
	userID := seedUser(t, db, "grace")
	repo := NewUserQuotaRepository(db, transaction.FromContext)
	ctx := context.Background()

	quota, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(20), quota.NDatabasesHard)
	assert.Equal(t, int64(94371840), quota.NBytesSoft)
	assert.Equal(t, int64(104857600), quota.NBytesHard)

	require.NoError(t, repo.UpdateBytes(ctx, userID, 10, 20))
	require.NoError(t, repo.UpdateDatabasesHard(ctx, userID, 3))

	quota, err = repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), quota.NDatabasesHard)
	assert.Equal(t, int64(10), quota.NBytesSoft)
	assert.Equal(t, int64(20), quota.NBytesHard)

	assert.ErrorIs(t, repo.UpdateBytes(ctx, 9999, 1, 2), models.ErrNotFound)
	assert.ErrorIs(t, repo.Save(ctx, models.NewUserQuota(userID, testNow)), models.ErrDuplicateKey)
	assert.ErrorIs(t, repo.Save(ctx, models.NewUserQuota(9999, testNow)), models.ErrConstraintViolation)
	assert.ErrorIs(t, repo.UpdateBytes(ctx, userID, -1, 2), models.ErrConstraintViolation)
}

func TestUserStatRepository(t *testing.T) {
	db := setupSQLite(t)
	userID := seedUser(t, db, "heidi")
	repo := NewUserStatRepository(db, transaction.FromContext)
	ctx := context.Background()

	stat, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, stat.NDatabases)
	assert.Zero(t, stat.NBytes)
	assert.True(t, models.NeverChecked.Equal(stat.DLastCheck))

	require.NoError(t, repo.Update(ctx, models.UserStat{UserID: userID, NDatabases: 2, NBytes: 4096, DLastCheck: testNow}))

	stat, err = repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stat.NDatabases)
	assert.Equal(t, int64(4096), stat.NBytes)
	assert.True(t, testNow.Equal(stat.DLastCheck))

	assert.ErrorIs(t, repo.Update(ctx, models.UserStat{UserID: 9999}), models.ErrNotFound)
}
