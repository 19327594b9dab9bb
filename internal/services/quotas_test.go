package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/quota-ledger/internal/models"
)

func TestLedgerService_SetQuota(t *testing.T) {
	svc, _ := newTestLedger(t, nil, nil, nil)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "alice", "secret", "Alice", "alice@example.com")
	require.NoError(t, err)
	database, err := svc.CreateDatabase(ctx, "foo")
	require.NoError(t, err)

	tests := []struct {
		name    string
		target  models.QuotaTarget
		soft    int64
		hard    int64
		wantErr error
	}{
		{"user", models.UserTarget(user.UserID), 1000, 2000, nil},
		{"database", models.DatabaseTarget(database.DatabaseID), 100, 500, nil},
		{"database soft above hard", models.DatabaseTarget(database.DatabaseID), 100, 50, models.ErrInvalidQuota},
		{"user negative", models.UserTarget(user.UserID), -1, 10, models.ErrInvalidQuota},
		{"missing user", models.UserTarget(999), 1, 2, models.ErrNotFound},
		{"missing database", models.DatabaseTarget(999), 1, 2, models.ErrNotFound},
		{"unknown target", models.QuotaTarget{Kind: "group", ID: 1}, 1, 2, models.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SetQuota(ctx, tt.target, tt.soft, tt.hard)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	userQuota, err := svc.GetUserQuota(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), userQuota.NBytesSoft)
	assert.Equal(t, int64(2000), userQuota.NBytesHard)
	assert.Equal(t, int64(models.DefaultUserDatabasesHard), userQuota.NDatabasesHard)

	// The rejected update left the stored database quota alone.
	dbQuota, err := svc.GetDatabaseQuota(ctx, database.DatabaseID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), dbQuota.NBytesSoft)
	assert.Equal(t, int64(500), dbQuota.NBytesHard)
}

func TestLedgerService_SetUserDatabaseLimit(t *testing.T) {
	svc, _ := newTestLedger(t, nil, nil, nil)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "bob", "secret", "Bob", "bob@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.SetUserDatabaseLimit(ctx, user.UserID, 5))

	quota, err := svc.GetUserQuota(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), quota.NDatabasesHard)
	assert.Equal(t, int64(models.DefaultUserBytesHard), quota.NBytesHard)

	assert.ErrorIs(t, svc.SetUserDatabaseLimit(ctx, user.UserID, -1), models.ErrInvalidQuota)
	assert.ErrorIs(t, svc.SetUserDatabaseLimit(ctx, 999, 1), models.ErrNotFound)
}

// failingLimitStore makes the database limit update of SetUserQuota fail.
type failingLimitStore struct {
	UserQuotaStore
}

func (failingLimitStore) UpdateDatabasesHard(ctx context.Context, userID, nDatabasesHard int64) error {
	return errors.New("disk full")
}

func TestLedgerService_SetUserQuota(t *testing.T) {
	svc, _ := newTestLedger(t, nil, nil, nil)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "carol", "secret", "Carol", "carol@example.com")
	require.NoError(t, err)

	limit := int64(3)
	negative := int64(-1)

	tests := []struct {
		name           string
		userID         int64
		soft           int64
		hard           int64
		nDatabasesHard *int64
		wantErr        error
	}{
		{"negative database limit", user.UserID, 1, 2, &negative, models.ErrInvalidQuota},
		{"soft above hard", user.UserID, 10, 5, &limit, models.ErrInvalidQuota},
		{"missing user", 999, 1, 2, &limit, models.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SetUserQuota(ctx, tt.userID, tt.soft, tt.hard, tt.nDatabasesHard)
			assert.ErrorIs(t, err, tt.wantErr)

			quota, err := svc.GetUserQuota(ctx, user.UserID)
			require.NoError(t, err)
			assert.Equal(t, int64(models.DefaultUserBytesSoft), quota.NBytesSoft)
			assert.Equal(t, int64(models.DefaultUserBytesHard), quota.NBytesHard)
			assert.Equal(t, int64(models.DefaultUserDatabasesHard), quota.NDatabasesHard)
		})
	}

	t.Run("bytes only", func(t *testing.T) {
		require.NoError(t, svc.SetUserQuota(ctx, user.UserID, 100, 200, nil))

		quota, err := svc.GetUserQuota(ctx, user.UserID)
		require.NoError(t, err)
		assert.Equal(t, int64(100), quota.NBytesSoft)
		assert.Equal(t, int64(200), quota.NBytesHard)
		assert.Equal(t, int64(models.DefaultUserDatabasesHard), quota.NDatabasesHard)
	})

	t.Run("bytes and database limit", func(t *testing.T) {
		require.NoError(t, svc.SetUserQuota(ctx, user.UserID, 300, 400, &limit))

		quota, err := svc.GetUserQuota(ctx, user.UserID)
		require.NoError(t, err)
		assert.Equal(t, int64(300), quota.NBytesSoft)
		assert.Equal(t, int64(400), quota.NBytesHard)
		assert.Equal(t, limit, quota.NDatabasesHard)
	})
}

func TestLedgerService_SetUserQuota_Atomic(t *testing.T) {
	svc, _ := newTestLedger(t, func(r Repositories) Repositories {
		r.UserQuotas = failingLimitStore{r.UserQuotas}
		return r
	}, nil, nil)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "dave", "secret", "Dave", "dave@example.com")
	require.NoError(t, err)

	limit := int64(3)
	assert.Error(t, svc.SetUserQuota(ctx, user.UserID, 1, 2, &limit))

	quota, err := svc.GetUserQuota(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(models.DefaultUserBytesSoft), quota.NBytesSoft)
	assert.Equal(t, int64(models.DefaultUserBytesHard), quota.NBytesHard)
}
