package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/quota-ledger/internal/logger"
	"github.com/sbilibin2017/quota-ledger/internal/models"
)

// AccountCacheRepository caches account snapshots in Redis
type AccountCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached accounts
}

// NewAccountCacheRepository creates a new repository instance with optional TTL
func NewAccountCacheRepository(client *redis.Client, expiration time.Duration) *AccountCacheRepository {
	return &AccountCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func accountKey(userID int64) string {
	return fmt.Sprintf("account:%d", userID)
}

// Get returns the cached account of a user. A miss returns (nil, nil).
func (r *AccountCacheRepository) Get(ctx context.Context, userID int64) (*models.Account, error) {
	key := accountKey(userID)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("account cache",
			"key", key,
			"result", "miss",
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var account models.Account
	if err := json.Unmarshal(val, &account); err != nil {
		logger.Log.Infow("account cache",
			"key", key,
			"result", "corrupt",
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("account cache",
		"key", key,
		"result", "hit",
		"error", nil,
	)

	return &account, nil
}

// Set caches an account with expiration
func (r *AccountCacheRepository) Set(ctx context.Context, account *models.Account) error {
	key := accountKey(account.User.UserID)

	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("account cache",
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Delete drops the cached account of a user
func (r *AccountCacheRepository) Delete(ctx context.Context, userID int64) error {
	key := accountKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("account cache",
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
