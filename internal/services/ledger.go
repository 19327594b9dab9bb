package services

import (
	"context"
	"encoding/json"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/quota-ledger/internal/logger"
	"github.com/sbilibin2017/quota-ledger/internal/models"
)

//go:generate mockgen -destination=mock_ledger.go -package=services github.com/sbilibin2017/quota-ledger/internal/services AccountCache,KafkaWriter

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.User) (int64, error)
	SetEnabled(ctx context.Context, userID int64, enabled bool) error
	Delete(ctx context.Context, userID int64) error
}

// UserQuotaStore persists per-user limits.
type UserQuotaStore interface {
	Save(ctx context.Context, quota models.UserQuota) error
	GetByUserID(ctx context.Context, userID int64) (*models.UserQuota, error)
	UpdateBytes(ctx context.Context, userID, soft, hard int64) error
	UpdateDatabasesHard(ctx context.Context, userID, nDatabasesHard int64) error
}

// UserStatStore persists cached per-user aggregates.
type UserStatStore interface {
	Save(ctx context.Context, stat models.UserStat) error
	GetByUserID(ctx context.Context, userID int64) (*models.UserStat, error)
	Update(ctx context.Context, stat models.UserStat) error
}

// DatabaseReader defines read-only operations for databases.
type DatabaseReader interface {
	GetByID(ctx context.Context, databaseID int64) (*models.Database, error)
	GetByName(ctx context.Context, name string) (*models.Database, error)
	ListByOwner(ctx context.Context, userID int64) ([]models.Database, error)
}

// DatabaseWriter defines write operations for databases.
type DatabaseWriter interface {
	Save(ctx context.Context, database *models.Database) (int64, error)
	UpdateUsage(ctx context.Context, databaseID, nBytes int64, checkedAt time.Time) error
	SetEnabled(ctx context.Context, databaseID int64, enabled bool) error
	Delete(ctx context.Context, databaseID int64) error
}

// DBQuotaStore persists per-database byte ceilings.
type DBQuotaStore interface {
	Save(ctx context.Context, quota models.DBQuota) error
	GetByDatabaseID(ctx context.Context, databaseID int64) (*models.DBQuota, error)
	UpdateBytes(ctx context.Context, databaseID, soft, hard int64) error
}

// DBOwnerStore persists ownership links.
type DBOwnerStore interface {
	Save(ctx context.Context, owner models.DBOwner) error
	GetByDatabaseID(ctx context.Context, databaseID int64) (*models.DBOwner, error)
}

// Transactor runs fn inside one database transaction.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// AccountCache caches account snapshots. Get returns (nil, nil) on a miss.
type AccountCache interface {
	Get(ctx context.Context, userID int64) (*models.Account, error)
	Set(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, userID int64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Repositories bundles the stores the ledger writes through.
type Repositories struct {
	UserReader     UserReader
	UserWriter     UserWriter
	UserQuotas     UserQuotaStore
	UserStats      UserStatStore
	DatabaseReader DatabaseReader
	DatabaseWriter DatabaseWriter
	DBQuotas       DBQuotaStore
	DBOwners       DBOwnerStore
}

// LedgerService implements the quota ledger operations.
type LedgerService struct {
	repos       Repositories
	tx          Transactor
	cache       AccountCache
	kafkaWriter KafkaWriter

	// invalidations counts cache invalidations; GetAccount skips caching a
	// snapshot loaded while it moved.
	invalidations atomic.Uint64

	now      func() time.Time
	hashCost int
}

// NewLedgerService creates a new LedgerService. cache and kafkaWriter may be nil.
func NewLedgerService(repos Repositories, tx Transactor, cache AccountCache, kafkaWriter KafkaWriter) *LedgerService {
	return &LedgerService{
		repos:       repos,
		tx:          tx,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		now:         func() time.Time { return time.Now().UTC() },
		hashCost:    bcrypt.DefaultCost,
	}
}

// publish writes a ledger event to Kafka. Failures are logged, never returned:
// the change is already committed.
func (s *LedgerService) publish(ctx context.Context, event models.LedgerEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", event.Type)
		return
	}

	event.EventID = uuid.NewString()
	event.Timestamp = s.now().Unix()

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal ledger event", "event_id", event.EventID, "error", err)
		return
	}

	// Events of one entity share a key and therefore a partition.
	key := "user:" + strconv.FormatInt(event.UserID, 10)
	if event.UserID == 0 {
		key = "database:" + strconv.FormatInt(event.DatabaseID, 10)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish ledger event", "event_id", event.EventID, "type", event.Type, "error", err)
	} else {
		logger.Log.Infow("Ledger event published", "event_id", event.EventID, "type", event.Type)
	}
}

// invalidate drops the cached account of userID.
func (s *LedgerService) invalidate(ctx context.Context, userID int64) {
	if s.cache == nil || userID == 0 {
		return
	}
	s.invalidations.Add(1)
	if err := s.cache.Delete(ctx, userID); err != nil {
		logger.Log.Warnw("failed to invalidate cached account", "user_id", userID, "error", err)
	}
}

// ownerOf returns the owning user id of a database, or 0 when it has none.
func (s *LedgerService) ownerOf(ctx context.Context, databaseID int64) (int64, error) {
	owner, err := s.repos.DBOwners.GetByDatabaseID(ctx, databaseID)
	if errors.Is(err, models.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return owner.UserID, nil
}

// parseID reports whether ref is a positive integer id.
func parseID(ref string) (int64, bool) {
	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
