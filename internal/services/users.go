package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/quota-ledger/internal/logger"
	"github.com/sbilibin2017/quota-ledger/internal/models"
)

// CreateUser registers a user together with its default quota and an empty
// stat row. Either all three rows are stored or none is.
func (s *LedgerService) CreateUser(ctx context.Context, username, secret, name, email string) (*models.User, error) {
	if username == "" || secret == "" {
		return nil, errors.Wrap(models.ErrInvalidArgument, "username and secret are required")
	}

	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(secret), s.hashCost)
	if err != nil {
		logger.Log.Errorw("failed to hash secret", "username", username, "err", err)
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, errors.Wrap(models.ErrInvalidArgument, err.Error())
		}
		return nil, err
	}

	now := s.now()
	user := &models.User{
		Username: username,
		Password: string(hashedSecret),
		Name:     name,
		Email:    email,
		UL:       models.DefaultUserLevel,
		DCreated: now,
		DSignup:  now,
		BEnabled: true,
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		userID, err := s.repos.UserWriter.Save(ctx, user)
		if err != nil {
			return err
		}
		user.UserID = userID

		if err := s.repos.UserQuotas.Save(ctx, models.NewUserQuota(userID, now)); err != nil {
			return err
		}
		return s.repos.UserStats.Save(ctx, models.UserStat{UserID: userID, DLastCheck: models.NeverChecked})
	})
	if err != nil {
		logger.Log.Errorw("failed to create user", "username", username, "err", err)
		return nil, err
	}

	s.publish(ctx, models.LedgerEvent{
		Type:    models.EventUserCreated,
		UserID:  user.UserID,
		Payload: map[string]any{"username": user.Username},
	})

	return user, nil
}

// GetUser looks a user up by id or username. A positive integer is tried as
// an id first and then as a username.
func (s *LedgerService) GetUser(ctx context.Context, idOrUsername string) (*models.User, error) {
	if userID, ok := parseID(idOrUsername); ok {
		user, err := s.repos.UserReader.GetByID(ctx, userID)
		if !errors.Is(err, models.ErrNotFound) {
			return user, err
		}
	}
	return s.repos.UserReader.GetByUsername(ctx, idOrUsername)
}

// GetUserByID returns the user with the given id.
func (s *LedgerService) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	return s.repos.UserReader.GetByID(ctx, userID)
}

// GetUserByUsername returns the user with the given username.
func (s *LedgerService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.repos.UserReader.GetByUsername(ctx, username)
}

// GetUserQuota returns the limits of a user.
func (s *LedgerService) GetUserQuota(ctx context.Context, userID int64) (*models.UserQuota, error) {
	return s.repos.UserQuotas.GetByUserID(ctx, userID)
}

// GetUserStat returns the cached aggregates of a user.
func (s *LedgerService) GetUserStat(ctx context.Context, userID int64) (*models.UserStat, error) {
	return s.repos.UserStats.GetByUserID(ctx, userID)
}

// UpdateUserStat overwrites the cached aggregates of a user.
func (s *LedgerService) UpdateUserStat(ctx context.Context, userID, nDatabases, nBytes int64, checkedAt time.Time) error {
	if nDatabases < 0 || nBytes < 0 {
		return errors.Wrapf(models.ErrInvalidUsage, "nDatabases=%d nBytes=%d", nDatabases, nBytes)
	}

	stat := models.UserStat{UserID: userID, NDatabases: nDatabases, NBytes: nBytes, DLastCheck: checkedAt.UTC()}
	if err := s.repos.UserStats.Update(ctx, stat); err != nil {
		logger.Log.Errorw("failed to update user stat", "user_id", userID, "err", err)
		return err
	}

	s.invalidate(ctx, userID)
	s.publish(ctx, models.LedgerEvent{Type: models.EventUserStatUpdated, UserID: userID, Payload: stat})
	return nil
}

// SetUserEnabled flips the enabled flag of a user.
func (s *LedgerService) SetUserEnabled(ctx context.Context, userID int64, enabled bool) error {
	if err := s.repos.UserWriter.SetEnabled(ctx, userID, enabled); err != nil {
		logger.Log.Errorw("failed to set user enabled", "user_id", userID, "enabled", enabled, "err", err)
		return err
	}

	s.invalidate(ctx, userID)
	s.publish(ctx, models.LedgerEvent{Type: models.EventUserEnabled, UserID: userID, Payload: map[string]any{"enabled": enabled}})
	return nil
}

// DeleteUser removes a user. Its quota, stat and ownership links are removed
// with it; the databases it owned stay behind without an owner.
func (s *LedgerService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.repos.UserWriter.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", userID, "err", err)
		return err
	}

	s.invalidate(ctx, userID)
	s.publish(ctx, models.LedgerEvent{Type: models.EventUserDeleted, UserID: userID})
	return nil
}

// ListOwnedDatabases returns the databases owned by a user.
func (s *LedgerService) ListOwnedDatabases(ctx context.Context, userID int64) ([]models.Database, error) {
	if _, err := s.repos.UserReader.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repos.DatabaseReader.ListByOwner(ctx, userID)
}

// GetAccount returns a user with its quota, stat and owned databases.
func (s *LedgerService) GetAccount(ctx context.Context, idOrUsername string) (*models.Account, error) {
	user, err := s.GetUser(ctx, idOrUsername)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, user.UserID)
		if err != nil {
			logger.Log.Warnw("account cache unavailable", "user_id", user.UserID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	generation := s.invalidations.Load()
	account := &models.Account{User: *user}
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		quota, err := s.repos.UserQuotas.GetByUserID(ctx, user.UserID)
		if err != nil {
			return err
		}
		stat, err := s.repos.UserStats.GetByUserID(ctx, user.UserID)
		if err != nil {
			return err
		}
		databases, err := s.repos.DatabaseReader.ListByOwner(ctx, user.UserID)
		if err != nil {
			return err
		}

		account.Quota = *quota
		account.Stat = *stat
		account.Databases = databases
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to load account", "user_id", user.UserID, "err", err)
		return nil, err
	}

	// A write invalidated the cache while loading; the snapshot may predate it.
	if s.cache != nil && s.invalidations.Load() != generation {
		logger.Log.Debugw("account changed while loading, not caching", "user_id", user.UserID)
		return account, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, account); err != nil {
			logger.Log.Warnw("failed to cache account", "user_id", user.UserID, "error", err)
		}
	}

	return account, nil
}
