package services

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sbilibin2017/quota-ledger/internal/logger"
	"github.com/sbilibin2017/quota-ledger/internal/models"
)

// CreateDatabase provisions a database record together with an all-zero
// quota row in one transaction.
func (s *LedgerService) CreateDatabase(ctx context.Context, name string) (*models.Database, error) {
	if name == "" {
		return nil, errors.Wrap(models.ErrInvalidArgument, "database name is required")
	}

	now := s.now()
	database := &models.Database{
		Name:       name,
		DLastCheck: models.NeverChecked,
		DCreated:   now,
		BEnabled:   true,
	}

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		databaseID, err := s.repos.DatabaseWriter.Save(ctx, database)
		if err != nil {
			return err
		}
		database.DatabaseID = databaseID

		return s.repos.DBQuotas.Save(ctx, models.DBQuota{DatabaseID: databaseID, DCreated: now})
	})
	if err != nil {
		logger.Log.Errorw("failed to create database", "name", name, "err", err)
		return nil, err
	}

	s.publish(ctx, models.LedgerEvent{
		Type:       models.EventDatabaseCreated,
		DatabaseID: database.DatabaseID,
		Payload:    map[string]any{"name": database.Name},
	})

	return database, nil
}

// AssignOwner links a database to its owning user. A database has at most one
// owner; a second assignment fails with models.ErrAlreadyOwned.
func (s *LedgerService) AssignOwner(ctx context.Context, userID, databaseID int64, groupID *int64) (*models.DBOwner, error) {
	owner := &models.DBOwner{DatabaseID: databaseID, UserID: userID, GroupID: groupID}

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repos.UserReader.GetByID(ctx, userID); err != nil {
			return err
		}
		if _, err := s.repos.DatabaseReader.GetByID(ctx, databaseID); err != nil {
			return err
		}

		existing, err := s.repos.DBOwners.GetByDatabaseID(ctx, databaseID)
		switch {
		case err == nil:
			return errors.Wrapf(models.ErrAlreadyOwned, "database %d is owned by user %d", databaseID, existing.UserID)
		case !errors.Is(err, models.ErrNotFound):
			return err
		}

		if err := s.repos.DBOwners.Save(ctx, *owner); err != nil {
			// Lost a race with a concurrent assignment.
			if errors.Is(err, models.ErrDuplicateKey) {
				return errors.Wrapf(models.ErrAlreadyOwned, "database %d", databaseID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to assign owner", "user_id", userID, "database_id", databaseID, "err", err)
		return nil, err
	}

	s.invalidate(ctx, userID)
	s.publish(ctx, models.LedgerEvent{
		Type:       models.EventOwnerAssigned,
		UserID:     userID,
		DatabaseID: databaseID,
		Payload:    owner,
	})

	return owner, nil
}

// GetDatabase looks a database up by id or name. A positive integer is tried
// as an id first and then as a name.
func (s *LedgerService) GetDatabase(ctx context.Context, idOrName string) (*models.Database, error) {
	if databaseID, ok := parseID(idOrName); ok {
		database, err := s.repos.DatabaseReader.GetByID(ctx, databaseID)
		if !errors.Is(err, models.ErrNotFound) {
			return database, err
		}
	}
	return s.repos.DatabaseReader.GetByName(ctx, idOrName)
}

// GetDatabaseByID returns the database with the given id.
func (s *LedgerService) GetDatabaseByID(ctx context.Context, databaseID int64) (*models.Database, error) {
	return s.repos.DatabaseReader.GetByID(ctx, databaseID)
}

// GetDatabaseByName returns the database with the given name.
func (s *LedgerService) GetDatabaseByName(ctx context.Context, name string) (*models.Database, error) {
	return s.repos.DatabaseReader.GetByName(ctx, name)
}

// GetDatabaseQuota returns the byte ceilings of a database.
func (s *LedgerService) GetDatabaseQuota(ctx context.Context, databaseID int64) (*models.DBQuota, error) {
	return s.repos.DBQuotas.GetByDatabaseID(ctx, databaseID)
}

// GetDatabaseOwner returns the ownership link of a database.
func (s *LedgerService) GetDatabaseOwner(ctx context.Context, databaseID int64) (*models.DBOwner, error) {
	return s.repos.DBOwners.GetByDatabaseID(ctx, databaseID)
}

// UpdateUsage records the measured size of a database.
func (s *LedgerService) UpdateUsage(ctx context.Context, databaseID, nBytes int64, checkedAt time.Time) error {
	if nBytes < 0 {
		return errors.Wrapf(models.ErrInvalidUsage, "nBytes=%d", nBytes)
	}

	var ownerID int64
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.repos.DatabaseWriter.UpdateUsage(ctx, databaseID, nBytes, checkedAt.UTC()); err != nil {
			return err
		}
		var err error
		ownerID, err = s.ownerOf(ctx, databaseID)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to update usage", "database_id", databaseID, "n_bytes", nBytes, "err", err)
		return err
	}

	s.invalidate(ctx, ownerID)
	s.publish(ctx, models.LedgerEvent{
		Type:       models.EventUsageUpdated,
		DatabaseID: databaseID,
		Payload:    map[string]any{"n_bytes": nBytes, "checked_at": checkedAt.UTC()},
	})
	return nil
}

// SetDatabaseEnabled flips the enabled flag of a database.
func (s *LedgerService) SetDatabaseEnabled(ctx context.Context, databaseID int64, enabled bool) error {
	var ownerID int64
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.repos.DatabaseWriter.SetEnabled(ctx, databaseID, enabled); err != nil {
			return err
		}
		var err error
		ownerID, err = s.ownerOf(ctx, databaseID)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to set database enabled", "database_id", databaseID, "enabled", enabled, "err", err)
		return err
	}

	s.invalidate(ctx, ownerID)
	s.publish(ctx, models.LedgerEvent{
		Type:       models.EventDatabaseEnabled,
		DatabaseID: databaseID,
		Payload:    map[string]any{"enabled": enabled},
	})
	return nil
}

// DeleteDatabase removes a database along with its quota and ownership link.
func (s *LedgerService) DeleteDatabase(ctx context.Context, databaseID int64) error {
	var ownerID int64
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		if ownerID, err = s.ownerOf(ctx, databaseID); err != nil {
			return err
		}
		return s.repos.DatabaseWriter.Delete(ctx, databaseID)
	})
	if err != nil {
		logger.Log.Errorw("failed to delete database", "database_id", databaseID, "err", err)
		return err
	}

	s.invalidate(ctx, ownerID)
	s.publish(ctx, models.LedgerEvent{Type: models.EventDatabaseDeleted, DatabaseID: databaseID, UserID: ownerID})
	return nil
}
