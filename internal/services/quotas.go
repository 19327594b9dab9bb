package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sbilibin2017/quota-ledger/internal/logger"
	"github.com/sbilibin2017/quota-ledger/internal/models"
)

// validateQuota rejects negative ceilings and a soft ceiling above the hard one.
func validateQuota(soft, hard int64) error {
	if soft < 0 || hard < 0 {
		return errors.Wrapf(models.ErrInvalidQuota, "negative ceiling soft=%d hard=%d", soft, hard)
	}
	if soft > hard {
		return errors.Wrapf(models.ErrInvalidQuota, "soft ceiling %d above hard ceiling %d", soft, hard)
	}
	return nil
}

// SetQuota overwrites the soft and hard byte ceilings of a user or database.
func (s *LedgerService) SetQuota(ctx context.Context, target models.QuotaTarget, soft, hard int64) error {
	if err := validateQuota(soft, hard); err != nil {
		return err
	}

	var ownerID int64
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		switch target.Kind {
		case models.QuotaTargetUser:
			ownerID = target.ID
			return s.repos.UserQuotas.UpdateBytes(ctx, target.ID, soft, hard)
		case models.QuotaTargetDatabase:
			if err := s.repos.DBQuotas.UpdateBytes(ctx, target.ID, soft, hard); err != nil {
				return err
			}
			var err error
			ownerID, err = s.ownerOf(ctx, target.ID)
			return err
		default:
			return errors.Wrapf(models.ErrInvalidArgument, "unknown quota target %q", target.Kind)
		}
	})
	if err != nil {
		logger.Log.Errorw("failed to set quota", "target", target.Kind, "id", target.ID, "err", err)
		return err
	}

	event := models.LedgerEvent{
		Type:    models.EventQuotaSet,
		Payload: map[string]any{"target": target.Kind, "n_bytes_soft": soft, "n_bytes_hard": hard},
	}
	if target.Kind == models.QuotaTargetUser {
		event.UserID = target.ID
	} else {
		event.DatabaseID = target.ID
	}

	s.invalidate(ctx, ownerID)
	s.publish(ctx, event)
	return nil
}

// SetUserQuota overwrites the byte ceilings of a user and, when nDatabasesHard
// is non-nil, its database limit. Both change together or not at all.
func (s *LedgerService) SetUserQuota(ctx context.Context, userID, soft, hard int64, nDatabasesHard *int64) error {
	if err := validateQuota(soft, hard); err != nil {
		return err
	}
	if nDatabasesHard != nil && *nDatabasesHard < 0 {
		return errors.Wrapf(models.ErrInvalidQuota, "negative database limit %d", *nDatabasesHard)
	}

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.repos.UserQuotas.UpdateBytes(ctx, userID, soft, hard); err != nil {
			return err
		}
		if nDatabasesHard == nil {
			return nil
		}
		return s.repos.UserQuotas.UpdateDatabasesHard(ctx, userID, *nDatabasesHard)
	})
	if err != nil {
		logger.Log.Errorw("failed to set user quota", "user_id", userID, "err", err)
		return err
	}

	payload := map[string]any{"target": models.QuotaTargetUser, "n_bytes_soft": soft, "n_bytes_hard": hard}
	if nDatabasesHard != nil {
		payload["n_databases_hard"] = *nDatabasesHard
	}

	s.invalidate(ctx, userID)
	s.publish(ctx, models.LedgerEvent{Type: models.EventQuotaSet, UserID: userID, Payload: payload})
	return nil
}

// SetUserDatabaseLimit overwrites how many databases a user may own.
func (s *LedgerService) SetUserDatabaseLimit(ctx context.Context, userID, nDatabasesHard int64) error {
	if nDatabasesHard < 0 {
		return errors.Wrapf(models.ErrInvalidQuota, "negative database limit %d", nDatabasesHard)
	}

	if err := s.repos.UserQuotas.UpdateDatabasesHard(ctx, userID, nDatabasesHard); err != nil {
		logger.Log.Errorw("failed to set database limit", "user_id", userID, "err", err)
		return err
	}

	s.invalidate(ctx, userID)
	s.publish(ctx, models.LedgerEvent{
		Type:    models.EventDatabaseLimitSet,
		UserID:  userID,
		Payload: map[string]any{"n_databases_hard": nDatabasesHard},
	})
	return nil
}
