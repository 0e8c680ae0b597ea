package services

import (
	"context"
	"fmt"
	"time"

	"inventory-backend/internal/models"
	"inventory-backend/internal/store"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// maxPurgeDays bounds the purge window. Older cutoffs predate any stored
// attempt, and larger values overflow time.AddDate.
const maxPurgeDays = 100000

type UnlockAttemptService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewUnlockAttemptService(db *gorm.DB) *UnlockAttemptService {
	return &UnlockAttemptService{db: db, now: time.Now}
}

func (s *UnlockAttemptService) GetUnlockAttempts(ctx context.Context) ([]models.CabinetUnlockAttempt, error) {
	var attempts []models.CabinetUnlockAttempt
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		attempts, err = store.GetAllUnlockAttempts(tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list unlock attempts: %w", err)
	}
	return attempts, nil
}

func (s *UnlockAttemptService) GetUnlockAttemptsByCabinet(ctx context.Context, cabinetID string) ([]models.CabinetUnlockAttempt, error) {
	var attempts []models.CabinetUnlockAttempt
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		cabinet, err := store.GetCabinetByID(tx, cabinetID)
		if err != nil {
			return fmt.Errorf("get cabinet: %w", err)
		}
		if cabinet == nil {
			return notFound("Cabinet not found")
		}
		if attempts, err = store.GetUnlockAttemptsByCabinetID(tx, cabinetID); err != nil {
			return fmt.Errorf("list unlock attempts: %w", err)
		}
		return nil
	})
	return attempts, err
}

func (s *UnlockAttemptService) GetUnlockAttemptsByUser(ctx context.Context, uid string) ([]models.CabinetUnlockAttempt, error) {
	var attempts []models.CabinetUnlockAttempt
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		user, err := store.GetUserByUID(tx, uid)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if user == nil {
			return notFound("User not found")
		}
		if attempts, err = store.GetUnlockAttemptsByUserID(tx, uid); err != nil {
			return fmt.Errorf("list unlock attempts: %w", err)
		}
		return nil
	})
	return attempts, err
}

func (s *UnlockAttemptService) GetUnlockAttemptsByCabinetAndUser(ctx context.Context, cabinetID, uid string) ([]models.CabinetUnlockAttempt, error) {
	var attempts []models.CabinetUnlockAttempt
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		user, err := store.GetUserByUID(tx, uid)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		cabinet, err := store.GetCabinetByID(tx, cabinetID)
		if err != nil {
			return fmt.Errorf("get cabinet: %w", err)
		}
		if user == nil || cabinet == nil {
			return notFound("User or cabinet not found")
		}
		if attempts, err = store.GetUnlockAttemptsByCabinetAndUserID(tx, cabinetID, uid); err != nil {
			return fmt.Errorf("list unlock attempts: %w", err)
		}
		return nil
	})
	return attempts, err
}

func (s *UnlockAttemptService) CreateUnlockAttempt(ctx context.Context, req *models.UnlockAttemptCreateRequest) (*models.CabinetUnlockAttempt, error) {
	var attempt *models.CabinetUnlockAttempt
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		user, err := store.GetUserByUID(tx, req.UserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		cabinet, err := store.GetCabinetByID(tx, req.CabinetID)
		if err != nil {
			return fmt.Errorf("get cabinet: %w", err)
		}
		if user == nil || cabinet == nil {
			return notFound("User or cabinet not found")
		}

		if attempt, err = store.CreateUnlockAttempt(tx, req); err != nil {
			return fmt.Errorf("create unlock attempt: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"unlock_attempt_id": attempt.ID,
		"user_id":           attempt.UserID,
		"cabinet_id":        attempt.CabinetID,
		"granted":           attempt.Granted,
	}).Info("unlock attempt recorded")
	return attempt, nil
}

// PurgeUnlockAttempts deletes every attempt older than days and returns the
// number removed.
func (s *UnlockAttemptService) PurgeUnlockAttempts(ctx context.Context, days int) (int64, error) {
	if days < 0 {
		return 0, fmt.Errorf("days must not be negative, got %d", days)
	}

	if days > maxPurgeDays {
		return 0, nil
	}

	now := s.now()
	cutoff := now.AddDate(0, 0, -days)
	if cutoff.After(now) {
		return 0, nil
	}

	var deleted int64
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		deleted, err = store.DeleteUnlockAttemptsOlderThan(tx, cutoff)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("purge unlock attempts: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"days":    days,
		"deleted": deleted,
	}).Info("unlock attempts purged")
	return deleted, nil
}
