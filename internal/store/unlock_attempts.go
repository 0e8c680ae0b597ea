package store

import (
	"time"

	"inventory-backend/internal/models"

	"gorm.io/gorm"
)

func GetAllUnlockAttempts(db *gorm.DB) ([]models.CabinetUnlockAttempt, error) {
	return find[models.CabinetUnlockAttempt](db, "id", "")
}

func GetUnlockAttemptsByCabinetID(db *gorm.DB, cabinetID string) ([]models.CabinetUnlockAttempt, error) {
	return find[models.CabinetUnlockAttempt](db, "id", "cabinet_id = ?", cabinetID)
}

func GetUnlockAttemptsByUserID(db *gorm.DB, uid string) ([]models.CabinetUnlockAttempt, error) {
	return find[models.CabinetUnlockAttempt](db, "id", "user_id = ?", uid)
}

func GetUnlockAttemptsByCabinetAndUserID(db *gorm.DB, cabinetID, uid string) ([]models.CabinetUnlockAttempt, error) {
	return find[models.CabinetUnlockAttempt](db, "id", "cabinet_id = ? AND user_id = ?", cabinetID, uid)
}

func CreateUnlockAttempt(db *gorm.DB, req *models.UnlockAttemptCreateRequest) (*models.CabinetUnlockAttempt, error) {
	attempt := models.CabinetUnlockAttempt{
		Granted:   req.Granted,
		UserID:    req.UserID,
		CabinetID: req.CabinetID,
	}
	if err := db.Create(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

// DeleteUnlockAttemptsOlderThan purges attempts dated before cutoff and
// reports how many rows were removed.
func DeleteUnlockAttemptsOlderThan(db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.Where("date < ?", cutoff).Delete(&models.CabinetUnlockAttempt{})
	return result.RowsAffected, result.Error
}
