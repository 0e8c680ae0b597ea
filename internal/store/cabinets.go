package store

import (
	"inventory-backend/internal/models"

	"gorm.io/gorm"
)

func GetAllCabinets(db *gorm.DB) ([]models.Cabinet, error) {
	return find[models.Cabinet](db, "id", "")
}

func GetCabinetByID(db *gorm.DB, id string) (*models.Cabinet, error) {
	return first[models.Cabinet](db, "id = ?", id)
}

func CreateCabinet(db *gorm.DB, req *models.CabinetCreateRequest) (*models.Cabinet, error) {
	cabinet := models.Cabinet{
		ID:          req.ID,
		Description: req.Description,
	}
	if err := db.Create(&cabinet).Error; err != nil {
		return nil, err
	}
	return &cabinet, nil
}

// DeleteCabinet drops the cabinet's unlock attempts and detaches its storage
// units, which are kept.
func DeleteCabinet(db *gorm.DB, id string) error {
	if err := db.Where("cabinet_id = ?", id).Delete(&models.CabinetUnlockAttempt{}).Error; err != nil {
		return err
	}
	if err := db.Model(&models.StorageUnit{}).Where("cabinet_id = ?", id).Update("cabinet_id", nil).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&models.Cabinet{}).Error
}
