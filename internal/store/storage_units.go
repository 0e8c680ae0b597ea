package store

import (
	"inventory-backend/internal/models"

	"gorm.io/gorm"
)

func GetStorageUnitByID(db *gorm.DB, id uint) (*models.StorageUnit, error) {
	return first[models.StorageUnit](db, "id = ?", id)
}

func GetStorageUnitsByCabinetID(db *gorm.DB, cabinetID string) ([]models.StorageUnit, error) {
	return find[models.StorageUnit](db, "id", "cabinet_id = ?", cabinetID)
}

func CreateStorageUnit(db *gorm.DB, req *models.StorageUnitCreateRequest) (*models.StorageUnit, error) {
	itemID := req.ItemID
	unit := models.StorageUnit{
		ID:        req.ID,
		State:     req.State,
		Verified:  req.Verified,
		ItemID:    &itemID,
		CabinetID: req.CabinetID,
	}
	if err := db.Create(&unit).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func DeleteStorageUnit(db *gorm.DB, id uint) error {
	return db.Where("id = ?", id).Delete(&models.StorageUnit{}).Error
}
