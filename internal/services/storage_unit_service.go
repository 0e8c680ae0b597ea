package services

import (
	"context"
	"fmt"

	"inventory-backend/internal/models"
	"inventory-backend/internal/store"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type StorageUnitService struct {
	db *gorm.DB
}

func NewStorageUnitService(db *gorm.DB) *StorageUnitService {
	return &StorageUnitService{db: db}
}

func (s *StorageUnitService) GetStorageUnit(ctx context.Context, id uint) (*models.StorageUnit, error) {
	var unit *models.StorageUnit
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		if unit, err = store.GetStorageUnitByID(tx, id); err != nil {
			return fmt.Errorf("get storage unit: %w", err)
		}
		if unit == nil {
			return notFound("Storage unit not found")
		}
		return nil
	})
	return unit, err
}

func (s *StorageUnitService) GetStorageUnitsByCabinet(ctx context.Context, cabinetID string) ([]models.StorageUnit, error) {
	var units []models.StorageUnit
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		cabinet, err := store.GetCabinetByID(tx, cabinetID)
		if err != nil {
			return fmt.Errorf("get cabinet: %w", err)
		}
		if cabinet == nil {
			return notFound("Cabinet not found")
		}
		if units, err = store.GetStorageUnitsByCabinetID(tx, cabinetID); err != nil {
			return fmt.Errorf("list storage units: %w", err)
		}
		return nil
	})
	return units, err
}

// CreateStorageUnit registers a unit under the caller-supplied id.
func (s *StorageUnitService) CreateStorageUnit(ctx context.Context, req *models.StorageUnitCreateRequest) (*models.StorageUnit, error) {
	var unit *models.StorageUnit
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		item, err := store.GetItemByID(tx, req.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if item == nil {
			return notFound("Item not found")
		}

		if req.CabinetID != nil {
			cabinet, err := store.GetCabinetByID(tx, *req.CabinetID)
			if err != nil {
				return fmt.Errorf("get cabinet: %w", err)
			}
			if cabinet == nil {
				return notFound("Cabinet not found")
			}
		}

		existing, err := store.GetStorageUnitByID(tx, req.ID)
		if err != nil {
			return fmt.Errorf("get storage unit: %w", err)
		}
		if existing != nil {
			return conflict("Storage unit ID already assigned")
		}

		if unit, err = store.CreateStorageUnit(tx, req); err != nil {
			if isDuplicateKey(err) {
				return conflict("Storage unit ID already assigned")
			}
			return fmt.Errorf("create storage unit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"storage_unit_id": unit.ID,
		"item_id":         unit.ItemID,
		"cabinet_id":      unit.CabinetID,
	}).Info("storage unit created")
	return unit, nil
}

func (s *StorageUnitService) DeleteStorageUnit(ctx context.Context, id uint) error {
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		unit, err := store.GetStorageUnitByID(tx, id)
		if err != nil {
			return fmt.Errorf("get storage unit: %w", err)
		}
		if unit == nil {
			return notFound("Storage unit not found")
		}
		if err := store.DeleteStorageUnit(tx, id); err != nil {
			return fmt.Errorf("delete storage unit: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("storage_unit_id", id).Info("storage unit deleted")
	return nil
}
