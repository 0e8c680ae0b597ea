package services

import (
	"context"
	"fmt"

	"inventory-backend/internal/models"
	"inventory-backend/internal/store"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CabinetService struct {
	db *gorm.DB
}

func NewCabinetService(db *gorm.DB) *CabinetService {
	return &CabinetService{db: db}
}

func (s *CabinetService) GetCabinets(ctx context.Context) ([]models.Cabinet, error) {
	var cabinets []models.Cabinet
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		cabinets, err = store.GetAllCabinets(tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list cabinets: %w", err)
	}
	return cabinets, nil
}

func (s *CabinetService) GetCabinet(ctx context.Context, id string) (*models.Cabinet, error) {
	var cabinet *models.Cabinet
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		if cabinet, err = store.GetCabinetByID(tx, id); err != nil {
			return fmt.Errorf("get cabinet: %w", err)
		}
		if cabinet == nil {
			return notFound("Cabinet not found")
		}
		return nil
	})
	return cabinet, err
}

func (s *CabinetService) CreateCabinet(ctx context.Context, req *models.CabinetCreateRequest) (*models.Cabinet, error) {
	var cabinet *models.Cabinet
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		existing, err := store.GetCabinetByID(tx, req.ID)
		if err != nil {
			return fmt.Errorf("get cabinet: %w", err)
		}
		if existing != nil {
			return conflict("Cabinet already exists")
		}

		if cabinet, err = store.CreateCabinet(tx, req); err != nil {
			if isDuplicateKey(err) {
				return conflict("Cabinet already exists")
			}
			return fmt.Errorf("create cabinet: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("cabinet_id", cabinet.ID).Info("cabinet created")
	return cabinet, nil
}

func (s *CabinetService) DeleteCabinet(ctx context.Context, id string) error {
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		cabinet, err := store.GetCabinetByID(tx, id)
		if err != nil {
			return fmt.Errorf("get cabinet: %w", err)
		}
		if cabinet == nil {
			return notFound("Cabinet not found")
		}
		if err := store.DeleteCabinet(tx, id); err != nil {
			return fmt.Errorf("delete cabinet: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("cabinet_id", id).Info("cabinet deleted")
	return nil
}
