package services

import (
	"context"
	"fmt"

	"inventory-backend/internal/models"
	"inventory-backend/internal/store"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ItemService struct {
	db *gorm.DB
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{db: db}
}

func (s *ItemService) GetItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		items, err = store.GetAllItems(tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (s *ItemService) GetItemsByCategory(ctx context.Context, categoryID uint) ([]models.Item, error) {
	var items []models.Item
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		category, err := store.GetCategoryByID(tx, categoryID)
		if err != nil {
			return fmt.Errorf("get category: %w", err)
		}
		if category == nil {
			return notFound("Category not found")
		}
		if items, err = store.GetItemsByCategoryID(tx, categoryID); err != nil {
			return fmt.Errorf("list items: %w", err)
		}
		return nil
	})
	return items, err
}

func (s *ItemService) GetItem(ctx context.Context, id uint) (*models.Item, error) {
	var item *models.Item
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		if item, err = store.GetItemByID(tx, id); err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if item == nil {
			return notFound("Item not found")
		}
		return nil
	})
	return item, err
}

func (s *ItemService) CreateItem(ctx context.Context, req *models.ItemCreateRequest) (*models.Item, error) {
	var item *models.Item
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		if req.CategoryID != nil {
			category, err := store.GetCategoryByID(tx, *req.CategoryID)
			if err != nil {
				return fmt.Errorf("get category: %w", err)
			}
			if category == nil {
				return notFound("Category not found")
			}
		}

		existing, err := store.GetItemByTitle(tx, req.Title)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if existing != nil {
			return conflict("Item already exists")
		}

		if item, err = store.CreateItem(tx, req); err != nil {
			if isDuplicateKey(err) {
				return conflict("Item already exists")
			}
			return fmt.Errorf("create item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"item_id":     item.ID,
		"category_id": item.CategoryID,
	}).Info("item created")
	return item, nil
}

// DeleteItem removes the item and its order requests; storage units that
// held it are kept empty.
func (s *ItemService) DeleteItem(ctx context.Context, id uint) error {
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		item, err := store.GetItemByID(tx, id)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if item == nil {
			return notFound("Item not found")
		}
		if err := store.DeleteItem(tx, id); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("item_id", id).Info("item deleted")
	return nil
}
