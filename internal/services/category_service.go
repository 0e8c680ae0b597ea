package services

import (
	"context"
	"fmt"

	"inventory-backend/internal/models"
	"inventory-backend/internal/store"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) GetRootCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		categories, err = store.GetRootCategories(tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list root categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) GetSubCategories(ctx context.Context, parentID uint) ([]models.Category, error) {
	var categories []models.Category
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		parent, err := store.GetCategoryByID(tx, parentID)
		if err != nil {
			return fmt.Errorf("get category: %w", err)
		}
		if parent == nil {
			return notFound("Parent category not found")
		}
		if categories, err = store.GetSubCategories(tx, parentID); err != nil {
			return fmt.Errorf("list sub-categories: %w", err)
		}
		return nil
	})
	return categories, err
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var category *models.Category
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		if category, err = store.GetCategoryByID(tx, id); err != nil {
			return fmt.Errorf("get category: %w", err)
		}
		if category == nil {
			return notFound("Category not found")
		}
		return nil
	})
	return category, err
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *models.CategoryCreateRequest) (*models.Category, error) {
	var category *models.Category
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		// Parent must exist before the title is checked.
		if req.ParentID != nil {
			parent, err := store.GetCategoryByID(tx, *req.ParentID)
			if err != nil {
				return fmt.Errorf("get category: %w", err)
			}
			if parent == nil {
				return notFound("Parent category not found")
			}
		}

		existing, err := store.GetCategoryByTitle(tx, req.Title)
		if err != nil {
			return fmt.Errorf("get category: %w", err)
		}
		if existing != nil {
			return conflict("Category already exists")
		}

		if category, err = store.CreateCategory(tx, req); err != nil {
			if isDuplicateKey(err) {
				return conflict("Category already exists")
			}
			return fmt.Errorf("create category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"category_id": category.ID,
		"parent_id":   category.ParentID,
	}).Info("category created")
	return category, nil
}

// DeleteCategory removes the category. Its sub-categories become roots and
// its items become uncategorized.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		category, err := store.GetCategoryByID(tx, id)
		if err != nil {
			return fmt.Errorf("get category: %w", err)
		}
		if category == nil {
			return notFound("Category not found")
		}
		if err := store.DeleteCategory(tx, id); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("category_id", id).Info("category deleted")
	return nil
}
