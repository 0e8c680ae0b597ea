package store

import (
	"inventory-backend/internal/models"

	"gorm.io/gorm"
)

func GetCategoryByID(db *gorm.DB, id uint) (*models.Category, error) {
	return first[models.Category](db, "id = ?", id)
}

func GetCategoryByTitle(db *gorm.DB, title string) (*models.Category, error) {
	return first[models.Category](db, "title = ?", title)
}

func GetRootCategories(db *gorm.DB) ([]models.Category, error) {
	return find[models.Category](db, "id", "parent_id IS NULL")
}

func GetSubCategories(db *gorm.DB, parentID uint) ([]models.Category, error) {
	return find[models.Category](db, "id", "parent_id = ?", parentID)
}

func CreateCategory(db *gorm.DB, req *models.CategoryCreateRequest) (*models.Category, error) {
	category := models.Category{
		Title:       req.Title,
		Description: req.Description,
		ParentID:    req.ParentID,
	}
	if err := db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory promotes the category's children to roots and uncategorizes
// its items before removing it.
func DeleteCategory(db *gorm.DB, id uint) error {
	if err := db.Model(&models.Category{}).Where("parent_id = ?", id).Update("parent_id", nil).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Item{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&models.Category{}).Error
}
