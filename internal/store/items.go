package store

import (
	"inventory-backend/internal/models"

	"gorm.io/gorm"
)

func GetAllItems(db *gorm.DB) ([]models.Item, error) {
	return find[models.Item](db, "id", "")
}

func GetItemByID(db *gorm.DB, id uint) (*models.Item, error) {
	return first[models.Item](db, "id = ?", id)
}

func GetItemByTitle(db *gorm.DB, title string) (*models.Item, error) {
	return first[models.Item](db, "title = ?", title)
}

func GetItemsByCategoryID(db *gorm.DB, categoryID uint) ([]models.Item, error) {
	return find[models.Item](db, "id", "category_id = ?", categoryID)
}

func CreateItem(db *gorm.DB, req *models.ItemCreateRequest) (*models.Item, error) {
	item := models.Item{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Link:        req.Link,
		CategoryID:  req.CategoryID,
	}
	if err := db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem drops the item's order requests and empties the storage units
// holding it.
func DeleteItem(db *gorm.DB, id uint) error {
	if err := db.Where("item_id = ?", id).Delete(&models.OrderRequest{}).Error; err != nil {
		return err
	}
	if err := db.Model(&models.StorageUnit{}).Where("item_id = ?", id).Update("item_id", nil).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&models.Item{}).Error
}
