package store

import (
	"inventory-backend/internal/models"

	"gorm.io/gorm"
)

func GetAllOrderRequests(db *gorm.DB) ([]models.OrderRequest, error) {
	return find[models.OrderRequest](db, "id", "")
}

func GetOrderRequestByID(db *gorm.DB, id uint) (*models.OrderRequest, error) {
	return first[models.OrderRequest](db, "id = ?", id)
}

func GetOrderRequestsByItemID(db *gorm.DB, itemID uint) ([]models.OrderRequest, error) {
	return find[models.OrderRequest](db, "id", "item_id = ?", itemID)
}

func GetOrderRequestsByUserID(db *gorm.DB, uid string) ([]models.OrderRequest, error) {
	return find[models.OrderRequest](db, "id", "user_id = ?", uid)
}

func GetOrderRequestsByState(db *gorm.DB, state int) ([]models.OrderRequest, error) {
	return find[models.OrderRequest](db, "id", "state = ?", state)
}

func GetOrderRequestByItemAndUserID(db *gorm.DB, itemID uint, uid string) (*models.OrderRequest, error) {
	return first[models.OrderRequest](db, "item_id = ? AND user_id = ?", itemID, uid)
}

func CreateOrderRequest(db *gorm.DB, req *models.OrderRequestCreateRequest) (*models.OrderRequest, error) {
	orderRequest := models.OrderRequest{
		ItemID: req.ItemID,
		UserID: req.UserID,
	}
	if err := db.Create(&orderRequest).Error; err != nil {
		return nil, err
	}
	return &orderRequest, nil
}

func DeleteOrderRequest(db *gorm.DB, id uint) error {
	return db.Where("id = ?", id).Delete(&models.OrderRequest{}).Error
}
