package store

import (
	"inventory-backend/internal/models"

	"gorm.io/gorm"
)

func GetAllUsers(db *gorm.DB) ([]models.User, error) {
	return find[models.User](db, "uid", "")
}

func GetUserByUID(db *gorm.DB, uid string) (*models.User, error) {
	return first[models.User](db, "uid = ?", uid)
}

func CreateUser(db *gorm.DB, req *models.UserCreateRequest) (*models.User, error) {
	user := models.User{
		UID:       req.UID,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the user together with its order requests and unlock
// attempts.
func DeleteUser(db *gorm.DB, uid string) error {
	if err := db.Where("user_id = ?", uid).Delete(&models.OrderRequest{}).Error; err != nil {
		return err
	}
	if err := db.Where("user_id = ?", uid).Delete(&models.CabinetUnlockAttempt{}).Error; err != nil {
		return err
	}
	return db.Where("uid = ?", uid).Delete(&models.User{}).Error
}
