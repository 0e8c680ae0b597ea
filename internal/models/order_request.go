package models

import "time"

// OrderRequest is a user's request to obtain an item. State is owned by the
// caller and stored as-is.
type OrderRequest struct {
	ID     uint      `json:"id" gorm:"primaryKey"`
	Date   time.Time `json:"date" gorm:"autoCreateTime;not null"`
	State  int       `json:"state" gorm:"not null;default:0;index"`
	ItemID uint      `json:"item_id" gorm:"not null;index"`
	UserID string    `json:"user_id" gorm:"size:11;not null;index"`
}

type OrderRequestCreateRequest struct {
	ItemID uint   `json:"item_id" validate:"required"`
	UserID string `json:"user_id" validate:"required,notblank,max=11"`
}
