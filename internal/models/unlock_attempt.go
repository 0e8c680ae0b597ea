package models

import "time"

type CabinetUnlockAttempt struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Date      time.Time `json:"date" gorm:"autoCreateTime;not null;index"`
	Granted   bool      `json:"granted" gorm:"not null;default:false"`
	UserID    string    `json:"user_id" gorm:"size:11;not null;index"`
	CabinetID string    `json:"cabinet_id" gorm:"not null;index"`
}

func (CabinetUnlockAttempt) TableName() string {
	return "cabinets_unlock_attempts"
}

type UnlockAttemptCreateRequest struct {
	UserID    string `json:"user_id" validate:"required,notblank,max=11"`
	CabinetID string `json:"cabinet_id" validate:"required,notblank"`
	Granted   bool   `json:"granted"`
}
