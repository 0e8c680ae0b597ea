package models

// StorageUnit is a caller-numbered slot inside a cabinet holding at most one item.
type StorageUnit struct {
	ID        uint    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	State     int     `json:"state" gorm:"not null;default:0"`
	Verified  bool    `json:"verified" gorm:"not null;default:false"`
	ItemID    *uint   `json:"item_id" gorm:"index"`
	CabinetID *string `json:"cabinet_id" gorm:"index"`
}

type StorageUnitCreateRequest struct {
	ID        uint    `json:"id" validate:"required"`
	State     int     `json:"state"`
	Verified  bool    `json:"verified"`
	ItemID    uint    `json:"item_id" validate:"required"`
	CabinetID *string `json:"cabinet_id"`
}
