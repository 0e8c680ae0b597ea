package models

// Cabinet is a physical storage location identified by a caller-chosen string.
type Cabinet struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	Description *string `json:"description"`

	// Associations
	UnlockAttempts []CabinetUnlockAttempt `json:"-" gorm:"foreignKey:CabinetID;constraint:OnDelete:CASCADE"`
	StorageUnits   []StorageUnit          `json:"-" gorm:"foreignKey:CabinetID;constraint:OnDelete:SET NULL"`
}

type CabinetCreateRequest struct {
	ID          string  `json:"id" validate:"required,notblank"`
	Description *string `json:"description"`
}
