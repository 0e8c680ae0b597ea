package models

type Item struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	Title       string   `json:"title" gorm:"uniqueIndex;not null"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Link        *string  `json:"link"`
	CategoryID  *uint    `json:"category_id" gorm:"index"`

	// Associations
	OrderRequests []OrderRequest `json:"-" gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	StorageUnits  []StorageUnit  `json:"-" gorm:"foreignKey:ItemID;constraint:OnDelete:SET NULL"`
}

type ItemCreateRequest struct {
	Title       string   `json:"title" validate:"required,notblank"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Link        *string  `json:"link"`
	CategoryID  *uint    `json:"category_id"`
}
