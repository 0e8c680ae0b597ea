package models

// Category forms a hierarchy through ParentID. Only the has-many sides are
// declared so that migration creates a single SET NULL constraint per edge.
type Category struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title" gorm:"uniqueIndex;not null"`
	Description *string `json:"description"`
	ParentID    *uint   `json:"parent_id" gorm:"index"`

	// Associations
	Children []Category `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL"`
	Items    []Item     `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

type CategoryCreateRequest struct {
	Title       string  `json:"title" validate:"required,notblank"`
	Description *string `json:"description"`
	ParentID    *uint   `json:"parent_id"`
}
