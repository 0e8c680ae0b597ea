package models

type User struct {
	UID       string  `json:"uid" gorm:"column:uid;primaryKey;size:11"`
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`

	// Associations
	OrderRequests  []OrderRequest         `json:"-" gorm:"foreignKey:UserID;references:UID;constraint:OnDelete:CASCADE"`
	UnlockAttempts []CabinetUnlockAttempt `json:"-" gorm:"foreignKey:UserID;references:UID;constraint:OnDelete:CASCADE"`
}

type UserCreateRequest struct {
	UID       string  `json:"uid" validate:"required,notblank,max=11"`
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
}
