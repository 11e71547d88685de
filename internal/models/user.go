package models

import "time"

/** --------------------ENTITIES-------------------- */
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"uniqueIndex;not null" json:"username"`
	Password   string    `gorm:"not null" json:"-"`
	IsMerchant bool      `gorm:"not null;default:false" json:"isMerchant"`
	CreatedAt  time.Time `json:"createdAt"`
}

/** -------------------- DTOs -------------------- */
type RegisterUserRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=50"`
	Password   string `json:"password" binding:"required,min=6"`
	IsMerchant bool   `json:"isMerchant"`
}

type PresenceResponse struct {
	UserID uint `json:"userId"`
	Online bool `json:"online"`
}
