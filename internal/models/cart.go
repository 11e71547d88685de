package models

/** --------------------ENTITIES-------------------- */
type CartItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"not null;index" json:"userId"`
	ProductID uint `gorm:"not null" json:"productId"`
	Quantity  int  `gorm:"not null" json:"quantity"`
}

/** -------------------- DTOs -------------------- */
type CreateCartItemRequest struct {
	UserID    uint `json:"userId" binding:"required,gt=0"`
	ProductID uint `json:"productId" binding:"required,gt=0"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}
