package models

/** --------------------ENTITIES-------------------- */
// Product is a catalog entry. Price is stored in cents.
type Product struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Price       int    `gorm:"not null" json:"price"`
	Image       string `gorm:"not null" json:"image"`
	MerchantID  uint   `gorm:"not null;index" json:"merchantId"`
}

/** -------------------- DTOs -------------------- */
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       int    `json:"price" binding:"gte=0"`
	Image       string `json:"image" binding:"required"`
	MerchantID  uint   `json:"merchantId" binding:"required,gt=0"`
}

func (r *CreateProductRequest) ToProduct() *Product {
	return &Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		MerchantID:  r.MerchantID,
	}
}
