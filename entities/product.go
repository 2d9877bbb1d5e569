package entities

import "time"

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"product_id"`
	SupplierID  string  `gorm:"index" json:"supplier_id"`
	Name        string  `json:"name"`
	Category    string  `gorm:"index" json:"category"` // seeds|fertilizer|equipment|pesticide
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"` // kg|litre|piece|bag
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url,omitempty"`
	Active      bool    `gorm:"index;default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TrackedResource opts products in to automatic audit logging.
func (Product) TrackedResource() string { return "product" }
