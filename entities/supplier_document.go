package entities

import "time"

// SupplierDocument is one verification document record submitted by a
// supplier. File storage happens upstream; only the metadata lands here.
type SupplierDocument struct {
	ID         uint   `gorm:"primaryKey" json:"document_id"`
	SupplierID string `gorm:"index" json:"supplier_id"`
	Type       string `json:"type"` // gst|license|identity
	FileName   string `json:"file_name"`

	CreatedAt time.Time `json:"created_at"`
}
