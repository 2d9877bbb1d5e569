package entities

import "time"

const (
	OrderPending   = "pending"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// OrderItem snapshots the product at checkout time so later price or
// stock edits never change a placed order.
type OrderItem struct {
	ProductID   uint    `json:"product_id"`
	SupplierID  string  `json:"supplier_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

type Order struct {
	ID          string      `gorm:"primaryKey" json:"order_id"`
	FarmerID    string      `gorm:"index" json:"farmer_id"`
	Items       []OrderItem `gorm:"serializer:json" json:"items"`
	TotalAmount float64     `json:"total_amount"`

	Status        string     `gorm:"index;default:pending" json:"status"` // pending|shipped|delivered|cancelled
	PaymentStatus string     `gorm:"default:unpaid" json:"payment_status"`
	PaymentRef    string     `json:"payment_ref,omitempty"` // mock UPI reference
	PaidAt        *time.Time `json:"paid_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasSupplier reports whether any line item belongs to the supplier.
func (o *Order) HasSupplier(supplierID string) bool {
	for _, it := range o.Items {
		if it.SupplierID == supplierID {
			return true
		}
	}
	return false
}
