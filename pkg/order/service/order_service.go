package service

import (
	"errors"

	"agrilink/entities"
)

var (
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderNotFound     = errors.New("order not found")
	ErrNotYourOrder      = errors.New("not your order")
	ErrAlreadyPaid       = errors.New("order already paid")
	ErrBadStatus         = errors.New("invalid status transition")
)

type ItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type PayResult struct {
	PaymentRef string
	Amount     float64
}

type OrderService interface {
	Checkout(farmerID string, items []ItemInput) (*entities.Order, error)
	Get(farmerID, orderID string) (*entities.Order, error)
	ListForFarmer(farmerID string) ([]entities.Order, error)
	Pay(farmerID, orderID string) (PayResult, error)
	// supplier side: orders containing the supplier's items
	ListForSupplier(supplierID string) ([]entities.Order, error)
	UpdateStatus(supplierID, orderID, status string) (*entities.Order, error)
}
