package serviceImp

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agrilink/entities"
	repo "agrilink/pkg/order/repository"
	"agrilink/pkg/order/service"
)

type orderSvc struct{ r repo.OrderRepository }

func New(r repo.OrderRepository) service.OrderService { return &orderSvc{r: r} }

func (s *orderSvc) Checkout(farmerID string, items []service.ItemInput) (*entities.Order, error) {
	if len(items) == 0 {
		return nil, service.ErrEmptyOrder
	}

	var lines []entities.OrderItem
	total := 0.0
	for _, in := range items {
		if in.Quantity <= 0 {
			return nil, service.ErrEmptyOrder
		}
		p, err := s.r.ProductByID(in.ProductID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrProductNotFound
		}
		if err != nil {
			return nil, err
		}
		if !p.Active || p.Stock < in.Quantity {
			return nil, service.ErrInsufficientStock
		}

		// snapshot the product so later edits never change this order
		sub := p.Price * float64(in.Quantity)
		lines = append(lines, entities.OrderItem{
			ProductID:   p.ID,
			SupplierID:  p.SupplierID,
			ProductName: p.Name,
			UnitPrice:   p.Price,
			Quantity:    in.Quantity,
			Subtotal:    sub,
		})
		total += sub

		p.Stock -= in.Quantity
		if err := s.r.UpdateProduct(p); err != nil {
			return nil, err
		}
	}

	o := &entities.Order{
		ID:            uuid.NewString(),
		FarmerID:      farmerID,
		Items:         lines,
		TotalAmount:   total,
		Status:        entities.OrderPending,
		PaymentStatus: entities.PaymentUnpaid,
	}
	if err := s.r.Create(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *orderSvc) Get(farmerID, orderID string) (*entities.Order, error) {
	o, err := s.r.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if o.FarmerID != farmerID {
		return nil, service.ErrNotYourOrder
	}
	return o, nil
}

func (s *orderSvc) ListForFarmer(farmerID string) ([]entities.Order, error) {
	return s.r.ListByFarmer(farmerID)
}

// Pay settles the order with a mock UPI reference. There is no real
// payment gateway behind this.
func (s *orderSvc) Pay(farmerID, orderID string) (service.PayResult, error) {
	o, err := s.Get(farmerID, orderID)
	if err != nil {
		return service.PayResult{}, err
	}
	if o.PaymentStatus == entities.PaymentPaid {
		return service.PayResult{}, service.ErrAlreadyPaid
	}

	now := time.Now()
	o.PaymentStatus = entities.PaymentPaid
	o.PaymentRef = "UPI-" + uuid.NewString()
	o.PaidAt = &now
	if err := s.r.Update(o); err != nil {
		return service.PayResult{}, err
	}
	return service.PayResult{PaymentRef: o.PaymentRef, Amount: o.TotalAmount}, nil
}

func (s *orderSvc) ListForSupplier(supplierID string) ([]entities.Order, error) {
	all, err := s.r.ListAll()
	if err != nil {
		return nil, err
	}
	// items are embedded JSON, so the supplier filter is done in memory
	out := []entities.Order{}
	for _, o := range all {
		if o.HasSupplier(supplierID) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *orderSvc) UpdateStatus(supplierID, orderID, status string) (*entities.Order, error) {
	if status != entities.OrderShipped && status != entities.OrderDelivered {
		return nil, service.ErrBadStatus
	}
	o, err := s.r.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if !o.HasSupplier(supplierID) {
		return nil, service.ErrNotYourOrder
	}
	if o.Status == entities.OrderCancelled || o.Status == entities.OrderDelivered {
		return nil, service.ErrBadStatus
	}
	o.Status = status
	if err := s.r.Update(o); err != nil {
		return nil, err
	}
	return o, nil
}
