package repository

import "agrilink/entities"

type OrderRepository interface {
	Create(o *entities.Order) error
	Update(o *entities.Order) error
	FindByID(id string) (*entities.Order, error)
	ListByFarmer(farmerID string) ([]entities.Order, error)
	ListAll() ([]entities.Order, error)
	ProductByID(id uint) (*entities.Product, error)
	UpdateProduct(p *entities.Product) error
}
