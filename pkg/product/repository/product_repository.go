package repository

import "agrilink/entities"

type ProductRepository interface {
	Create(p *entities.Product) error
	Update(p *entities.Product) error
	FindByID(id uint) (*entities.Product, error)
	ListBySupplier(supplierID string) ([]entities.Product, error)
	// ListMarketplace returns active products belonging to verified
	// suppliers, optionally filtered by category and a name substring.
	ListMarketplace(category, q string) ([]entities.Product, error)
	SupplierByID(id string) (*entities.User, error)
}
