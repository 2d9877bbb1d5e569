package repository

import "agrilink/entities"

type SupplierRepository interface {
	UserByID(id string) (*entities.User, error)
	UpdateUser(u *entities.User) error
	CreateDocument(d *entities.SupplierDocument) error
	DocumentsBySupplier(supplierID string) ([]entities.SupplierDocument, error)
}
