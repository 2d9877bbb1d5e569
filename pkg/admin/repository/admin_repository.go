package repository

import "agrilink/entities"

type ActivityFilter struct {
	UserID       string
	ResourceType string
	Limit        int
}

type AdminRepository interface {
	ListByRole(role string) ([]entities.User, error)
	UserByID(id string) (*entities.User, error)
	UpdateUser(u *entities.User) error
	ProfileByUser(uid string) (*entities.FarmerProfile, error)
	SaveProfile(p *entities.FarmerProfile) error

	CountByRole(role string) (int64, error)
	CountSuppliersByStatus(status string) (int64, error)
	CountProducts() (int64, error)
	CountOrders() (int64, error)
	CountIntegrationsByStatus(status string) (int64, error)
	SumPaidOrders() (float64, error)

	ListActivities(f ActivityFilter) ([]entities.AuditLog, error)
}
