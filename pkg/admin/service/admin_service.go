package service

import (
	"errors"

	"agrilink/entities"
	"agrilink/pkg/admin/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNotFarmer    = errors.New("user is not a farmer")
	ErrNotSupplier  = errors.New("user is not a supplier")
	ErrBadDecision  = errors.New("decision must be verify or reject")
)

// FarmerOverview pairs the account with its KYC profile for the
// back-office list view.
type FarmerOverview struct {
	User    entities.User           `json:"user"`
	Profile *entities.FarmerProfile `json:"profile,omitempty"`
}

type DashboardStats struct {
	TotalFarmers      int64   `json:"total_farmers"`
	TotalSuppliers    int64   `json:"total_suppliers"`
	PendingSuppliers  int64   `json:"pending_suppliers"`
	TotalProducts     int64   `json:"total_products"`
	TotalOrders       int64   `json:"total_orders"`
	PaidOrderVolume   float64 `json:"paid_order_volume"`
	CompletedMerges   int64   `json:"completed_integrations"`
	PendingMerges     int64   `json:"pending_integrations"`
}

type AdminService interface {
	ListFarmers() ([]FarmerOverview, error)
	VerifyFarmer(farmerID string) (*entities.User, error)
	ListSuppliers() ([]entities.User, error)
	DecideSupplier(supplierID, decision, reason string) (*entities.User, error)
	Stats() (*DashboardStats, error)
	Activities(f repository.ActivityFilter) ([]entities.AuditLog, error)
	ExportActivities(f repository.ActivityFilter) ([]byte, error)
}
