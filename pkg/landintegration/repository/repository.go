package repository

import (
	"time"

	"agrilink/entities"
)

type IntegrationRepository interface {
	Create(li *entities.LandIntegration) error
	Update(li *entities.LandIntegration) error
	FindByID(id string) (*entities.LandIntegration, error)
	ListByUser(uid string) ([]entities.LandIntegration, error)
	// FindActiveBetween returns the pending or accepted integration
	// between the two users in either direction, or nil.
	FindActiveBetween(a, b string) (*entities.LandIntegration, error)

	// land lookups (read-only to this workflow)
	CompletedLandByUser(uid string) (*entities.LandDetails, error)
	CompletedLandByIDAndUser(landID, uid string) (*entities.LandDetails, error)
	CompletedLandsByUsers(uids []string) ([]entities.LandDetails, error)

	// farmer profile access for readiness and display names
	ProfileByUser(uid string) (*entities.FarmerProfile, error)
	ProfilesByUsers(uids []string) ([]entities.FarmerProfile, error)
	ReadyVerifiedFarmers(excludeUID string) ([]entities.FarmerProfile, error)
	SetReady(uid string, ready bool, at *time.Time) (*entities.FarmerProfile, error)
	ClearReady(uids []string) error
}
