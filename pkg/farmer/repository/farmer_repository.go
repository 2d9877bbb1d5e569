package repository

import "agrilink/entities"

type FarmerRepository interface {
	ProfileByUser(uid string) (*entities.FarmerProfile, error)
	SaveProfile(p *entities.FarmerProfile) error
	LandsByUser(uid string) ([]entities.LandDetails, error)
}
