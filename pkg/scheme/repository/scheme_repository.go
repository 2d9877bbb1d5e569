package repository

import "agrilink/entities"

type SchemeRepository interface {
	CreateSchemes(schemes []entities.Scheme) error
	ListSchemes(category string) ([]entities.Scheme, error)
	UpsertProfile(p *entities.SchemeProfile) error
	FindProfile(userID, profileName string) (*entities.SchemeProfile, error)
	ListProfiles(userID string) ([]entities.SchemeProfile, error)
}
