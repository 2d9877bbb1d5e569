package service

import (
	"errors"

	"agrilink/entities"
)

var (
	ErrNoSchemesFound  = errors.New("no schemes found in page")
	ErrMissingProfile  = errors.New("user id and profile name required")
)

type SchemeService interface {
	// IngestHTML parses a portal page into catalog rows and stores them.
	IngestHTML(html, sourceURL string) (int, error)
	IngestURL(url string) (int, error)
	// Search returns catalog schemes the given farmer attributes are
	// eligible for.
	Search(data entities.SchemeProfileData) ([]entities.Scheme, error)
	SaveProfile(userID, profileName string, data entities.SchemeProfileData, results []entities.Scheme, isDefault bool) (*entities.SchemeProfile, error)
	ListProfiles(userID string) ([]entities.SchemeProfile, error)
}
