package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/scheme/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SchemeRepository { return &sqliteRepo{db: db} }

func (r *sqliteRepo) CreateSchemes(schemes []entities.Scheme) error {
	if len(schemes) == 0 {
		return nil
	}
	return r.db.Create(&schemes).Error
}

func (r *sqliteRepo) ListSchemes(category string) ([]entities.Scheme, error) {
	q := r.db.Model(&entities.Scheme{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var list []entities.Scheme
	return list, q.Order("name asc").Find(&list).Error
}

func (r *sqliteRepo) UpsertProfile(p *entities.SchemeProfile) error {
	existing, err := r.FindProfile(p.UserID, p.ProfileName)
	if err != nil {
		return err
	}
	if existing != nil {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	}
	return r.db.Save(p).Error
}

func (r *sqliteRepo) FindProfile(userID, profileName string) (*entities.SchemeProfile, error) {
	var out entities.SchemeProfile
	err := r.db.
		Where("user_id = ? AND profile_name = ? AND is_active = ?", userID, profileName, true).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) ListProfiles(userID string) ([]entities.SchemeProfile, error) {
	var list []entities.SchemeProfile
	err := r.db.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("is_default desc, created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	// search results are excluded from list views
	for i := range list {
		list[i].SearchResults = nil
	}
	return list, nil
}
