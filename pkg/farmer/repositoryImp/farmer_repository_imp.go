package repositoryImp

import (
	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/farmer/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmerRepository { return &sqliteRepo{db: db} }

func (r *sqliteRepo) ProfileByUser(uid string) (*entities.FarmerProfile, error) {
	var out entities.FarmerProfile
	if err := r.db.First(&out, "user_id = ?", uid).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) SaveProfile(p *entities.FarmerProfile) error { return r.db.Save(p).Error }

func (r *sqliteRepo) LandsByUser(uid string) ([]entities.LandDetails, error) {
	var list []entities.LandDetails
	err := r.db.Where("user_id = ?", uid).Order("created_at desc").Find(&list).Error
	return list, err
}
