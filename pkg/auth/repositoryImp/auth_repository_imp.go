package repositoryImp

import (
	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/auth/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AuthRepository { return &sqliteRepo{db: db} }

func (r *sqliteRepo) CreateUser(u *entities.User) error { return r.db.Create(u).Error }

func (r *sqliteRepo) UpdateUser(u *entities.User) error { return r.db.Save(u).Error }

func (r *sqliteRepo) UserByEmail(email string) (*entities.User, error) {
	var out entities.User
	if err := r.db.First(&out, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) UserByID(id string) (*entities.User, error) {
	var out entities.User
	if err := r.db.First(&out, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) CreateFarmerProfile(p *entities.FarmerProfile) error {
	return r.db.Create(p).Error
}
