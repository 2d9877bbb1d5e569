package repository

import "agrilink/entities"

type AuthRepository interface {
	CreateUser(u *entities.User) error
	UpdateUser(u *entities.User) error
	UserByEmail(email string) (*entities.User, error)
	UserByID(id string) (*entities.User, error)
	CreateFarmerProfile(p *entities.FarmerProfile) error
}
