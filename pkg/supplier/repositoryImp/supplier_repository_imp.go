package repositoryImp

import (
	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/supplier/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SupplierRepository { return &sqliteRepo{db: db} }

func (r *sqliteRepo) UserByID(id string) (*entities.User, error) {
	var out entities.User
	if err := r.db.First(&out, "id = ? AND role = ?", id, entities.RoleSupplier).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) UpdateUser(u *entities.User) error { return r.db.Save(u).Error }

func (r *sqliteRepo) CreateDocument(d *entities.SupplierDocument) error {
	return r.db.Create(d).Error
}

func (r *sqliteRepo) DocumentsBySupplier(supplierID string) ([]entities.SupplierDocument, error) {
	var list []entities.SupplierDocument
	err := r.db.Where("supplier_id = ?", supplierID).Order("created_at desc").Find(&list).Error
	return list, err
}
