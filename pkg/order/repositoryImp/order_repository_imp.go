package repositoryImp

import (
	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/order/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.OrderRepository { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Create(o *entities.Order) error { return r.db.Create(o).Error }

func (r *sqliteRepo) Update(o *entities.Order) error { return r.db.Save(o).Error }

func (r *sqliteRepo) FindByID(id string) (*entities.Order, error) {
	var out entities.Order
	if err := r.db.First(&out, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) ListByFarmer(farmerID string) ([]entities.Order, error) {
	var list []entities.Order
	err := r.db.Where("farmer_id = ?", farmerID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *sqliteRepo) ListAll() ([]entities.Order, error) {
	var list []entities.Order
	err := r.db.Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *sqliteRepo) ProductByID(id uint) (*entities.Product, error) {
	var out entities.Product
	if err := r.db.First(&out, id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) UpdateProduct(p *entities.Product) error { return r.db.Save(p).Error }
