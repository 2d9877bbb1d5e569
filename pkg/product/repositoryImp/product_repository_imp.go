package repositoryImp

import (
	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/product/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProductRepository { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Create(p *entities.Product) error { return r.db.Create(p).Error }

func (r *sqliteRepo) Update(p *entities.Product) error { return r.db.Save(p).Error }

func (r *sqliteRepo) FindByID(id uint) (*entities.Product, error) {
	var out entities.Product
	if err := r.db.First(&out, id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) ListBySupplier(supplierID string) ([]entities.Product, error) {
	var list []entities.Product
	err := r.db.Where("supplier_id = ?", supplierID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *sqliteRepo) ListMarketplace(category, q string) ([]entities.Product, error) {
	verified := r.db.Model(&entities.User{}).Select("id").
		Where("role = ? AND verification_status = ?", entities.RoleSupplier, entities.VerificationVerified)
	query := r.db.Where("active = ? AND supplier_id IN (?)", true, verified)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
	}
	var list []entities.Product
	return list, query.Order("created_at desc").Find(&list).Error
}

func (r *sqliteRepo) SupplierByID(id string) (*entities.User, error) {
	var out entities.User
	if err := r.db.First(&out, "id = ? AND role = ?", id, entities.RoleSupplier).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
