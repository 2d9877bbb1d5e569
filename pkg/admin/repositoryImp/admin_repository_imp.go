package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/admin/repository"
)

type AdminRepo struct {
	DB *gorm.DB
}

func NewAdminRepo(db *gorm.DB) *AdminRepo {
	return &AdminRepo{DB: db}
}

func (r *AdminRepo) ListByRole(role string) ([]entities.User, error) {
	var users []entities.User
	if err := r.DB.Where("role = ?", role).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *AdminRepo) UserByID(id string) (*entities.User, error) {
	var u entities.User
	if err := r.DB.Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *AdminRepo) UpdateUser(u *entities.User) error {
	return r.DB.Save(u).Error
}

func (r *AdminRepo) ProfileByUser(uid string) (*entities.FarmerProfile, error) {
	var p entities.FarmerProfile
	if err := r.DB.Where("user_id = ?", uid).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *AdminRepo) SaveProfile(p *entities.FarmerProfile) error {
	return r.DB.Save(p).Error
}

func (r *AdminRepo) CountByRole(role string) (int64, error) {
	var n int64
	err := r.DB.Model(&entities.User{}).Where("role = ?", role).Count(&n).Error
	return n, err
}

func (r *AdminRepo) CountSuppliersByStatus(status string) (int64, error) {
	var n int64
	err := r.DB.Model(&entities.User{}).
		Where("role = ? AND verification_status = ?", entities.RoleSupplier, status).
		Count(&n).Error
	return n, err
}

func (r *AdminRepo) CountProducts() (int64, error) {
	var n int64
	err := r.DB.Model(&entities.Product{}).Count(&n).Error
	return n, err
}

func (r *AdminRepo) CountOrders() (int64, error) {
	var n int64
	err := r.DB.Model(&entities.Order{}).Count(&n).Error
	return n, err
}

func (r *AdminRepo) CountIntegrationsByStatus(status string) (int64, error) {
	var n int64
	err := r.DB.Model(&entities.LandIntegration{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *AdminRepo) SumPaidOrders() (float64, error) {
	var total float64
	err := r.DB.Model(&entities.Order{}).
		Where("payment_status = ?", entities.PaymentPaid).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *AdminRepo) ListActivities(f repository.ActivityFilter) ([]entities.AuditLog, error) {
	q := r.DB.Model(&entities.AuditLog{})
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.ResourceType != "" {
		q = q.Where("resource_type = ?", f.ResourceType)
	}
	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var logs []entities.AuditLog
	if err := q.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
