package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/landintegration/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.IntegrationRepository { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Create(li *entities.LandIntegration) error { return r.db.Create(li).Error }

func (r *sqliteRepo) Update(li *entities.LandIntegration) error { return r.db.Save(li).Error }

func (r *sqliteRepo) FindByID(id string) (*entities.LandIntegration, error) {
	var out entities.LandIntegration
	if err := r.db.First(&out, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) ListByUser(uid string) ([]entities.LandIntegration, error) {
	var list []entities.LandIntegration
	err := r.db.
		Where("requesting_user = ? OR target_user = ?", uid, uid).
		Order("request_date desc").
		Find(&list).Error
	return list, err
}

func (r *sqliteRepo) FindActiveBetween(a, b string) (*entities.LandIntegration, error) {
	var out entities.LandIntegration
	err := r.db.
		Where("status IN ?", []string{entities.IntegrationPending, entities.IntegrationAccepted}).
		Where("(requesting_user = ? AND target_user = ?) OR (requesting_user = ? AND target_user = ?)", a, b, b, a).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) CompletedLandByUser(uid string) (*entities.LandDetails, error) {
	var out entities.LandDetails
	err := r.db.
		Where("user_id = ? AND processing_status = ?", uid, entities.ProcessingCompleted).
		Order("created_at desc").
		First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) CompletedLandByIDAndUser(landID, uid string) (*entities.LandDetails, error) {
	var out entities.LandDetails
	err := r.db.
		Where("id = ? AND user_id = ? AND processing_status = ?", landID, uid, entities.ProcessingCompleted).
		First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) CompletedLandsByUsers(uids []string) ([]entities.LandDetails, error) {
	var list []entities.LandDetails
	err := r.db.
		Where("user_id IN ? AND processing_status = ?", uids, entities.ProcessingCompleted).
		Find(&list).Error
	return list, err
}

func (r *sqliteRepo) ProfileByUser(uid string) (*entities.FarmerProfile, error) {
	var out entities.FarmerProfile
	if err := r.db.First(&out, "user_id = ?", uid).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) ProfilesByUsers(uids []string) ([]entities.FarmerProfile, error) {
	var list []entities.FarmerProfile
	err := r.db.Where("user_id IN ?", uids).Find(&list).Error
	return list, err
}

func (r *sqliteRepo) ReadyVerifiedFarmers(excludeUID string) ([]entities.FarmerProfile, error) {
	var list []entities.FarmerProfile
	err := r.db.
		Where("user_id <> ? AND ready_to_integrate = ? AND name_verification_status = ?",
			excludeUID, true, entities.NameVerified).
		Find(&list).Error
	return list, err
}

func (r *sqliteRepo) SetReady(uid string, ready bool, at *time.Time) (*entities.FarmerProfile, error) {
	var profile entities.FarmerProfile
	if err := r.db.First(&profile, "user_id = ?", uid).Error; err != nil {
		return nil, err
	}
	profile.ReadyToIntegrate = ready
	profile.ReadyToIntegrateDate = at
	if err := r.db.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *sqliteRepo) ClearReady(uids []string) error {
	return r.db.Model(&entities.FarmerProfile{}).
		Where("user_id IN ?", uids).
		Updates(map[string]any{"ready_to_integrate": false, "ready_to_integrate_date": nil}).Error
}
