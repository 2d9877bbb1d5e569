package serviceImp

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"agrilink/entities"
	"agrilink/pkg/admin/repository"
	"agrilink/pkg/admin/service"
)

type AdminService struct {
	Repo repository.AdminRepository
}

func NewAdminService(repo repository.AdminRepository) *AdminService {
	return &AdminService{Repo: repo}
}

func (s *AdminService) ListFarmers() ([]service.FarmerOverview, error) {
	users, err := s.Repo.ListByRole(entities.RoleFarmer)
	if err != nil {
		return nil, err
	}
	out := make([]service.FarmerOverview, 0, len(users))
	for _, u := range users {
		profile, err := s.Repo.ProfileByUser(u.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, service.FarmerOverview{User: u, Profile: profile})
	}
	return out, nil
}

// VerifyFarmer marks the account verified and promotes the profile's
// name verification in the same pass.
func (s *AdminService) VerifyFarmer(farmerID string) (*entities.User, error) {
	u, err := s.Repo.UserByID(farmerID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, service.ErrUserNotFound
	}
	if u.Role != entities.RoleFarmer {
		return nil, service.ErrNotFarmer
	}

	now := time.Now()
	u.IsVerified = true
	u.VerificationStatus = entities.VerificationVerified
	u.VerifiedAt = &now
	if err := s.Repo.UpdateUser(u); err != nil {
		return nil, err
	}

	profile, err := s.Repo.ProfileByUser(u.ID)
	if err != nil {
		return nil, err
	}
	if profile != nil && profile.NameVerificationStatus != entities.NameVerified {
		profile.NameVerificationStatus = entities.NameVerified
		if profile.VerifiedName == "" {
			profile.VerifiedName = u.FullName
		}
		if err := s.Repo.SaveProfile(profile); err != nil {
			return nil, err
		}
	}
	return u, nil
}

func (s *AdminService) ListSuppliers() ([]entities.User, error) {
	return s.Repo.ListByRole(entities.RoleSupplier)
}

func (s *AdminService) DecideSupplier(supplierID, decision, reason string) (*entities.User, error) {
	if decision != "verify" && decision != "reject" {
		return nil, service.ErrBadDecision
	}
	u, err := s.Repo.UserByID(supplierID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, service.ErrUserNotFound
	}
	if u.Role != entities.RoleSupplier {
		return nil, service.ErrNotSupplier
	}

	now := time.Now()
	if decision == "verify" {
		u.VerificationStatus = entities.VerificationVerified
		u.VerifiedAt = &now
		u.RejectionReason = ""
	} else {
		u.VerificationStatus = entities.VerificationRejected
		u.RejectionReason = reason
		u.VerifiedAt = nil
	}
	if err := s.Repo.UpdateUser(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AdminService) Stats() (*service.DashboardStats, error) {
	stats := &service.DashboardStats{}
	var err error
	if stats.TotalFarmers, err = s.Repo.CountByRole(entities.RoleFarmer); err != nil {
		return nil, err
	}
	if stats.TotalSuppliers, err = s.Repo.CountByRole(entities.RoleSupplier); err != nil {
		return nil, err
	}
	if stats.PendingSuppliers, err = s.Repo.CountSuppliersByStatus(entities.VerificationPending); err != nil {
		return nil, err
	}
	if stats.TotalProducts, err = s.Repo.CountProducts(); err != nil {
		return nil, err
	}
	if stats.TotalOrders, err = s.Repo.CountOrders(); err != nil {
		return nil, err
	}
	if stats.PaidOrderVolume, err = s.Repo.SumPaidOrders(); err != nil {
		return nil, err
	}
	if stats.CompletedMerges, err = s.Repo.CountIntegrationsByStatus(entities.IntegrationCompleted); err != nil {
		return nil, err
	}
	if stats.PendingMerges, err = s.Repo.CountIntegrationsByStatus(entities.IntegrationPending); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *AdminService) Activities(f repository.ActivityFilter) ([]entities.AuditLog, error) {
	return s.Repo.ListActivities(f)
}

var exportHeader = []string{
	"Time", "User", "Role", "Action", "Resource Type", "Resource", "Status", "IP Address",
}

// ExportActivities renders the filtered audit trail as a spreadsheet.
func (s *AdminService) ExportActivities(f repository.ActivityFilter) ([]byte, error) {
	logs, err := s.Repo.ListActivities(f)
	if err != nil {
		return nil, err
	}

	xf := excelize.NewFile()
	defer xf.Close()
	const sheet = "Activities"
	idx, err := xf.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	xf.SetActiveSheet(idx)
	xf.DeleteSheet("Sheet1")

	for col, h := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := xf.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	for i, lg := range logs {
		name := lg.UserName
		if name == "" {
			name = lg.UserID
		}
		resource := lg.ResourceName
		if resource == "" {
			resource = lg.ResourceID
		}
		row := []any{
			lg.CreatedAt.Format(time.RFC3339),
			name,
			lg.UserRole,
			lg.Action,
			lg.ResourceType,
			resource,
			lg.Status,
			lg.IPAddress,
		}
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := xf.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := xf.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
