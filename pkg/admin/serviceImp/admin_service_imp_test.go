package serviceImp

import (
	"bytes"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"agrilink/entities"
	"agrilink/pkg/admin/repository"
	repoImp "agrilink/pkg/admin/repositoryImp"
	"agrilink/pkg/admin/service"
)

func newService(t *testing.T) (service.AdminService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.FarmerProfile{},
		&entities.Product{},
		&entities.Order{},
		&entities.LandIntegration{},
		&entities.AuditLog{},
	))
	return NewAdminService(repoImp.NewAdminRepo(db)), db
}

func seedUser(t *testing.T, db *gorm.DB, id, role string) {
	t.Helper()
	require.NoError(t, db.Create(&entities.User{
		ID: id, Role: role, FullName: "User " + id, Email: id + "@example.com",
		VerificationStatus: entities.VerificationPending,
	}).Error)
}

func TestVerifyFarmerPromotesProfile(t *testing.T) {
	svc, db := newService(t)
	seedUser(t, db, "f1", entities.RoleFarmer)
	require.NoError(t, db.Create(&entities.FarmerProfile{
		UserID: "f1", NameVerificationStatus: entities.NamePending,
	}).Error)

	u, err := svc.VerifyFarmer("f1")
	require.NoError(t, err)
	assert.True(t, u.IsVerified)
	assert.Equal(t, entities.VerificationVerified, u.VerificationStatus)
	require.NotNil(t, u.VerifiedAt)

	var p entities.FarmerProfile
	require.NoError(t, db.First(&p, "user_id = ?", "f1").Error)
	assert.Equal(t, entities.NameVerified, p.NameVerificationStatus)
	assert.Equal(t, "User f1", p.VerifiedName)

	_, err = svc.VerifyFarmer("ghost")
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	seedUser(t, db, "s1", entities.RoleSupplier)
	_, err = svc.VerifyFarmer("s1")
	assert.ErrorIs(t, err, service.ErrNotFarmer)
}

func TestDecideSupplier(t *testing.T) {
	svc, db := newService(t)
	seedUser(t, db, "s1", entities.RoleSupplier)

	u, err := svc.DecideSupplier("s1", "reject", "documents unreadable")
	require.NoError(t, err)
	assert.Equal(t, entities.VerificationRejected, u.VerificationStatus)
	assert.Equal(t, "documents unreadable", u.RejectionReason)
	assert.Nil(t, u.VerifiedAt)

	u, err = svc.DecideSupplier("s1", "verify", "")
	require.NoError(t, err)
	assert.Equal(t, entities.VerificationVerified, u.VerificationStatus)
	assert.Empty(t, u.RejectionReason)
	require.NotNil(t, u.VerifiedAt)

	_, err = svc.DecideSupplier("s1", "maybe", "")
	assert.ErrorIs(t, err, service.ErrBadDecision)

	seedUser(t, db, "f1", entities.RoleFarmer)
	_, err = svc.DecideSupplier("f1", "verify", "")
	assert.ErrorIs(t, err, service.ErrNotSupplier)
}

func TestStats(t *testing.T) {
	svc, db := newService(t)
	seedUser(t, db, "f1", entities.RoleFarmer)
	seedUser(t, db, "f2", entities.RoleFarmer)
	seedUser(t, db, "s1", entities.RoleSupplier)
	require.NoError(t, db.Create(&entities.Product{SupplierID: "s1", Name: "Urea", Active: true}).Error)
	require.NoError(t, db.Create(&entities.Order{
		ID: "o1", FarmerID: "f1", TotalAmount: 500,
		Status: entities.OrderPending, PaymentStatus: entities.PaymentPaid,
	}).Error)
	require.NoError(t, db.Create(&entities.Order{
		ID: "o2", FarmerID: "f2", TotalAmount: 300,
		Status: entities.OrderPending, PaymentStatus: entities.PaymentUnpaid,
	}).Error)
	require.NoError(t, db.Create(&entities.LandIntegration{
		ID: "li1", RequestingUser: "f1", TargetUser: "f2", Status: entities.IntegrationCompleted,
	}).Error)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalFarmers)
	assert.EqualValues(t, 1, stats.TotalSuppliers)
	assert.EqualValues(t, 1, stats.PendingSuppliers)
	assert.EqualValues(t, 1, stats.TotalProducts)
	assert.EqualValues(t, 2, stats.TotalOrders)
	assert.InDelta(t, 500, stats.PaidOrderVolume, 1e-9)
	assert.EqualValues(t, 1, stats.CompletedMerges)
	assert.EqualValues(t, 0, stats.PendingMerges)
}

func TestActivitiesFilter(t *testing.T) {
	svc, db := newService(t)
	require.NoError(t, db.Create(&entities.AuditLog{
		UserID: "f1", Action: entities.ActionLogin, ResourceType: "session", Status: entities.AuditSuccess,
	}).Error)
	require.NoError(t, db.Create(&entities.AuditLog{
		UserID: "s1", Action: entities.ActionCreate, ResourceType: "product", Status: entities.AuditSuccess,
	}).Error)

	all, err := svc.Activities(repository.ActivityFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byUser, err := svc.Activities(repository.ActivityFilter{UserID: "f1"})
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, entities.ActionLogin, byUser[0].Action)

	byType, err := svc.Activities(repository.ActivityFilter{ResourceType: "product"})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "s1", byType[0].UserID)
}

func TestExportActivitiesProducesWorkbook(t *testing.T) {
	svc, db := newService(t)
	require.NoError(t, db.Create(&entities.AuditLog{
		UserID: "f1", UserName: "Ravi", UserRole: entities.RoleFarmer,
		Action: entities.ActionPayment, ResourceType: "order", ResourceID: "o1",
		Status: entities.AuditSuccess, IPAddress: "10.0.0.1",
	}).Error)

	data, err := svc.ExportActivities(repository.ActivityFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	xf, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer xf.Close()

	rows, err := xf.GetRows("Activities")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "User", rows[0][1])
	assert.Equal(t, "Ravi", rows[1][1])
	assert.Equal(t, "payment", rows[1][3])
}
