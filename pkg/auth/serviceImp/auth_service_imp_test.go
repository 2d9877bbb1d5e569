package serviceImp

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"agrilink/entities"
	repoImp "agrilink/pkg/auth/repositoryImp"
	"agrilink/pkg/auth/service"
)

func newService(t *testing.T) (service.AuthService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.FarmerProfile{}))
	return New(repoImp.New(db)), db
}

func TestRegisterFarmerCreatesProfile(t *testing.T) {
	svc, db := newService(t)

	res, err := svc.RegisterFarmer(service.RegisterFarmerInput{
		FullName: "Ravi Kumar", Email: "ravi@example.com", Phone: "9000000001", Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.UserID)
	assert.Regexp(t, `^\d{6}$`, res.OTP)

	var u entities.User
	require.NoError(t, db.First(&u, "id = ?", res.UserID).Error)
	assert.Equal(t, entities.RoleFarmer, u.Role)
	assert.Equal(t, entities.VerificationPending, u.VerificationStatus)
	assert.NotEqual(t, "secret123", u.PasswordHash)

	var p entities.FarmerProfile
	require.NoError(t, db.First(&p, "user_id = ?", res.UserID).Error)
	assert.Equal(t, entities.NamePending, p.NameVerificationStatus)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newService(t)
	in := service.RegisterFarmerInput{FullName: "Ravi", Email: "ravi@example.com", Phone: "9", Password: "x12345"}
	_, err := svc.RegisterFarmer(in)
	require.NoError(t, err)

	_, err = svc.RegisterFarmer(in)
	assert.ErrorIs(t, err, service.ErrEmailTaken)

	_, err = svc.RegisterSupplier(service.RegisterSupplierInput{
		CompanyName: "AgriSupply Co", Email: "ravi@example.com", Password: "x12345",
	})
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestRegisterRequiresFields(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.RegisterFarmer(service.RegisterFarmerInput{Email: "a@b.c"})
	assert.ErrorIs(t, err, service.ErrMissingFields)
	_, err = svc.RegisterSupplier(service.RegisterSupplierInput{CompanyName: "X"})
	assert.ErrorIs(t, err, service.ErrMissingFields)
}

func TestVerifyOTPFlow(t *testing.T) {
	svc, db := newService(t)
	res, err := svc.RegisterFarmer(service.RegisterFarmerInput{
		FullName: "Ravi", Email: "ravi@example.com", Phone: "9000000001", Password: "secret123",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.VerifyOTP("ravi@example.com", "000000"), service.ErrOTPInvalid)
	assert.ErrorIs(t, svc.VerifyOTP("ghost@example.com", res.OTP), service.ErrUserNotFound)

	require.NoError(t, svc.VerifyOTP("ravi@example.com", res.OTP))

	var u entities.User
	require.NoError(t, db.First(&u, "email = ?", "ravi@example.com").Error)
	assert.True(t, u.EmailVerified)
	assert.True(t, u.PhoneVerified)
	assert.Empty(t, u.EmailOTP)

	// OTP is single-use
	assert.ErrorIs(t, svc.VerifyOTP("ravi@example.com", res.OTP), service.ErrOTPInvalid)
}

func TestVerifyOTPExpired(t *testing.T) {
	svc, db := newService(t)
	res, err := svc.RegisterFarmer(service.RegisterFarmerInput{
		FullName: "Ravi", Email: "ravi@example.com", Phone: "9", Password: "secret123",
	})
	require.NoError(t, err)

	past := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&entities.User{}).
		Where("email = ?", "ravi@example.com").
		Update("otp_expires_at", past).Error)

	assert.ErrorIs(t, svc.VerifyOTP("ravi@example.com", res.OTP), service.ErrOTPExpired)
}

func TestLogin(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.RegisterFarmer(service.RegisterFarmerInput{
		FullName: "Ravi", Email: "ravi@example.com", Phone: "9", Password: "secret123",
	})
	require.NoError(t, err)

	u, err := svc.Login("ravi@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, entities.RoleFarmer, u.Role)

	_, err = svc.Login("ravi@example.com", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = svc.Login("ghost@example.com", "secret123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestEnsureAdminIdempotent(t *testing.T) {
	svc, db := newService(t)
	require.NoError(t, svc.EnsureAdmin("admin@agrilink.local", "adminpass"))
	require.NoError(t, svc.EnsureAdmin("admin@agrilink.local", "adminpass"))

	var n int64
	require.NoError(t, db.Model(&entities.User{}).Where("role = ?", entities.RoleAdmin).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	u, err := svc.Login("admin@agrilink.local", "adminpass")
	require.NoError(t, err)
	assert.Equal(t, entities.RoleAdmin, u.Role)

	// blank password means no admin is seeded
	require.NoError(t, svc.EnsureAdmin("other@agrilink.local", ""))
	require.NoError(t, db.Model(&entities.User{}).Where("email = ?", "other@agrilink.local").Count(&n).Error)
	assert.Zero(t, n)
}
