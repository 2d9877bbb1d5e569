package serviceImp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"agrilink/entities"
	repo "agrilink/pkg/auth/repository"
	"agrilink/pkg/auth/service"
)

const otpTTL = 10 * time.Minute

type authSvc struct{ r repo.AuthRepository }

func New(r repo.AuthRepository) service.AuthService { return &authSvc{r: r} }

func (s *authSvc) RegisterFarmer(in service.RegisterFarmerInput) (service.RegisterResult, error) {
	if in.FullName == "" || in.Email == "" || in.Phone == "" || in.Password == "" {
		return service.RegisterResult{}, service.ErrMissingFields
	}
	if _, err := s.r.UserByEmail(in.Email); err == nil {
		return service.RegisterResult{}, service.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return service.RegisterResult{}, err
	}
	otp := generateOTP()
	expires := time.Now().Add(otpTTL)

	u := &entities.User{
		ID:                 uuid.NewString(),
		Role:               entities.RoleFarmer,
		FullName:           in.FullName,
		Email:              in.Email,
		Phone:              in.Phone,
		PasswordHash:       string(hash),
		EmailOTP:           otp,
		OTPExpiresAt:       &expires,
		VerificationStatus: entities.VerificationPending,
	}
	if err := s.r.CreateUser(u); err != nil {
		return service.RegisterResult{}, err
	}
	if err := s.r.CreateFarmerProfile(&entities.FarmerProfile{
		UserID:                 u.ID,
		NameVerificationStatus: entities.NamePending,
	}); err != nil {
		return service.RegisterResult{}, err
	}

	// delivery via email/SMS is out of scope here; logged for testing
	log.Printf("[auth] OTP for %s: %s", in.Email, otp)
	return service.RegisterResult{UserID: u.ID, OTP: otp}, nil
}

func (s *authSvc) RegisterSupplier(in service.RegisterSupplierInput) (service.RegisterResult, error) {
	if in.CompanyName == "" || in.Email == "" || in.Password == "" {
		return service.RegisterResult{}, service.ErrMissingFields
	}
	if _, err := s.r.UserByEmail(in.Email); err == nil {
		return service.RegisterResult{}, service.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return service.RegisterResult{}, err
	}
	otp := generateOTP()
	expires := time.Now().Add(otpTTL)

	u := &entities.User{
		ID:                 uuid.NewString(),
		Role:               entities.RoleSupplier,
		CompanyName:        in.CompanyName,
		Email:              in.Email,
		UPIID:              in.UPIID,
		PasswordHash:       string(hash),
		EmailOTP:           otp,
		OTPExpiresAt:       &expires,
		VerificationStatus: entities.VerificationPending,
	}
	if err := s.r.CreateUser(u); err != nil {
		return service.RegisterResult{}, err
	}
	log.Printf("[auth] OTP for %s: %s", in.Email, otp)
	return service.RegisterResult{UserID: u.ID, OTP: otp}, nil
}

func (s *authSvc) VerifyOTP(email, otp string) error {
	u, err := s.r.UserByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if u.EmailOTP == "" || u.EmailOTP != otp {
		return service.ErrOTPInvalid
	}
	if u.OTPExpiresAt == nil || time.Now().After(*u.OTPExpiresAt) {
		return service.ErrOTPExpired
	}
	u.EmailVerified = true
	u.PhoneVerified = u.Phone != ""
	u.EmailOTP = ""
	u.OTPExpiresAt = nil
	return s.r.UpdateUser(u)
}

func (s *authSvc) Login(email, password string) (*entities.User, error) {
	u, err := s.r.UserByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, service.ErrInvalidCredentials
	}
	return u, nil
}

func (s *authSvc) EnsureAdmin(email, password string) error {
	if password == "" {
		return nil // no admin configured
	}
	if _, err := s.r.UserByEmail(email); err == nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.r.CreateUser(&entities.User{
		ID:            uuid.NewString(),
		Role:          entities.RoleAdmin,
		FullName:      "Administrator",
		Email:         email,
		PasswordHash:  string(hash),
		EmailVerified: true,
	})
}

func generateOTP() string {
	n, _ := rand.Int(rand.Reader, big.NewInt(900000))
	return fmt.Sprintf("%06d", n.Int64()+100000)
}
