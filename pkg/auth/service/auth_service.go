package service

import (
	"errors"

	"agrilink/entities"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrOTPInvalid         = errors.New("invalid otp")
	ErrOTPExpired         = errors.New("otp expired")
)

type RegisterFarmerInput struct {
	FullName string
	Email    string
	Phone    string
	Password string
}

type RegisterSupplierInput struct {
	CompanyName string
	Email       string
	UPIID       string
	Password    string
}

// RegisterResult carries the OTP back to the caller; whether it is
// exposed in the HTTP response is a config decision, not the service's.
type RegisterResult struct {
	UserID string
	OTP    string
}

type AuthService interface {
	RegisterFarmer(in RegisterFarmerInput) (RegisterResult, error)
	RegisterSupplier(in RegisterSupplierInput) (RegisterResult, error)
	VerifyOTP(email, otp string) error
	Login(email, password string) (*entities.User, error)
	// EnsureAdmin seeds the back-office account from config on boot.
	EnsureAdmin(email, password string) error
}
