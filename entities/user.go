package entities

import "time"

const (
	RoleFarmer   = "farmer"
	RoleSupplier = "supplier"
	RoleAdmin    = "admin"
)

const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

type User struct {
	ID       string `gorm:"primaryKey" json:"user_id"`
	Role     string `gorm:"index" json:"role"` // farmer|supplier|admin
	FullName string `json:"full_name"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Phone    string `json:"phone"`

	// supplier fields
	CompanyName string `json:"company_name,omitempty"`
	UPIID       string `json:"upi_id,omitempty"`

	PasswordHash  string     `json:"-"`
	EmailVerified bool       `json:"email_verified"`
	PhoneVerified bool       `json:"phone_verified"`
	EmailOTP      string     `json:"-"`
	OTPExpiresAt  *time.Time `json:"-"`

	// admin verification
	IsVerified         bool       `json:"is_verified"`                            // farmer
	DocumentsUploaded  bool       `json:"documents_uploaded"`                     // supplier
	VerificationStatus string     `gorm:"index" json:"verification_status"`       // pending|verified|rejected
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`
	RejectionReason    string     `json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
