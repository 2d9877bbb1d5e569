package entities

import "time"

const (
	AuditSuccess = "success"
	AuditFailed  = "failed"
)

const (
	ActionCreate       = "create"
	ActionUpdate       = "update"
	ActionDelete       = "delete"
	ActionLogin        = "login"
	ActionRegister     = "register"
	ActionVerify       = "verify"
	ActionReject       = "reject"
	ActionSubmit       = "submit"
	ActionPayment      = "payment"
	ActionStatusChange = "status_change"
	ActionUpload       = "upload"
	ActionExport       = "export"
)

// AuditLog is an append-only who-did-what record. Writes are
// best-effort and never tied to the primary write they describe.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID   string `gorm:"index" json:"user_id,omitempty"`
	UserName string `json:"user_name,omitempty"`
	UserRole string `gorm:"index" json:"user_role,omitempty"`

	Action       string `gorm:"index" json:"action"`
	ResourceType string `gorm:"index" json:"resource_type"`
	ResourceID   string `gorm:"index" json:"resource_id"`
	ResourceName string `json:"resource_name,omitempty"`

	Changes  map[string]FieldChange `gorm:"serializer:json" json:"changes,omitempty"`
	Metadata map[string]any         `gorm:"serializer:json" json:"metadata,omitempty"`

	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`

	Status       string `gorm:"default:success" json:"status"` // success|failed
	ErrorMessage string `json:"error_message,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

type FieldChange struct {
	Old any `json:"old"`
	New any `json:"new"`
}
