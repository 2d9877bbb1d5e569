package entities

import "time"

const (
	NameVerified    = "verified"
	NameNotVerified = "not_verified"
	NamePending     = "pending"
)

// DocumentRecord tracks one uploaded KYC document. The OCR text arrives
// pre-extracted from the upload pipeline.
type DocumentRecord struct {
	Uploaded      bool       `json:"uploaded"`
	ExtractedText string     `json:"extracted_text,omitempty"`
	UploadedAt    *time.Time `json:"uploaded_at,omitempty"`
}

type FarmerDocuments struct {
	RTC     DocumentRecord `json:"rtc"`
	Aadhaar DocumentRecord `json:"aadhaar"`
}

type FarmerProfile struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"uniqueIndex" json:"user_id"`

	// identity, matches the document extraction output
	VerifiedName           string `json:"verified_name,omitempty"`
	KannadaName            string `json:"kannada_name,omitempty"`         // RTC Kannada name
	AadhaarKannadaName     string `json:"aadhaar_kannada_name,omitempty"` // Aadhaar Kannada name
	RTCAddress             string `json:"rtc_address,omitempty"`
	NameVerificationStatus string `gorm:"default:pending" json:"name_verification_status"`
	Age                    int    `json:"age,omitempty"`
	Gender                 string `json:"gender,omitempty"`
	HomeAddress            string `json:"home_address,omitempty"`
	ContactNumber          string `json:"contact_number,omitempty"`
	DOB                    string `json:"dob,omitempty"`

	// land ownership attributes from RTC
	LandParcelIdentity  string `json:"land_parcel_identity,omitempty"`
	OwnershipVerified   bool   `json:"ownership_verified"`
	SoilProperties      string `json:"soil_properties,omitempty"`
	IrrigationPotential string `json:"irrigation_potential,omitempty"`
	CroppingHistory     string `json:"cropping_history,omitempty"`
	TotalCultivableArea string `json:"total_cultivable_area,omitempty"`

	Documents FarmerDocuments `gorm:"serializer:json" json:"documents"`

	// land integration readiness
	ReadyToIntegrate     bool       `gorm:"index" json:"ready_to_integrate"`
	ReadyToIntegrateDate *time.Time `json:"ready_to_integrate_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName is the fallback chain used everywhere a farmer is shown
// to a counterparty: verified name, then Aadhaar Kannada name, then a
// masked id.
func (p *FarmerProfile) DisplayName() string {
	if p.VerifiedName != "" {
		return p.VerifiedName
	}
	if p.AadhaarKannadaName != "" {
		return p.AadhaarKannadaName
	}
	id := p.UserID
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	return "Farmer " + id
}
