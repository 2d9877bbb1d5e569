package entities

import "time"

// Scheme is one government subsidy/support scheme from the catalog.
// Rows are ingested from portal HTML pages by the admin.
type Scheme struct {
	ID              uint    `gorm:"primaryKey" json:"scheme_id"`
	Name            string  `gorm:"index" json:"name"`
	Provider        string  `json:"provider"` // central|state
	Category        string  `gorm:"index" json:"category"`
	Description     string  `json:"description"`
	MinLandAcres    float64 `json:"min_land_acres"`
	MaxLandAcres    float64 `json:"max_land_acres"` // 0 = no upper bound
	EligibleCrops   string  `json:"eligible_crops"` // comma-separated, empty = all
	BenefitSummary  string  `json:"benefit_summary"`
	SourceURL       string  `json:"source_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TrackedResource opts schemes in to automatic audit logging.
func (Scheme) TrackedResource() string { return "scheme" }

// SchemeProfile is a farmer's saved eligibility-search profile.
type SchemeProfile struct {
	ID          uint              `gorm:"primaryKey" json:"profile_id"`
	UserID      string            `gorm:"index" json:"user_id"`
	ProfileName string            `json:"profile_name"`
	ProfileData SchemeProfileData `gorm:"serializer:json" json:"profile_data"`
	// last search results, excluded from list views
	SearchResults []Scheme `gorm:"serializer:json" json:"search_results,omitempty"`
	IsDefault     bool     `json:"is_default"`
	IsActive      bool     `gorm:"index;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SchemeProfileData struct {
	LandAcres float64  `json:"land_acres"`
	Crops     []string `json:"crops,omitempty"`
	Category  string   `json:"category,omitempty"`
}
