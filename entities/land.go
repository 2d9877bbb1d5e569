package entities

import "time"

const (
	ProcessingPending   = "pending"
	ProcessingCompleted = "completed"
	ProcessingFailed    = "failed"
)

type Vertex struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LandDetails holds the parsed geometry of one land parcel. Rows are
// produced by the external land-processing pipeline and are read-only
// to the integration workflow.
type LandDetails struct {
	ID     string `gorm:"primaryKey" json:"land_id"`
	UserID string `gorm:"index" json:"user_id"`

	SurveyNumber      string   `json:"survey_number,omitempty"`
	Village           string   `json:"village,omitempty"`
	SizeInAcres       float64  `json:"size_in_acres"`
	CentroidLatitude  float64  `json:"centroid_latitude"`
	CentroidLongitude float64  `json:"centroid_longitude"`
	Vertices          []Vertex `gorm:"serializer:json" json:"vertices"`

	ProcessingStatus string `gorm:"index;default:pending" json:"processing_status"` // pending|completed|failed

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
