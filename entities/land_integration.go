package entities

import "time"

const (
	IntegrationPending   = "pending"
	IntegrationAccepted  = "accepted"
	IntegrationRejected  = "rejected"
	IntegrationCompleted = "completed"
)

const (
	ChainUploadPending = "pending"
	ChainUploadSuccess = "success"
	ChainUploadFailed  = "failed"
)

type IntegrationPeriod struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// PartyLand is the per-party snapshot taken at request time. The
// integration never re-reads LandDetails after creation.
type PartyLand struct {
	LandID            string  `json:"land_id"`
	SizeInAcres       float64 `json:"size_in_acres"`
	ContributionRatio float64 `json:"contribution_ratio"` // percent
	CentroidLatitude  float64 `json:"centroid_latitude"`
	CentroidLongitude float64 `json:"centroid_longitude"`
}

// IntegrationCoordinates is a naive union of both parcels: vertex lists
// concatenated, centroids averaged. Not a true polygon merge.
type IntegrationCoordinates struct {
	Vertices          []Vertex `json:"vertices"`
	CentroidLatitude  float64  `json:"centroid_latitude"`
	CentroidLongitude float64  `json:"centroid_longitude"`
}

type IntegrationLandDetails struct {
	RequestingUser      PartyLand              `json:"requesting_user"`
	TargetUser          PartyLand              `json:"target_user"`
	TotalIntegratedSize float64                `json:"total_integrated_size"`
	Coordinates         IntegrationCoordinates `json:"integration_coordinates"`
}

type FinancialAgreement struct {
	RequestingUserContribution float64            `json:"requesting_user_contribution"`
	TargetUserContribution     float64            `json:"target_user_contribution"`
	ProfitSharingRatio         ProfitSharingRatio `json:"profit_sharing_ratio"`
}

type ProfitSharingRatio struct {
	RequestingUser float64 `json:"requesting_user"`
	TargetUser     float64 `json:"target_user"`
}

type Signature struct {
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	SignatureHash string    `json:"signature_hash"`
	SignedAt      time.Time `json:"signed_at"`
	IPAddress     string    `json:"ip_address"`
	UserAgent     string    `json:"user_agent"`
}

// LandIntegration is the bilateral agreement record. At most one active
// (pending|accepted) row may exist per unordered pair of farmers, and a
// completed row is terminal.
type LandIntegration struct {
	ID             string `gorm:"primaryKey" json:"request_id"`
	RequestingUser string `gorm:"index" json:"requesting_user"`
	TargetUser     string `gorm:"index" json:"target_user"`
	Status         string `gorm:"index;default:pending" json:"status"` // pending|accepted|rejected|completed

	RequestDate   time.Time  `json:"request_date"`
	ResponseDate  *time.Time `json:"response_date,omitempty"`
	ExecutionDate *time.Time `json:"execution_date,omitempty"`

	Period             IntegrationPeriod      `gorm:"serializer:json" json:"integration_period"`
	LandDetails        IntegrationLandDetails `gorm:"serializer:json" json:"land_details"`
	FinancialAgreement FinancialAgreement     `gorm:"serializer:json" json:"financial_agreement"`

	AgreementDocument string      `json:"agreement_document,omitempty"`
	Signatures        []Signature `gorm:"serializer:json" json:"signatures,omitempty"`

	BlockchainUploadStatus    string     `json:"blockchain_upload_status,omitempty"` // pending|success|failed
	BlockchainUploaded        bool       `json:"blockchain_uploaded"`
	BlockchainTransactionHash string     `json:"blockchain_transaction_hash,omitempty"`
	BlockchainDocumentCID     string     `json:"blockchain_document_cid,omitempty"`
	BlockchainUploadedAt      *time.Time `json:"blockchain_uploaded_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SignedBy reports whether the given party has already signed.
func (li *LandIntegration) SignedBy(userID string) bool {
	for _, sig := range li.Signatures {
		if sig.UserID == userID {
			return true
		}
	}
	return false
}

// OtherParty returns the counterparty of userID on this agreement.
func (li *LandIntegration) OtherParty(userID string) string {
	if li.RequestingUser == userID {
		return li.TargetUser
	}
	return li.RequestingUser
}

// IsParty reports whether userID is one of the two farmers on the record.
func (li *LandIntegration) IsParty(userID string) bool {
	return li.RequestingUser == userID || li.TargetUser == userID
}
