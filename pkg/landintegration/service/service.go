package service

import (
	"errors"
	"time"

	"agrilink/entities"
)

var (
	ErrLandNotProcessed   = errors.New("your land details not found or not processed")
	ErrTargetLandNotFound = errors.New("target land details not found")
	ErrDuplicateRequest   = errors.New("integration request already exists with this farmer")
	ErrRequestNotFound    = errors.New("integration request not found")
	ErrNotTargetUser      = errors.New("not authorized to respond to this request")
	ErrNotParty           = errors.New("not a party to this agreement")
	ErrNotPending         = errors.New("request is not pending")
	ErrBadAction          = errors.New("action must be accept or reject")
	ErrAlreadySigned      = errors.New("already signed")
	ErrProfileNotFound    = errors.New("farmer profile not found")
	ErrBadPeriod          = errors.New("integration period start must be before end")
)

type Neighbour struct {
	UserID            string  `json:"user_id"`
	UserName          string  `json:"user_name"`
	LandID            string  `json:"land_id"`
	SizeInAcres       float64 `json:"size_in_acres"`
	CentroidLatitude  float64 `json:"centroid_latitude"`
	CentroidLongitude float64 `json:"centroid_longitude"`
	Distance          float64 `json:"distance"` // meters
}

type CreateRequestInput struct {
	TargetUserID string
	TargetLandID string
	StartDate    time.Time
	EndDate      time.Time
}

// RequestView is one integration row annotated for the calling farmer.
type RequestView struct {
	entities.LandIntegration
	IsRequestingUser bool   `json:"is_requesting_user"`
	OtherUserName    string `json:"other_user_name"`
	OtherUserContact string `json:"other_user_contact,omitempty"`
}

type RespondResult struct {
	Accepted          bool
	AgreementDocument string
	AgreementContent  string
}

type SignInput struct {
	RequestID        string
	Password         string
	AgreementContent string
	IPAddress        string
	UserAgent        string
}

type SignResult struct {
	SignedBy          string
	FullyExecuted     bool
	BlockchainStatus  string
	TransactionHash   string
	Signatures        []entities.Signature
}

type SignStatus struct {
	UserSigned      bool                 `json:"user_signed"`
	OtherUserSigned bool                 `json:"other_user_signed"`
	FullyExecuted   bool                 `json:"fully_executed"`
	Signatures      []entities.Signature `json:"signatures"`
}

type IntegrationService interface {
	FindNeighbours(uid string, lat, lon float64) ([]Neighbour, error)
	SetReadyStatus(uid string, ready bool) (*entities.FarmerProfile, error)
	ReadyStatus(uid string) (bool, *time.Time, error)
	CreateRequest(uid string, in CreateRequestInput) (string, error)
	ListRequests(uid string) ([]RequestView, error)
	Respond(uid, requestID, action string) (RespondResult, error)
	Sign(uid string, in SignInput) (SignResult, error)
	SignatureStatus(uid, requestID string) (SignStatus, error)
}
