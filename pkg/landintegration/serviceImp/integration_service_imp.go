package serviceImp

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/blockchain"
	repo "agrilink/pkg/landintegration/repository"
	"agrilink/pkg/landintegration/service"
)

// maxNeighbourDistanceM bounds the neighbour scan: adjoining parcels only.
const maxNeighbourDistanceM = 500.0

type integrationSvc struct {
	r        repo.IntegrationRepository
	uploader blockchain.Uploader
}

func New(r repo.IntegrationRepository, u blockchain.Uploader) service.IntegrationService {
	return &integrationSvc{r: r, uploader: u}
}

func (s *integrationSvc) FindNeighbours(uid string, lat, lon float64) ([]service.Neighbour, error) {
	ready, err := s.r.ReadyVerifiedFarmers(uid)
	if err != nil {
		return nil, err
	}
	if len(ready) == 0 {
		return []service.Neighbour{}, nil
	}

	byUser := make(map[string]*entities.FarmerProfile, len(ready))
	ids := make([]string, 0, len(ready))
	for i := range ready {
		byUser[ready[i].UserID] = &ready[i]
		ids = append(ids, ready[i].UserID)
	}

	lands, err := s.r.CompletedLandsByUsers(ids)
	if err != nil {
		return nil, err
	}

	// linear scan; the ready set is small enough that no spatial index
	// is warranted
	neighbours := []service.Neighbour{}
	for _, land := range lands {
		if land.CentroidLatitude == 0 && land.CentroidLongitude == 0 {
			continue
		}
		d := Haversine(lat, lon, land.CentroidLatitude, land.CentroidLongitude)
		if d > maxNeighbourDistanceM {
			continue
		}
		p, ok := byUser[land.UserID]
		if !ok {
			continue
		}
		neighbours = append(neighbours, service.Neighbour{
			UserID:            land.UserID,
			UserName:          p.DisplayName(),
			LandID:            land.ID,
			SizeInAcres:       land.SizeInAcres,
			CentroidLatitude:  land.CentroidLatitude,
			CentroidLongitude: land.CentroidLongitude,
			Distance:          d,
		})
	}
	sort.Slice(neighbours, func(i, j int) bool { return neighbours[i].Distance < neighbours[j].Distance })
	return neighbours, nil
}

func (s *integrationSvc) SetReadyStatus(uid string, ready bool) (*entities.FarmerProfile, error) {
	var at *time.Time
	if ready {
		now := time.Now()
		at = &now
	}
	p, err := s.r.SetReady(uid, ready, at)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrProfileNotFound
	}
	return p, err
}

func (s *integrationSvc) ReadyStatus(uid string) (bool, *time.Time, error) {
	p, err := s.r.ProfileByUser(uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil, nil
	}
	if err != nil {
		return false, nil, err
	}
	return p.ReadyToIntegrate, p.ReadyToIntegrateDate, nil
}

func (s *integrationSvc) CreateRequest(uid string, in service.CreateRequestInput) (string, error) {
	if in.TargetUserID == "" || in.TargetLandID == "" {
		return "", service.ErrTargetLandNotFound
	}
	if !in.StartDate.Before(in.EndDate) {
		return "", service.ErrBadPeriod
	}

	requestingLand, err := s.r.CompletedLandByUser(uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", service.ErrLandNotProcessed
	}
	if err != nil {
		return "", err
	}

	targetLand, err := s.r.CompletedLandByIDAndUser(in.TargetLandID, in.TargetUserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", service.ErrTargetLandNotFound
	}
	if err != nil {
		return "", err
	}

	// read-then-write duplicate check, no transaction: two concurrent
	// requests between the same pair can still race past this (known
	// gap kept from the original workflow)
	existing, err := s.r.FindActiveBetween(uid, in.TargetUserID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", service.ErrDuplicateRequest
	}

	requestingRatio, targetRatio := contributionRatios(requestingLand.SizeInAcres, targetLand.SizeInAcres)
	totalSize := requestingLand.SizeInAcres + targetLand.SizeInAcres

	li := &entities.LandIntegration{
		ID:             uuid.NewString(),
		RequestingUser: uid,
		TargetUser:     in.TargetUserID,
		Status:         entities.IntegrationPending,
		RequestDate:    time.Now(),
		Period:         entities.IntegrationPeriod{StartDate: in.StartDate, EndDate: in.EndDate},
		LandDetails: entities.IntegrationLandDetails{
			RequestingUser: entities.PartyLand{
				LandID:            requestingLand.ID,
				SizeInAcres:       requestingLand.SizeInAcres,
				ContributionRatio: requestingRatio,
				CentroidLatitude:  requestingLand.CentroidLatitude,
				CentroidLongitude: requestingLand.CentroidLongitude,
			},
			TargetUser: entities.PartyLand{
				LandID:            targetLand.ID,
				SizeInAcres:       targetLand.SizeInAcres,
				ContributionRatio: targetRatio,
				CentroidLatitude:  targetLand.CentroidLatitude,
				CentroidLongitude: targetLand.CentroidLongitude,
			},
			TotalIntegratedSize: totalSize,
			Coordinates:         combineCoordinates(requestingLand, targetLand),
		},
		FinancialAgreement: entities.FinancialAgreement{
			RequestingUserContribution: requestingRatio,
			TargetUserContribution:     targetRatio,
			ProfitSharingRatio: entities.ProfitSharingRatio{
				RequestingUser: requestingRatio,
				TargetUser:     targetRatio,
			},
		},
	}
	if err := s.r.Create(li); err != nil {
		return "", err
	}
	return li.ID, nil
}

// contributionRatios returns each party's percentage share of the
// combined acreage, 50/50 when both parcels report zero size.
func contributionRatios(requestingAcres, targetAcres float64) (float64, float64) {
	total := requestingAcres + targetAcres
	if total <= 0 {
		return 50, 50
	}
	return requestingAcres / total * 100, targetAcres / total * 100
}

// combineCoordinates concatenates both vertex lists and averages the
// centroids. This is a field-level union, not a polygon merge.
func combineCoordinates(a, b *entities.LandDetails) entities.IntegrationCoordinates {
	vertices := make([]entities.Vertex, 0, len(a.Vertices)+len(b.Vertices))
	vertices = append(vertices, a.Vertices...)
	vertices = append(vertices, b.Vertices...)
	return entities.IntegrationCoordinates{
		Vertices:          vertices,
		CentroidLatitude:  (a.CentroidLatitude + b.CentroidLatitude) / 2,
		CentroidLongitude: (a.CentroidLongitude + b.CentroidLongitude) / 2,
	}
}

func (s *integrationSvc) ListRequests(uid string) ([]service.RequestView, error) {
	requests, err := s.r.ListByUser(uid)
	if err != nil {
		return nil, err
	}

	otherIDs := make([]string, 0, len(requests))
	for _, r := range requests {
		otherIDs = append(otherIDs, r.OtherParty(uid))
	}
	profiles, err := s.r.ProfilesByUsers(otherIDs)
	if err != nil {
		return nil, err
	}
	byUser := make(map[string]*entities.FarmerProfile, len(profiles))
	for i := range profiles {
		byUser[profiles[i].UserID] = &profiles[i]
	}

	views := make([]service.RequestView, 0, len(requests))
	for _, r := range requests {
		v := service.RequestView{
			LandIntegration:  r,
			IsRequestingUser: r.RequestingUser == uid,
			OtherUserName:    "Unknown Farmer",
		}
		if p, ok := byUser[r.OtherParty(uid)]; ok {
			v.OtherUserName = p.DisplayName()
			v.OtherUserContact = p.ContactNumber
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *integrationSvc) Respond(uid, requestID, action string) (service.RespondResult, error) {
	if action != "accept" && action != "reject" {
		return service.RespondResult{}, service.ErrBadAction
	}

	li, err := s.r.FindByID(requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.RespondResult{}, service.ErrRequestNotFound
	}
	if err != nil {
		return service.RespondResult{}, err
	}
	if li.TargetUser != uid {
		return service.RespondResult{}, service.ErrNotTargetUser
	}
	if li.Status != entities.IntegrationPending {
		return service.RespondResult{}, service.ErrNotPending
	}

	now := time.Now()
	li.ResponseDate = &now
	if action == "reject" {
		li.Status = entities.IntegrationRejected
		if err := s.r.Update(li); err != nil {
			return service.RespondResult{}, err
		}
		return service.RespondResult{Accepted: false}, nil
	}

	li.Status = entities.IntegrationAccepted

	requestingName, targetName := s.partyNames(li)
	content := renderAgreement(li, requestingName, targetName)
	li.AgreementDocument = fmt.Sprintf("/agreements/%s.pdf", li.ID)
	if err := s.r.Update(li); err != nil {
		return service.RespondResult{}, err
	}

	// the pair is now integrated; take both out of the matching pool
	if err := s.r.ClearReady([]string{li.RequestingUser, li.TargetUser}); err != nil {
		return service.RespondResult{}, err
	}

	return service.RespondResult{
		Accepted:          true,
		AgreementDocument: li.AgreementDocument,
		AgreementContent:  content,
	}, nil
}

func (s *integrationSvc) partyNames(li *entities.LandIntegration) (string, string) {
	requestingName, targetName := "Farmer", "Farmer"
	if p, err := s.r.ProfileByUser(li.RequestingUser); err == nil {
		requestingName = p.DisplayName()
	}
	if p, err := s.r.ProfileByUser(li.TargetUser); err == nil {
		targetName = p.DisplayName()
	}
	return requestingName, targetName
}

func (s *integrationSvc) Sign(uid string, in service.SignInput) (service.SignResult, error) {
	li, err := s.r.FindByID(in.RequestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.SignResult{}, service.ErrRequestNotFound
	}
	if err != nil {
		return service.SignResult{}, err
	}
	if !li.IsParty(uid) {
		return service.SignResult{}, service.ErrNotParty
	}

	profile, err := s.r.ProfileByUser(uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.SignResult{}, service.ErrProfileNotFound
	}
	if err != nil {
		return service.SignResult{}, err
	}

	// Password re-confirmation is part of the API contract but is not
	// checked against anything yet; the stored profile has no password
	// hash of its own.
	_ = in.Password

	if li.SignedBy(uid) {
		return service.SignResult{}, service.ErrAlreadySigned
	}

	now := time.Now()
	sig := entities.Signature{
		UserID:        uid,
		UserName:      profile.DisplayName(),
		SignatureHash: signatureHash(uid, in.AgreementContent, now),
		SignedAt:      now,
		IPAddress:     in.IPAddress,
		UserAgent:     in.UserAgent,
	}
	li.Signatures = append(li.Signatures, sig)

	otherSigned := li.SignedBy(li.OtherParty(uid))
	if !otherSigned {
		if err := s.r.Update(li); err != nil {
			return service.SignResult{}, err
		}
		return service.SignResult{SignedBy: sig.UserName, Signatures: li.Signatures}, nil
	}

	// second signature: the agreement is executed regardless of what
	// the notarization call does afterwards
	li.Status = entities.IntegrationCompleted
	li.ExecutionDate = &now
	li.AgreementDocument = fmt.Sprintf("/agreements/%s_signed.pdf", li.ID)
	li.BlockchainUploadStatus = entities.ChainUploadPending
	if err := s.r.Update(li); err != nil {
		return service.SignResult{}, err
	}

	s.uploadToChain(li)
	if err := s.r.Update(li); err != nil {
		return service.SignResult{}, err
	}

	return service.SignResult{
		SignedBy:         sig.UserName,
		FullyExecuted:    true,
		BlockchainStatus: li.BlockchainUploadStatus,
		TransactionHash:  li.BlockchainTransactionHash,
		Signatures:       li.Signatures,
	}, nil
}

func signatureHash(uid, content string, at time.Time) string {
	sum := sha256.Sum256([]byte(uid + content + fmt.Sprintf("%d", at.UnixMilli())))
	return hex.EncodeToString(sum[:])
}

// uploadToChain notarizes the executed agreement and records the
// outcome on the record. Failure never touches the agreement status.
func (s *integrationSvc) uploadToChain(li *entities.LandIntegration) {
	requestingName, targetName := s.partyNames(li)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	result, err := s.uploader.Upload(ctx, blockchain.AgreementData{
		AgreementID:     li.ID,
		Farmer1Name:     requestingName,
		Farmer2Name:     targetName,
		Farmer1LandSize: li.LandDetails.RequestingUser.SizeInAcres,
		Farmer2LandSize: li.LandDetails.TargetUser.SizeInAcres,
		DocumentPath:    li.AgreementDocument,
		BothSigned:      true,
	})
	if err != nil || !result.Success {
		li.BlockchainUploadStatus = entities.ChainUploadFailed
		log.Printf("[chain] agreement %s upload failed: %v %s", li.ID, err, result.Error)
		return
	}

	now := time.Now()
	li.BlockchainUploadStatus = entities.ChainUploadSuccess
	li.BlockchainUploaded = true
	li.BlockchainTransactionHash = result.TransactionHash
	li.BlockchainDocumentCID = result.DocumentCID
	li.BlockchainUploadedAt = &now
	log.Printf("[chain] agreement %s uploaded: %s", li.ID, result.TransactionHash)
}

func (s *integrationSvc) SignatureStatus(uid, requestID string) (service.SignStatus, error) {
	li, err := s.r.FindByID(requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.SignStatus{}, service.ErrRequestNotFound
	}
	if err != nil {
		return service.SignStatus{}, err
	}
	if !li.IsParty(uid) {
		return service.SignStatus{}, service.ErrNotParty
	}
	sigs := li.Signatures
	if sigs == nil {
		sigs = []entities.Signature{}
	}
	return service.SignStatus{
		UserSigned:      li.SignedBy(uid),
		OtherUserSigned: li.SignedBy(li.OtherParty(uid)),
		FullyExecuted:   li.Status == entities.IntegrationCompleted,
		Signatures:      sigs,
	}, nil
}
