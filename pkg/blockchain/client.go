// pkg/blockchain/client.go

package blockchain

import "context"

// AgreementData is the payload notarized for one executed agreement.
type AgreementData struct {
	AgreementID     string  `json:"agreement_id"`
	Farmer1Name     string  `json:"farmer1_name"`
	Farmer2Name     string  `json:"farmer2_name"`
	Farmer1LandSize float64 `json:"farmer1_land_size"`
	Farmer2LandSize float64 `json:"farmer2_land_size"`
	DocumentPath    string  `json:"document_path"`
	BothSigned      bool    `json:"both_signed"`
}

type UploadResult struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transaction_hash,omitempty"`
	BlockNumber     int64  `json:"block_number,omitempty"`
	DocumentCID     string `json:"document_cid,omitempty"`
	AgreementID     string `json:"agreement_id,omitempty"`
	Error           string `json:"error,omitempty"`
}

// Uploader notarizes agreements on a ledger. The mock implementation
// fabricates the hash and CID; nothing in the workflow depends on a
// real chain being reachable.
type Uploader interface {
	Upload(ctx context.Context, data AgreementData) (UploadResult, error)
	Status() map[string]any
}

// ForMode selects the ledger behind the upload route. "real" forwards
// to the configured upstream notarization service; anything else, or a
// missing upstream, falls back to the mock.
func ForMode(mode, upstream string) Uploader {
	if mode == "real" && upstream != "" {
		return NewHTTP(upstream)
	}
	return NewMock()
}
