// pkg/blockchain/mock.go

package blockchain

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"math/big"
)

type mockUploader struct{}

// NewMock returns the development-mode uploader. It simulates the IPFS
// upload and chain transaction with fabricated identifiers.
func NewMock() Uploader { return &mockUploader{} }

func (m *mockUploader) Upload(ctx context.Context, data AgreementData) (UploadResult, error) {
	if !data.BothSigned {
		return UploadResult{}, errors.New("agreement must be signed by both farmers before upload")
	}
	log.Printf("[chain] [DEV] uploading agreement %s", data.AgreementID)

	blockNum, _ := rand.Int(rand.Reader, big.NewInt(1000000))
	return UploadResult{
		Success:         true,
		TransactionHash: "0x" + randHex(32),
		BlockNumber:     blockNum.Int64(),
		DocumentCID:     mockCID(),
		AgreementID:     data.AgreementID,
	}, nil
}

func (m *mockUploader) Status() map[string]any {
	return map[string]any{"mode": "mock", "connected": true}
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// mockCID fabricates a CIDv1-looking string: bafybeig + 44 base36 chars.
func mockCID() string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	out := make([]byte, 44)
	for i := range out {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		out[i] = alphabet[n.Int64()]
	}
	return "bafybeig" + string(out)
}
