package blockchain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockUploadFabricatesIdentifiers(t *testing.T) {
	u := NewMock()
	res, err := u.Upload(context.Background(), AgreementData{
		AgreementID: "agr-1",
		Farmer1Name: "Ravi",
		Farmer2Name: "Shankar",
		BothSigned:  true,
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "agr-1", res.AgreementID)
	assert.Regexp(t, "^0x[0-9a-f]{64}$", res.TransactionHash)
	assert.Regexp(t, "^bafybeig[a-z0-9]{44}$", res.DocumentCID)
	assert.GreaterOrEqual(t, res.BlockNumber, int64(0))
}

func TestMockUploadRequiresBothSignatures(t *testing.T) {
	u := NewMock()
	_, err := u.Upload(context.Background(), AgreementData{AgreementID: "agr-2"})
	require.Error(t, err)
}

func TestMockUploadsAreUnique(t *testing.T) {
	u := NewMock()
	a, err := u.Upload(context.Background(), AgreementData{AgreementID: "x", BothSigned: true})
	require.NoError(t, err)
	b, err := u.Upload(context.Background(), AgreementData{AgreementID: "x", BothSigned: true})
	require.NoError(t, err)
	assert.NotEqual(t, a.TransactionHash, b.TransactionHash)
	assert.NotEqual(t, a.DocumentCID, b.DocumentCID)
}

func TestMockStatus(t *testing.T) {
	st := NewMock().Status()
	assert.Equal(t, "mock", st["mode"])
	assert.Equal(t, true, st["connected"])
}
