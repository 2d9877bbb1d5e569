package controllerImp

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"agrilink/pkg/blockchain"
)

type ChainCtrl struct {
	uploader blockchain.Uploader
}

func New(u blockchain.Uploader) *ChainCtrl { return &ChainCtrl{uploader: u} }

// UploadAutomatic is the in-process notarization endpoint called after
// the second signature lands.
func (h *ChainCtrl) UploadAutomatic(c echo.Context) error {
	var req blockchain.AgreementData
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.AgreementID == "" || req.Farmer1Name == "" || req.Farmer2Name == "" ||
		req.Farmer1LandSize <= 0 || req.Farmer2LandSize <= 0 || req.DocumentPath == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing required agreement data"})
	}
	if !req.BothSigned {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "agreement must be signed by both farmers"})
	}

	result, err := h.uploader.Upload(c.Request().Context(), req)
	if err != nil {
		log.Printf("[chain] upload %s failed: %v", req.AgreementID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to upload to blockchain"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":          true,
		"message":          "Agreement successfully uploaded to blockchain",
		"transaction_hash": result.TransactionHash,
		"block_number":     result.BlockNumber,
		"document_cid":     result.DocumentCID,
		"agreement_id":     result.AgreementID,
	})
}

func (h *ChainCtrl) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uploader.Status())
}
