package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/audit"
	"agrilink/pkg/farmer/controller"
	"agrilink/pkg/farmer/repository"
)

type FarmerCtrl struct {
	repo repository.FarmerRepository
	aud  *audit.Logger
}

func New(repo repository.FarmerRepository, aud *audit.Logger) controller.FarmerController {
	return &FarmerCtrl{repo: repo, aud: aud}
}

func uid(c echo.Context) string {
	v, _ := c.Get("uid").(string)
	return v
}

func (h *FarmerCtrl) GetProfile(c echo.Context) error {
	p, err := h.repo.ProfileByUser(uid(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, p)
}

type updateProfileReq struct {
	VerifiedName        *string `json:"verified_name"`
	KannadaName         *string `json:"kannada_name"`
	AadhaarKannadaName  *string `json:"aadhaar_kannada_name"`
	RTCAddress          *string `json:"rtc_address"`
	Age                 *int    `json:"age"`
	Gender              *string `json:"gender"`
	HomeAddress         *string `json:"home_address"`
	ContactNumber       *string `json:"contact_number"`
	DOB                 *string `json:"dob"`
	LandParcelIdentity  *string `json:"land_parcel_identity"`
	SoilProperties      *string `json:"soil_properties"`
	IrrigationPotential *string `json:"irrigation_potential"`
	CroppingHistory     *string `json:"cropping_history"`
	TotalCultivableArea *string `json:"total_cultivable_area"`
}

func (h *FarmerCtrl) UpdateProfile(c echo.Context) error {
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.repo.ProfileByUser(uid(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}

	if req.VerifiedName != nil {
		p.VerifiedName = *req.VerifiedName
	}
	if req.KannadaName != nil {
		p.KannadaName = *req.KannadaName
	}
	if req.AadhaarKannadaName != nil {
		p.AadhaarKannadaName = *req.AadhaarKannadaName
	}
	if req.RTCAddress != nil {
		p.RTCAddress = *req.RTCAddress
	}
	if req.Age != nil {
		p.Age = *req.Age
	}
	if req.Gender != nil {
		p.Gender = *req.Gender
	}
	if req.HomeAddress != nil {
		p.HomeAddress = *req.HomeAddress
	}
	if req.ContactNumber != nil {
		p.ContactNumber = *req.ContactNumber
	}
	if req.DOB != nil {
		p.DOB = *req.DOB
	}
	if req.LandParcelIdentity != nil {
		p.LandParcelIdentity = *req.LandParcelIdentity
	}
	if req.SoilProperties != nil {
		p.SoilProperties = *req.SoilProperties
	}
	if req.IrrigationPotential != nil {
		p.IrrigationPotential = *req.IrrigationPotential
	}
	if req.CroppingHistory != nil {
		p.CroppingHistory = *req.CroppingHistory
	}
	if req.TotalCultivableArea != nil {
		p.TotalCultivableArea = *req.TotalCultivableArea
	}

	if err := h.repo.SaveProfile(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, p)
}

type uploadDocumentReq struct {
	Type          string `json:"type"` // rtc|aadhaar
	ExtractedText string `json:"extracted_text"`
}

// UploadDocument records a KYC document upload. The file itself is
// handled by the upload pipeline; this endpoint receives the extraction
// output and flips the uploaded flag.
func (h *FarmerCtrl) UploadDocument(c echo.Context) error {
	var req uploadDocumentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Type != "rtc" && req.Type != "aadhaar" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "type must be rtc or aadhaar"})
	}

	p, err := h.repo.ProfileByUser(uid(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}

	now := time.Now()
	rec := entities.DocumentRecord{Uploaded: true, ExtractedText: req.ExtractedText, UploadedAt: &now}
	if req.Type == "rtc" {
		p.Documents.RTC = rec
	} else {
		p.Documents.Aadhaar = rec
	}
	if err := h.repo.SaveProfile(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}

	h.aud.Log(c.Request().Context(), audit.Entry{
		Actor:        audit.Actor{UserID: uid(c), Name: p.DisplayName(), Role: entities.RoleFarmer},
		Action:       entities.ActionUpload,
		ResourceType: "document",
		ResourceID:   uid(c),
		ResourceName: req.Type,
		Client:       audit.ClientInfo{IP: c.RealIP(), UserAgent: c.Request().UserAgent()},
	})
	return c.JSON(http.StatusOK, map[string]any{"success": true, "documents": p.Documents})
}

func (h *FarmerCtrl) ListLands(c echo.Context) error {
	lands, err := h.repo.LandsByUser(uid(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"lands": lands})
}
