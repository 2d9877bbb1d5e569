package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/audit"
	"agrilink/pkg/supplier/controller"
	"agrilink/pkg/supplier/repository"
)

type SupplierCtrl struct {
	repo repository.SupplierRepository
	aud  *audit.Logger
}

func New(repo repository.SupplierRepository, aud *audit.Logger) controller.SupplierController {
	return &SupplierCtrl{repo: repo, aud: aud}
}

func uid(c echo.Context) string {
	v, _ := c.Get("uid").(string)
	return v
}

func verificationView(u *entities.User) map[string]any {
	return map[string]any{
		"documents_uploaded":  u.DocumentsUploaded,
		"verification_status": u.VerificationStatus,
		"verified_at":         u.VerifiedAt,
		"rejection_reason":    u.RejectionReason,
	}
}

func (h *SupplierCtrl) ListDocuments(c echo.Context) error {
	u, err := h.repo.UserByID(uid(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "supplier not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	docs, err := h.repo.DocumentsBySupplier(u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"documents":           docs,
		"verification_status": verificationView(u),
	})
}

type uploadDocumentReq struct {
	Type     string `json:"type"` // gst|license|identity
	FileName string `json:"file_name"`
}

// UploadDocument records a verification document. The file itself is
// handled by the upload pipeline; re-uploading puts the supplier back
// in the admin's pending queue.
func (h *SupplierCtrl) UploadDocument(c echo.Context) error {
	var req uploadDocumentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Type != "gst" && req.Type != "license" && req.Type != "identity" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "type must be gst, license or identity"})
	}
	if req.FileName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file name required"})
	}

	u, err := h.repo.UserByID(uid(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "supplier not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}

	if err := h.repo.CreateDocument(&entities.SupplierDocument{
		SupplierID: u.ID,
		Type:       req.Type,
		FileName:   req.FileName,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}

	u.DocumentsUploaded = true
	u.VerificationStatus = entities.VerificationPending
	if err := h.repo.UpdateUser(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}

	h.aud.Log(c.Request().Context(), audit.Entry{
		Actor:        audit.Actor{UserID: u.ID, Name: u.CompanyName, Role: entities.RoleSupplier},
		Action:       entities.ActionUpload,
		ResourceType: "supplier_document",
		ResourceID:   u.ID,
		ResourceName: req.Type,
		Client:       audit.ClientInfo{IP: c.RealIP(), UserAgent: c.Request().UserAgent()},
	})
	return c.JSON(http.StatusOK, map[string]any{
		"message":             "Documents uploaded successfully. Awaiting admin verification.",
		"documents_uploaded":  true,
		"verification_status": entities.VerificationPending,
	})
}

func (h *SupplierCtrl) VerificationStatus(c echo.Context) error {
	u, err := h.repo.UserByID(uid(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "supplier not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"verification_status": verificationView(u)})
}
