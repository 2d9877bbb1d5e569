package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"agrilink/entities"
	"agrilink/pkg/audit"
	"agrilink/pkg/supplier/controller"
	repoImp "agrilink/pkg/supplier/repositoryImp"
)

func newController(t *testing.T) (controller.SupplierController, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.SupplierDocument{},
		&entities.AuditLog{},
	))
	require.NoError(t, db.Create(&entities.User{
		ID:                 "sup-1",
		Role:               entities.RoleSupplier,
		CompanyName:        "Malnad Agro Supplies",
		Email:              "agro@example.com",
		VerificationStatus: entities.VerificationRejected,
		RejectionReason:    "gst certificate unreadable",
	}).Error)
	return New(repoImp.New(db), audit.NewLogger(db)), db
}

func doJSON(t *testing.T, handler echo.HandlerFunc, method, body, userID string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", userID)
	require.NoError(t, handler(c))
	return rec
}

func TestUploadDocumentMarksPending(t *testing.T) {
	ctrl, db := newController(t)

	rec := doJSON(t, ctrl.UploadDocument, http.MethodPost,
		`{"type":"gst","file_name":"gst_2024.pdf"}`, "sup-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var u entities.User
	require.NoError(t, db.First(&u, "id = ?", "sup-1").Error)
	assert.True(t, u.DocumentsUploaded)
	// a re-upload after rejection goes back to the admin queue
	assert.Equal(t, entities.VerificationPending, u.VerificationStatus)

	var doc entities.SupplierDocument
	require.NoError(t, db.First(&doc, "supplier_id = ?", "sup-1").Error)
	assert.Equal(t, "gst", doc.Type)
	assert.Equal(t, "gst_2024.pdf", doc.FileName)

	var log entities.AuditLog
	require.NoError(t, db.First(&log, "action = ?", entities.ActionUpload).Error)
	assert.Equal(t, "supplier_document", log.ResourceType)
	assert.Equal(t, "sup-1", log.UserID)
}

func TestUploadDocumentValidation(t *testing.T) {
	ctrl, _ := newController(t)

	rec := doJSON(t, ctrl.UploadDocument, http.MethodPost,
		`{"type":"passport","file_name":"x.pdf"}`, "sup-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, ctrl.UploadDocument, http.MethodPost,
		`{"type":"gst"}`, "sup-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadDocumentUnknownSupplier(t *testing.T) {
	ctrl, _ := newController(t)

	rec := doJSON(t, ctrl.UploadDocument, http.MethodPost,
		`{"type":"gst","file_name":"x.pdf"}`, "nobody")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListDocumentsAndStatusView(t *testing.T) {
	ctrl, _ := newController(t)

	rec := doJSON(t, ctrl.UploadDocument, http.MethodPost,
		`{"type":"license","file_name":"trade_license.pdf"}`, "sup-1")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, ctrl.ListDocuments, http.MethodGet, "", "sup-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Documents          []entities.SupplierDocument `json:"documents"`
		VerificationStatus map[string]any              `json:"verification_status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Documents, 1)
	assert.Equal(t, "license", body.Documents[0].Type)
	assert.Equal(t, true, body.VerificationStatus["documents_uploaded"])
	assert.Equal(t, entities.VerificationPending, body.VerificationStatus["verification_status"])

	rec = doJSON(t, ctrl.VerificationStatus, http.MethodGet, "", "sup-1")
	require.Equal(t, http.StatusOK, rec.Code)
	var status struct {
		VerificationStatus map[string]any `json:"verification_status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, true, status.VerificationStatus["documents_uploaded"])
}
