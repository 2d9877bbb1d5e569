package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"agrilink/entities"
	"agrilink/pkg/audit"
	"agrilink/pkg/landintegration/controller"
	"agrilink/pkg/landintegration/service"
)

type IntegrationCtrl struct {
	svc service.IntegrationService
	aud *audit.Logger
}

func New(svc service.IntegrationService, aud *audit.Logger) controller.IntegrationController {
	return &IntegrationCtrl{svc: svc, aud: aud}
}

func uid(c echo.Context) string {
	v, _ := c.Get("uid").(string)
	return v
}

func client(c echo.Context) audit.ClientInfo {
	return audit.ClientInfo{IP: c.RealIP(), UserAgent: c.Request().UserAgent()}
}

type findNeighboursReq struct {
	CentroidLatitude  *float64 `json:"centroid_latitude"`
	CentroidLongitude *float64 `json:"centroid_longitude"`
}

func (h *IntegrationCtrl) FindNeighbours(c echo.Context) error {
	var req findNeighboursReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.CentroidLatitude == nil || req.CentroidLongitude == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "centroid coordinates required"})
	}
	neighbours, err := h.svc.FindNeighbours(uid(c), *req.CentroidLatitude, *req.CentroidLongitude)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"neighbours": neighbours})
}

type readyStatusReq struct {
	Ready *bool `json:"ready"`
}

func (h *IntegrationCtrl) SetReadyStatus(c echo.Context) error {
	var req readyStatusReq
	if err := c.Bind(&req); err != nil || req.Ready == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "ready flag required"})
	}
	p, err := h.svc.SetReadyStatus(uid(c), *req.Ready)
	if errors.Is(err, service.ErrProfileNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}

	msg := "Removed from integration list"
	if *req.Ready {
		msg = "Marked as ready to integrate"
	}
	h.aud.Log(c.Request().Context(), audit.Entry{
		Actor:        audit.Actor{UserID: uid(c), Name: p.DisplayName(), Role: entities.RoleFarmer},
		Action:       entities.ActionStatusChange,
		ResourceType: "farmer",
		ResourceID:   uid(c),
		Metadata:     map[string]any{"ready_to_integrate": *req.Ready},
		Client:       client(c),
	})
	return c.JSON(http.StatusOK, map[string]any{
		"success":            true,
		"message":            msg,
		"ready_to_integrate": *req.Ready,
	})
}

func (h *IntegrationCtrl) GetReadyStatus(c echo.Context) error {
	ready, date, err := h.svc.ReadyStatus(uid(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"ready_to_integrate":      ready,
		"ready_to_integrate_date": date,
	})
}

type createRequestReq struct {
	TargetUserID string `json:"target_user_id"`
	TargetLandID string `json:"target_land_id"`
	Period       struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	} `json:"integration_period"`
}

func (h *IntegrationCtrl) CreateRequest(c echo.Context) error {
	var req createRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	start, err1 := time.Parse("2006-01-02", req.Period.StartDate)
	end, err2 := time.Parse("2006-01-02", req.Period.EndDate)
	if req.TargetUserID == "" || req.TargetLandID == "" || err1 != nil || err2 != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "target user, target land and integration period required"})
	}

	id, err := h.svc.CreateRequest(uid(c), service.CreateRequestInput{
		TargetUserID: req.TargetUserID,
		TargetLandID: req.TargetLandID,
		StartDate:    start,
		EndDate:      end,
	})
	switch {
	case errors.Is(err, service.ErrLandNotProcessed):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrTargetLandNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrDuplicateRequest), errors.Is(err, service.ErrBadPeriod):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}

	h.aud.Log(c.Request().Context(), audit.Entry{
		Actor:        audit.Actor{UserID: uid(c), Role: entities.RoleFarmer},
		Action:       entities.ActionSubmit,
		ResourceType: "land_integration",
		ResourceID:   id,
		Metadata:     map[string]any{"target_user": req.TargetUserID},
		Client:       client(c),
	})
	return c.JSON(http.StatusOK, map[string]any{
		"success":    true,
		"message":    "Integration request sent successfully",
		"request_id": id,
	})
}

func (h *IntegrationCtrl) ListRequests(c echo.Context) error {
	requests, err := h.svc.ListRequests(uid(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"requests": requests})
}

type respondReq struct {
	RequestID string `json:"request_id"`
	Action    string `json:"action"`
}

func (h *IntegrationCtrl) Respond(c echo.Context) error {
	var req respondReq
	if err := c.Bind(&req); err != nil || req.RequestID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "request id and action required"})
	}
	res, err := h.svc.Respond(uid(c), req.RequestID, req.Action)
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrNotTargetUser):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrBadAction), errors.Is(err, service.ErrNotPending):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}

	action := entities.ActionReject
	if res.Accepted {
		action = entities.ActionVerify
	}
	h.aud.Log(c.Request().Context(), audit.Entry{
		Actor:        audit.Actor{UserID: uid(c), Role: entities.RoleFarmer},
		Action:       action,
		ResourceType: "land_integration",
		ResourceID:   req.RequestID,
		Metadata:     map[string]any{"action": req.Action},
		Client:       client(c),
	})

	if !res.Accepted {
		return c.JSON(http.StatusOK, map[string]any{
			"success": true,
			"message": "Integration request rejected",
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":            true,
		"message":            "Integration accepted. Agreement generated successfully.",
		"agreement_document": res.AgreementDocument,
		"agreement_content":  res.AgreementContent,
	})
}

type signReq struct {
	RequestID        string `json:"request_id"`
	Password         string `json:"password"`
	AgreementContent string `json:"agreement_content"`
}

func (h *IntegrationCtrl) SignAgreement(c echo.Context) error {
	var req signReq
	if err := c.Bind(&req); err != nil || req.RequestID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "request id required"})
	}
	ci := client(c)
	res, err := h.svc.Sign(uid(c), service.SignInput{
		RequestID:        req.RequestID,
		Password:         req.Password,
		AgreementContent: req.AgreementContent,
		IPAddress:        ci.IP,
		UserAgent:        ci.UserAgent,
	})
	switch {
	case errors.Is(err, service.ErrRequestNotFound), errors.Is(err, service.ErrProfileNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrNotParty):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadySigned):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}

	h.aud.Log(c.Request().Context(), audit.Entry{
		Actor:        audit.Actor{UserID: uid(c), Name: res.SignedBy, Role: entities.RoleFarmer},
		Action:       entities.ActionSubmit,
		ResourceType: "land_integration",
		ResourceID:   req.RequestID,
		Metadata:     map[string]any{"fully_executed": res.FullyExecuted},
		Client:       ci,
	})

	msg := "Agreement signed successfully. Waiting for other party to sign."
	if res.FullyExecuted {
		msg = "Agreement fully executed by both parties."
		if res.TransactionHash != "" {
			msg += " Transaction: " + res.TransactionHash
		}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":                     true,
		"message":                     msg,
		"signed_by":                   res.SignedBy,
		"fully_executed":              res.FullyExecuted,
		"blockchain_upload_status":    res.BlockchainStatus,
		"blockchain_uploaded":         res.BlockchainStatus == entities.ChainUploadSuccess,
		"blockchain_transaction_hash": res.TransactionHash,
		"signatures":                  res.Signatures,
	})
}

func (h *IntegrationCtrl) SignatureStatus(c echo.Context) error {
	requestID := c.QueryParam("request_id")
	if requestID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "request id required"})
	}
	st, err := h.svc.SignatureStatus(uid(c), requestID)
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrNotParty):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":           true,
		"user_signed":       st.UserSigned,
		"other_user_signed": st.OtherUserSigned,
		"fully_executed":    st.FullyExecuted,
		"signatures":        st.Signatures,
	})
}
