package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"agrilink/entities"
	"agrilink/pkg/admin/controller"
	"agrilink/pkg/admin/repository"
	"agrilink/pkg/admin/service"
	"agrilink/pkg/audit"
)

type AdminCtrl struct {
	svc service.AdminService
	aud *audit.Logger
}

func New(svc service.AdminService, aud *audit.Logger) controller.AdminController {
	return &AdminCtrl{svc: svc, aud: aud}
}

func uid(c echo.Context) string {
	v, _ := c.Get("uid").(string)
	return v
}

func client(c echo.Context) audit.ClientInfo {
	return audit.ClientInfo{IP: c.RealIP(), UserAgent: c.Request().UserAgent()}
}

func (h *AdminCtrl) ListFarmers(c echo.Context) error {
	farmers, err := h.svc.ListFarmers()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"farmers": farmers, "count": len(farmers)})
}

func (h *AdminCtrl) VerifyFarmer(c echo.Context) error {
	id := c.Param("id")
	u, err := h.svc.VerifyFarmer(id)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "farmer not found"})
	case errors.Is(err, service.ErrNotFarmer):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user is not a farmer"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	h.aud.Log(c.Request().Context(), audit.Entry{
		Actor:        audit.Actor{UserID: uid(c), Role: entities.RoleAdmin},
		Action:       entities.ActionVerify,
		ResourceType: "farmer",
		ResourceID:   u.ID,
		ResourceName: u.FullName,
		Client:       client(c),
	})
	return c.JSON(http.StatusOK, map[string]any{"message": "farmer verified", "user": u})
}

func (h *AdminCtrl) ListSuppliers(c echo.Context) error {
	suppliers, err := h.svc.ListSuppliers()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"suppliers": suppliers, "count": len(suppliers)})
}

type decideSupplierReq struct {
	Decision string `json:"decision"` // verify|reject
	Reason   string `json:"reason"`
}

func (h *AdminCtrl) DecideSupplier(c echo.Context) error {
	var req decideSupplierReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u, err := h.svc.DecideSupplier(c.Param("id"), req.Decision, req.Reason)
	switch {
	case errors.Is(err, service.ErrBadDecision):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "supplier not found"})
	case errors.Is(err, service.ErrNotSupplier):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user is not a supplier"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	action := entities.ActionVerify
	if req.Decision == "reject" {
		action = entities.ActionReject
	}
	h.aud.Log(c.Request().Context(), audit.Entry{
		Actor:        audit.Actor{UserID: uid(c), Role: entities.RoleAdmin},
		Action:       action,
		ResourceType: "supplier",
		ResourceID:   u.ID,
		ResourceName: u.CompanyName,
		Metadata:     map[string]any{"reason": req.Reason},
		Client:       client(c),
	})
	return c.JSON(http.StatusOK, map[string]any{"message": "supplier " + u.VerificationStatus, "user": u})
}

func (h *AdminCtrl) Dashboard(c echo.Context) error {
	stats, err := h.svc.Stats()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, stats)
}

func activityFilter(c echo.Context) repository.ActivityFilter {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return repository.ActivityFilter{
		UserID:       c.QueryParam("user_id"),
		ResourceType: c.QueryParam("resource_type"),
		Limit:        limit,
	}
}

func (h *AdminCtrl) ListActivities(c echo.Context) error {
	logs, err := h.svc.Activities(activityFilter(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"activities": logs, "count": len(logs)})
}

func (h *AdminCtrl) ExportActivities(c echo.Context) error {
	data, err := h.svc.ExportActivities(activityFilter(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	h.aud.Log(c.Request().Context(), audit.Entry{
		Actor:        audit.Actor{UserID: uid(c), Role: entities.RoleAdmin},
		Action:       entities.ActionExport,
		ResourceType: "audit_log",
		Client:       client(c),
	})
	name := "activities-" + time.Now().Format("20060102-150405") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
