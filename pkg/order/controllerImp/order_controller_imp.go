package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"agrilink/entities"
	"agrilink/pkg/audit"
	"agrilink/pkg/order/controller"
	"agrilink/pkg/order/service"
)

type OrderCtrl struct {
	svc service.OrderService
	aud *audit.Logger
}

func New(svc service.OrderService, aud *audit.Logger) controller.OrderController {
	return &OrderCtrl{svc: svc, aud: aud}
}

func uid(c echo.Context) string {
	v, _ := c.Get("uid").(string)
	return v
}

type checkoutReq struct {
	Items []service.ItemInput `json:"items"`
}

func (h *OrderCtrl) Checkout(c echo.Context) error {
	var req checkoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	o, err := h.svc.Checkout(uid(c), req.Items)
	switch {
	case errors.Is(err, service.ErrEmptyOrder), errors.Is(err, service.ErrInsufficientStock):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrProductNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}

	h.aud.Log(c.Request().Context(), audit.Entry{
		Actor:        audit.Actor{UserID: uid(c), Role: entities.RoleFarmer},
		Action:       entities.ActionCreate,
		ResourceType: "order",
		ResourceID:   o.ID,
		Metadata:     map[string]any{"total": o.TotalAmount, "items": len(o.Items)},
		Client:       audit.ClientInfo{IP: c.RealIP(), UserAgent: c.Request().UserAgent()},
	})
	return c.JSON(http.StatusCreated, o)
}

func (h *OrderCtrl) Get(c echo.Context) error {
	o, err := h.svc.Get(uid(c), c.Param("id"))
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrNotYourOrder):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderCtrl) List(c echo.Context) error {
	list, err := h.svc.ListForFarmer(uid(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"orders": list})
}

func (h *OrderCtrl) Pay(c echo.Context) error {
	res, err := h.svc.Pay(uid(c), c.Param("id"))
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrNotYourOrder):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyPaid):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}

	h.aud.Log(c.Request().Context(), audit.Entry{
		Actor:        audit.Actor{UserID: uid(c), Role: entities.RoleFarmer},
		Action:       entities.ActionPayment,
		ResourceType: "order",
		ResourceID:   c.Param("id"),
		Metadata:     map[string]any{"payment_ref": res.PaymentRef, "amount": res.Amount},
		Client:       audit.ClientInfo{IP: c.RealIP(), UserAgent: c.Request().UserAgent()},
	})
	return c.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"payment_ref": res.PaymentRef,
		"amount":      res.Amount,
	})
}

func (h *OrderCtrl) SupplierList(c echo.Context) error {
	list, err := h.svc.ListForSupplier(uid(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"orders": list})
}

type statusReq struct {
	Status string `json:"status"`
}

func (h *OrderCtrl) SupplierUpdateStatus(c echo.Context) error {
	var req statusReq
	if err := c.Bind(&req); err != nil || req.Status == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "status required"})
	}
	o, err := h.svc.UpdateStatus(uid(c), c.Param("id"), req.Status)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrNotYourOrder):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrBadStatus):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}

	h.aud.Log(c.Request().Context(), audit.Entry{
		Actor:        audit.Actor{UserID: uid(c), Role: entities.RoleSupplier},
		Action:       entities.ActionStatusChange,
		ResourceType: "order",
		ResourceID:   o.ID,
		Metadata:     map[string]any{"status": o.Status},
		Client:       audit.ClientInfo{IP: c.RealIP(), UserAgent: c.Request().UserAgent()},
	})
	return c.JSON(http.StatusOK, o)
}
