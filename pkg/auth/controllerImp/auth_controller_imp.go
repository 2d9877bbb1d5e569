package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"agrilink/entities"
	"agrilink/pkg/audit"
	"agrilink/pkg/auth/controller"
	"agrilink/pkg/auth/service"
	"agrilink/pkg/middleware"
)

type authCtrl struct {
	svc          service.AuthService
	aud          *audit.Logger
	jwtSecret    string
	sessionHours int
	exposeOTP    bool
}

func New(svc service.AuthService, aud *audit.Logger, jwtSecret string, sessionHours int, exposeOTP bool) controller.AuthController {
	return &authCtrl{svc: svc, aud: aud, jwtSecret: jwtSecret, sessionHours: sessionHours, exposeOTP: exposeOTP}
}

type registerFarmerReq struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (h *authCtrl) RegisterFarmer(c echo.Context) error {
	var req registerFarmerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	res, err := h.svc.RegisterFarmer(service.RegisterFarmerInput{
		FullName: req.FullName, Email: req.Email, Phone: req.Phone, Password: req.Password,
	})
	switch {
	case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrEmailTaken):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}

	h.aud.Log(c.Request().Context(), audit.Entry{
		Actor:        audit.Actor{UserID: res.UserID, Name: req.FullName, Role: entities.RoleFarmer},
		Action:       entities.ActionRegister,
		ResourceType: "user",
		ResourceID:   res.UserID,
		Client:       audit.ClientInfo{IP: c.RealIP(), UserAgent: c.Request().UserAgent()},
	})

	out := map[string]any{
		"message": "Farmer registered successfully. OTP has been sent to your email and phone.",
		"user_id": res.UserID,
	}
	if h.exposeOTP {
		out["otp"] = res.OTP
	}
	return c.JSON(http.StatusOK, out)
}

type registerSupplierReq struct {
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	UPIID       string `json:"upi_id"`
	Password    string `json:"password"`
}

func (h *authCtrl) RegisterSupplier(c echo.Context) error {
	var req registerSupplierReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	res, err := h.svc.RegisterSupplier(service.RegisterSupplierInput{
		CompanyName: req.CompanyName, Email: req.Email, UPIID: req.UPIID, Password: req.Password,
	})
	switch {
	case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrEmailTaken):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}

	h.aud.Log(c.Request().Context(), audit.Entry{
		Actor:        audit.Actor{UserID: res.UserID, Name: req.CompanyName, Role: entities.RoleSupplier},
		Action:       entities.ActionRegister,
		ResourceType: "user",
		ResourceID:   res.UserID,
		Client:       audit.ClientInfo{IP: c.RealIP(), UserAgent: c.Request().UserAgent()},
	})

	out := map[string]any{
		"message": "Supplier registered successfully. Verification pending.",
		"user_id": res.UserID,
	}
	if h.exposeOTP {
		out["otp"] = res.OTP
	}
	return c.JSON(http.StatusOK, out)
}

type verifyOTPReq struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (h *authCtrl) VerifyOTP(c echo.Context) error {
	var req verifyOTPReq
	if err := c.Bind(&req); err != nil || req.Email == "" || req.OTP == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email and otp required"})
	}
	err := h.svc.VerifyOTP(req.Email, req.OTP)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrOTPInvalid), errors.Is(err, service.ErrOTPExpired):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "Email verified"})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email and password required"})
	}
	u, err := h.svc.Login(req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}

	ck, err := middleware.IssueSession(u.ID, u.Role, h.jwtSecret, time.Duration(h.sessionHours)*time.Hour)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	c.SetCookie(ck)

	h.aud.Log(c.Request().Context(), audit.Entry{
		Actor:        audit.Actor{UserID: u.ID, Name: u.FullName, Role: u.Role},
		Action:       entities.ActionLogin,
		ResourceType: "user",
		ResourceID:   u.ID,
		Client:       audit.ClientInfo{IP: c.RealIP(), UserAgent: c.Request().UserAgent()},
	})
	return c.JSON(http.StatusOK, map[string]any{"success": true, "uid": u.ID, "role": u.Role})
}

func (h *authCtrl) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "", Path: "/", MaxAge: -1})
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	role, _ := c.Get("role").(string)
	return c.JSON(http.StatusOK, map[string]string{"uid": uid, "role": role})
}
