package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbErr := ""
	if h.db == nil {
		dbErr = "gorm db is nil"
	} else if sqlDB, err := h.db.DB(); err != nil {
		dbErr = "db.DB(): " + err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbErr = "ping: " + err.Error()
	}

	status, httpStatus := "ok", http.StatusOK
	if dbErr != "" {
		status, httpStatus = "degraded", http.StatusServiceUnavailable
	}

	type check struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}
	return c.JSON(httpStatus, map[string]any{
		"service":    "agrilink",
		"status":     status,
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": check{OK: dbErr == "", Err: dbErr},
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
