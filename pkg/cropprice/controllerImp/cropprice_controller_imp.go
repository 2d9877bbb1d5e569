package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"agrilink/pkg/cropprice"
	"agrilink/pkg/cropprice/controller"
)

type CropPriceCtrl struct {
	store     *cropprice.Store
	predictor cropprice.Predictor
}

func New(store *cropprice.Store, predictor cropprice.Predictor) controller.CropPriceController {
	return &CropPriceCtrl{store: store, predictor: predictor}
}

func (h *CropPriceCtrl) Crops(c echo.Context) error {
	crops := h.store.Crops()
	return c.JSON(http.StatusOK, map[string]any{"crops": crops, "total": len(crops)})
}

type historicalReq struct {
	Crop   string `json:"crop"`
	Months int    `json:"months"`
}

func (h *CropPriceCtrl) Historical(c echo.Context) error {
	var req historicalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Crop == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop name is required"})
	}
	if req.Months <= 0 {
		req.Months = 24
	}
	hist, err := h.store.Historical(req.Crop, req.Months)
	if errors.Is(err, cropprice.ErrCropNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, hist)
}

type predictReq struct {
	Crop   string `json:"crop"`
	Months int    `json:"months"`
}

func (h *CropPriceCtrl) Predict(c echo.Context) error {
	var req predictReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Crop == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop name is required"})
	}
	if req.Months <= 0 {
		req.Months = 3
	}
	series, err := h.store.Series(req.Crop)
	if errors.Is(err, cropprice.ErrCropNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	forecast, err := h.predictor.Predict(req.Crop, series, req.Months)
	if errors.Is(err, cropprice.ErrNotEnoughData) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, forecast)
}
