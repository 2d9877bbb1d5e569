package controllerImp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"agrilink/pkg/cropprice"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	xf := excelize.NewFile()
	defer xf.Close()
	require.NoError(t, xf.SetSheetName("Sheet1", "coffee"))
	require.NoError(t, xf.SetCellValue("coffee", "A1", "Month"))
	require.NoError(t, xf.SetCellValue("coffee", "B1", "Price"))
	for i := 0; i < 6; i++ {
		require.NoError(t, xf.SetCellValue("coffee",
			fmt.Sprintf("A%d", i+2), fmt.Sprintf("2024-%02d-01", i+1)))
		require.NoError(t, xf.SetCellValue("coffee",
			fmt.Sprintf("B%d", i+2), 200+float64(i)*5))
	}
	path := filepath.Join(t.TempDir(), "prices.xlsx")
	require.NoError(t, xf.SaveAs(path))

	store, err := cropprice.LoadWorkbook(path)
	require.NoError(t, err)

	e := echo.New()
	ctrl := New(store, cropprice.NewMockPredictor())
	e.GET("/api/crop-prices/crops", ctrl.Crops)
	e.POST("/api/crop-prices/historical", ctrl.Historical)
	e.POST("/api/crop-prices/predict", ctrl.Predict)
	return httptest.NewServer(e)
}

func TestCropsRoute(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/crop-prices/crops")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Crops []cropprice.CropOption `json:"crops"`
		Total int                    `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "coffee", body.Crops[0].Value)
}

func TestHistoricalRoute(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/crop-prices/historical",
		"application/json", strings.NewReader(`{"crop":"coffee","months":24}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var h cropprice.History
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&h))
	assert.Equal(t, "coffee", h.Crop)
	assert.Equal(t, 6, h.DataPoints)
}

func TestHistoricalUnknownCropIs404(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/crop-prices/historical",
		"application/json", strings.NewReader(`{"crop":"areca"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPredictRoute(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/crop-prices/predict",
		"application/json", strings.NewReader(`{"crop":"coffee"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var f cropprice.Forecast
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&f))
	require.Len(t, f.Predictions, 3)
	require.Len(t, f.ConfidenceIntervals, 3)
	assert.InDelta(t, f.Predictions[0]*0.8, f.ConfidenceIntervals[0].Lower, 0.001)
	assert.InDelta(t, f.Predictions[0]*1.2, f.ConfidenceIntervals[0].Upper, 0.001)
}

func TestPredictMissingCropIs400(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/crop-prices/predict",
		"application/json", strings.NewReader(`{"months":3}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
