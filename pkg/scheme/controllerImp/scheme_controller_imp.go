package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"agrilink/entities"
	"agrilink/pkg/scheme/controller"
	"agrilink/pkg/scheme/service"
)

type SchemeCtrl struct {
	svc service.SchemeService
}

func New(svc service.SchemeService) controller.SchemeController { return &SchemeCtrl{svc: svc} }

func uid(c echo.Context) string {
	v, _ := c.Get("uid").(string)
	return v
}

type ingestReq struct {
	HTML string `json:"html"`
	URL  string `json:"url"`
}

func (h *SchemeCtrl) Ingest(c echo.Context) error {
	var req ingestReq
	if err := c.Bind(&req); err != nil || (req.HTML == "" && req.URL == "") {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "html or url required"})
	}

	var n int
	var err error
	if req.HTML != "" {
		n, err = h.svc.IngestHTML(req.HTML, req.URL)
	} else {
		n, err = h.svc.IngestURL(req.URL)
	}
	if errors.Is(err, service.ErrNoSchemesFound) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "ingested": n})
}

type searchReq struct {
	LandAcres float64  `json:"land_acres"`
	Crops     []string `json:"crops"`
	Category  string   `json:"category"`
}

func (h *SchemeCtrl) Search(c echo.Context) error {
	var req searchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	results, err := h.svc.Search(entities.SchemeProfileData{
		LandAcres: req.LandAcres, Crops: req.Crops, Category: req.Category,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "schemes": results, "count": len(results)})
}

func (h *SchemeCtrl) GetProfiles(c echo.Context) error {
	profiles, err := h.svc.ListProfiles(uid(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": profiles, "count": len(profiles)})
}

type saveProfileReq struct {
	ProfileName   string                     `json:"profile_name"`
	ProfileData   entities.SchemeProfileData `json:"profile_data"`
	SearchResults []entities.Scheme          `json:"search_results"`
	IsDefault     bool                       `json:"is_default"`
}

func (h *SchemeCtrl) SaveProfile(c echo.Context) error {
	var req saveProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.svc.SaveProfile(uid(c), req.ProfileName, req.ProfileData, req.SearchResults, req.IsDefault)
	if errors.Is(err, service.ErrMissingProfile) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": p, "message": "Profile saved successfully"})
}
