package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/product/controller"
	"agrilink/pkg/product/repository"
)

type ProductCtrl struct {
	repo repository.ProductRepository
}

func New(repo repository.ProductRepository) controller.ProductController {
	return &ProductCtrl{repo: repo}
}

func uid(c echo.Context) string {
	v, _ := c.Get("uid").(string)
	return v
}

type createReq struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url"`
}

func (h *ProductCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" || req.Category == "" || req.Price <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name, category and positive price required"})
	}

	supplier, err := h.repo.SupplierByID(uid(c))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "supplier not found"})
	}
	// unverified suppliers cannot list products on the marketplace
	if supplier.VerificationStatus != entities.VerificationVerified {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "supplier not verified"})
	}

	p := &entities.Product{
		SupplierID:  uid(c),
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Unit:        req.Unit,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		Active:      true,
	}
	if err := h.repo.Create(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductCtrl) ListMine(c echo.Context) error {
	list, err := h.repo.ListBySupplier(uid(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"products": list})
}

type stockReq struct {
	Stock  *int  `json:"stock"`
	Active *bool `json:"active"`
}

func (h *ProductCtrl) QuickUpdateStock(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req stockReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.repo.FindByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	if p.SupplierID != uid(c) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "not your product"})
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "stock must be >= 0"})
		}
		p.Stock = *req.Stock
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	if err := h.repo.Update(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductCtrl) Browse(c echo.Context) error {
	list, err := h.repo.ListMarketplace(c.QueryParam("category"), c.QueryParam("q"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"products": list})
}

func (h *ProductCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.repo.FindByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	if !p.Active {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, p)
}
