package controller

import "github.com/labstack/echo/v4"

type SupplierController interface {
	ListDocuments(c echo.Context) error
	UploadDocument(c echo.Context) error
	VerificationStatus(c echo.Context) error
}
