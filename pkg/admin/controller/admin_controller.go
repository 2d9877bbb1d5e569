package controller

import "github.com/labstack/echo/v4"

type AdminController interface {
	ListFarmers(c echo.Context) error
	VerifyFarmer(c echo.Context) error
	ListSuppliers(c echo.Context) error
	DecideSupplier(c echo.Context) error
	Dashboard(c echo.Context) error
	ListActivities(c echo.Context) error
	ExportActivities(c echo.Context) error
}
