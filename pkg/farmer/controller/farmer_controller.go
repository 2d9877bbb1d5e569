package controller

import "github.com/labstack/echo/v4"

type FarmerController interface {
	GetProfile(c echo.Context) error
	UpdateProfile(c echo.Context) error
	UploadDocument(c echo.Context) error
	ListLands(c echo.Context) error
}
