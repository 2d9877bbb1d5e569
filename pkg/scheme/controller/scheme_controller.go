package controller

import "github.com/labstack/echo/v4"

type SchemeController interface {
	Ingest(c echo.Context) error
	Search(c echo.Context) error
	GetProfiles(c echo.Context) error
	SaveProfile(c echo.Context) error
}
