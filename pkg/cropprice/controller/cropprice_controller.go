package controller

import "github.com/labstack/echo/v4"

type CropPriceController interface {
	Crops(c echo.Context) error
	Historical(c echo.Context) error
	Predict(c echo.Context) error
}
