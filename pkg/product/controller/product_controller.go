package controller

import "github.com/labstack/echo/v4"

type ProductController interface {
	// supplier inventory
	Create(c echo.Context) error
	ListMine(c echo.Context) error
	QuickUpdateStock(c echo.Context) error
	// public marketplace
	Browse(c echo.Context) error
	Get(c echo.Context) error
}
