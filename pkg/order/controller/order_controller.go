package controller

import "github.com/labstack/echo/v4"

type OrderController interface {
	Checkout(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
	Pay(c echo.Context) error
	SupplierList(c echo.Context) error
	SupplierUpdateStatus(c echo.Context) error
}
