package controller

import "github.com/labstack/echo/v4"

type AuthController interface {
	RegisterFarmer(c echo.Context) error
	RegisterSupplier(c echo.Context) error
	VerifyOTP(c echo.Context) error
	Login(c echo.Context) error
	Logout(c echo.Context) error
	WhoAmI(c echo.Context) error
}
