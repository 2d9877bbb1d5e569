package controller

import "github.com/labstack/echo/v4"

type IntegrationController interface {
	FindNeighbours(c echo.Context) error
	SetReadyStatus(c echo.Context) error
	GetReadyStatus(c echo.Context) error
	CreateRequest(c echo.Context) error
	ListRequests(c echo.Context) error
	Respond(c echo.Context) error
	SignAgreement(c echo.Context) error
	SignatureStatus(c echo.Context) error
}
