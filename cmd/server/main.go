package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"agrilink/config"
	"agrilink/database"
	"agrilink/router"

	"agrilink/pkg/audit"
	"agrilink/pkg/blockchain"

	authCtrlImp "agrilink/pkg/auth/controllerImp"
	authRepoImp "agrilink/pkg/auth/repositoryImp"
	authSvcImp "agrilink/pkg/auth/serviceImp"

	farmerCtrlImp "agrilink/pkg/farmer/controllerImp"
	farmerRepoImp "agrilink/pkg/farmer/repositoryImp"

	liCtrlImp "agrilink/pkg/landintegration/controllerImp"
	liRepoImp "agrilink/pkg/landintegration/repositoryImp"
	liSvcImp "agrilink/pkg/landintegration/serviceImp"

	chainCtrlImp "agrilink/pkg/blockchain/controllerImp"

	productCtrlImp "agrilink/pkg/product/controllerImp"
	productRepoImp "agrilink/pkg/product/repositoryImp"

	orderCtrlImp "agrilink/pkg/order/controllerImp"
	orderRepoImp "agrilink/pkg/order/repositoryImp"
	orderSvcImp "agrilink/pkg/order/serviceImp"

	schemeCtrlImp "agrilink/pkg/scheme/controllerImp"
	schemeRepoImp "agrilink/pkg/scheme/repositoryImp"
	schemeSvcImp "agrilink/pkg/scheme/serviceImp"

	supplierCtrlImp "agrilink/pkg/supplier/controllerImp"
	supplierRepoImp "agrilink/pkg/supplier/repositoryImp"

	"agrilink/pkg/cropprice"
	cropPriceCtrlImp "agrilink/pkg/cropprice/controllerImp"

	adminCtrlImp "agrilink/pkg/admin/controllerImp"
	adminRepoImp "agrilink/pkg/admin/repositoryImp"
	adminSvcImp "agrilink/pkg/admin/serviceImp"

	healthCtrlImp "agrilink/pkg/health/controllerImp"
)

func main() {
	cfg := config.Load()

	db := database.OpenSQLite(cfg.DBPath)

	auditLog := audit.NewLogger(db)
	if err := db.Use(audit.NewPlugin(auditLog)); err != nil {
		log.Fatalf("audit plugin: %v", err)
	}

	// the automatic-upload route serves the ledger CHAIN_MODE selects;
	// the integration workflow reaches it over HTTP so the hop, timeout
	// and failure recording behave the same in both modes
	ledger := blockchain.ForMode(cfg.ChainMode, cfg.ChainUpstream)
	chainCtrl := chainCtrlImp.New(ledger)
	uploader := blockchain.NewHTTP(cfg.ChainEndpoint)

	authRepo := authRepoImp.New(db)
	authSvc := authSvcImp.New(authRepo)
	authCtrl := authCtrlImp.New(authSvc, auditLog, cfg.JWTSecret, cfg.SessionHours, cfg.DevExposeOTP)

	if cfg.AdminPassword != "" {
		if err := authSvc.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatalf("[auth] seed admin: %v", err)
		}
	}

	farmerCtrl := farmerCtrlImp.New(farmerRepoImp.New(db), auditLog)

	liSvc := liSvcImp.New(liRepoImp.New(db), uploader)
	liCtrl := liCtrlImp.New(liSvc, auditLog)

	productCtrl := productCtrlImp.New(productRepoImp.New(db))

	orderSvc := orderSvcImp.New(orderRepoImp.New(db))
	orderCtrl := orderCtrlImp.New(orderSvc, auditLog)

	schemeSvc := schemeSvcImp.New(schemeRepoImp.New(db))
	schemeCtrl := schemeCtrlImp.New(schemeSvc)

	supplierCtrl := supplierCtrlImp.New(supplierRepoImp.New(db), auditLog)

	prices, err := cropprice.LoadWorkbook(cfg.CropPriceFile)
	if err != nil {
		log.Printf("[prices] workbook warn: %v", err)
		prices = cropprice.NewStore()
	}
	cropPriceCtrl := cropPriceCtrlImp.New(prices, cropprice.NewMockPredictor())

	adminSvc := adminSvcImp.NewAdminService(adminRepoImp.NewAdminRepo(db))
	adminCtrl := adminCtrlImp.New(adminSvc, auditLog)

	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())

	r := router.New(e, cfg.JWTSecret,
		authCtrl, farmerCtrl, liCtrl, chainCtrl,
		productCtrl, orderCtrl, schemeCtrl, supplierCtrl, cropPriceCtrl,
		adminCtrl, healthCtrl)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
