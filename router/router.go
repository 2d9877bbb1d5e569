package router

import (
	"github.com/labstack/echo/v4"

	"agrilink/entities"
	"agrilink/pkg/middleware"
)

func New(
	e *echo.Echo,
	jwtSecret string,
	authCtrl interface {
		RegisterFarmer(echo.Context) error
		RegisterSupplier(echo.Context) error
		VerifyOTP(echo.Context) error
		Login(echo.Context) error
		Logout(echo.Context) error
		WhoAmI(echo.Context) error
	},
	farmerCtrl interface {
		GetProfile(echo.Context) error
		UpdateProfile(echo.Context) error
		UploadDocument(echo.Context) error
		ListLands(echo.Context) error
	},
	integrationCtrl interface {
		FindNeighbours(echo.Context) error
		SetReadyStatus(echo.Context) error
		GetReadyStatus(echo.Context) error
		CreateRequest(echo.Context) error
		ListRequests(echo.Context) error
		Respond(echo.Context) error
		SignAgreement(echo.Context) error
		SignatureStatus(echo.Context) error
	},
	chainCtrl interface {
		UploadAutomatic(echo.Context) error
		Status(echo.Context) error
	},
	productCtrl interface {
		Create(echo.Context) error
		ListMine(echo.Context) error
		QuickUpdateStock(echo.Context) error
		Browse(echo.Context) error
		Get(echo.Context) error
	},
	orderCtrl interface {
		Checkout(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		Pay(echo.Context) error
		SupplierList(echo.Context) error
		SupplierUpdateStatus(echo.Context) error
	},
	schemeCtrl interface {
		Ingest(echo.Context) error
		Search(echo.Context) error
		GetProfiles(echo.Context) error
		SaveProfile(echo.Context) error
	},
	supplierCtrl interface {
		ListDocuments(echo.Context) error
		UploadDocument(echo.Context) error
		VerificationStatus(echo.Context) error
	},
	cropPriceCtrl interface {
		Crops(echo.Context) error
		Historical(echo.Context) error
		Predict(echo.Context) error
	},
	adminCtrl interface {
		ListFarmers(echo.Context) error
		VerifyFarmer(echo.Context) error
		ListSuppliers(echo.Context) error
		DecideSupplier(echo.Context) error
		Dashboard(echo.Context) error
		ListActivities(echo.Context) error
		ExportActivities(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api")

	// public
	api.POST("/auth/register-farmer", authCtrl.RegisterFarmer)
	api.POST("/auth/register-supplier", authCtrl.RegisterSupplier)
	api.POST("/auth/verify-otp", authCtrl.VerifyOTP)
	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/logout", authCtrl.Logout)

	api.GET("/marketplace/products", productCtrl.Browse)
	api.GET("/marketplace/products/:id", productCtrl.Get)

	api.GET("/crop-prices/crops", cropPriceCtrl.Crops)
	api.POST("/crop-prices/historical", cropPriceCtrl.Historical)
	api.POST("/crop-prices/predict", cropPriceCtrl.Predict)

	api.GET("/blockchain/status/:tx", chainCtrl.Status)
	api.POST("/blockchain/upload-automatic", chainCtrl.UploadAutomatic)

	// any signed-in user
	session := api.Group("", middleware.Session(jwtSecret))
	session.GET("/auth/whoami", authCtrl.WhoAmI)

	// farmer
	farmer := api.Group("/farmer", middleware.Session(jwtSecret), middleware.RequireRole(entities.RoleFarmer))
	farmer.GET("/profile", farmerCtrl.GetProfile)
	farmer.PUT("/profile", farmerCtrl.UpdateProfile)
	farmer.POST("/documents", farmerCtrl.UploadDocument)
	farmer.GET("/lands", farmerCtrl.ListLands)

	li := farmer.Group("/land-integration")
	li.POST("/find-neighbours", integrationCtrl.FindNeighbours)
	li.POST("/ready-status", integrationCtrl.SetReadyStatus)
	li.GET("/ready-status", integrationCtrl.GetReadyStatus)
	li.POST("/request", integrationCtrl.CreateRequest)
	li.GET("/requests", integrationCtrl.ListRequests)
	li.POST("/respond", integrationCtrl.Respond)
	li.POST("/sign-agreement", integrationCtrl.SignAgreement)
	li.GET("/sign-agreement", integrationCtrl.SignatureStatus)

	farmer.POST("/orders", orderCtrl.Checkout)
	farmer.GET("/orders", orderCtrl.List)
	farmer.GET("/orders/:id", orderCtrl.Get)
	farmer.POST("/orders/:id/pay", orderCtrl.Pay)

	farmer.POST("/schemes/search", schemeCtrl.Search)
	farmer.GET("/schemes/profile", schemeCtrl.GetProfiles)
	farmer.POST("/schemes/profile", schemeCtrl.SaveProfile)

	// supplier
	supplier := api.Group("/supplier", middleware.Session(jwtSecret), middleware.RequireRole(entities.RoleSupplier))
	supplier.POST("/products", productCtrl.Create)
	supplier.GET("/products", productCtrl.ListMine)
	supplier.PATCH("/products/:id/stock", productCtrl.QuickUpdateStock)
	supplier.GET("/orders", orderCtrl.SupplierList)
	supplier.PATCH("/orders/:id", orderCtrl.SupplierUpdateStatus)
	supplier.GET("/documents", supplierCtrl.ListDocuments)
	supplier.POST("/documents", supplierCtrl.UploadDocument)
	supplier.GET("/verification-status", supplierCtrl.VerificationStatus)

	// admin
	admin := api.Group("/admin", middleware.Session(jwtSecret), middleware.RequireRole(entities.RoleAdmin))
	admin.GET("/farmers", adminCtrl.ListFarmers)
	admin.POST("/farmers/:id/verify", adminCtrl.VerifyFarmer)
	admin.GET("/suppliers", adminCtrl.ListSuppliers)
	admin.POST("/suppliers/:id/verify", adminCtrl.DecideSupplier)
	admin.GET("/dashboard/stats", adminCtrl.Dashboard)
	admin.GET("/activities", adminCtrl.ListActivities)
	admin.GET("/activities/export", adminCtrl.ExportActivities)
	admin.POST("/schemes/ingest", schemeCtrl.Ingest)

	return e
}
