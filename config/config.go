package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	Timezone       string
	DBPath         string
	JWTSecret      string
	SessionHours   int
	ChainMode      string // mock|real, selects the ledger behind the upload route
	ChainEndpoint  string // upload endpoint, defaults to own /api/blockchain/upload-automatic
	ChainUpstream  string // real notarization service, required for ChainMode=real
	CropPriceFile  string // market price workbook, one sheet per crop
	AdminEmail     string
	AdminPassword  string
	DevExposeOTP   bool // include OTP in register responses (testing only)
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	port := get("PORT", "8080")
	cfg := AppConfig{
		Port:          port,
		Timezone:      get("TZ", "Asia/Kolkata"),
		DBPath:        get("DB_PATH", "agrilink.db"),
		JWTSecret:     get("JWT_SECRET", "dev-secret-change-me"),
		SessionHours:  24,
		ChainMode:     get("CHAIN_MODE", "mock"),
		ChainEndpoint: get("CHAIN_ENDPOINT", "http://localhost:"+port+"/api/blockchain/upload-automatic"),
		ChainUpstream: get("CHAIN_UPSTREAM", ""),
		CropPriceFile: get("CROP_PRICE_FILE", "AgriLink_Chikkamagaluru_Crop_Prices.xlsx"),
		AdminEmail:    get("ADMIN_EMAIL", "admin@agrilink.local"),
		AdminPassword: get("ADMIN_PASSWORD", ""),
		DevExposeOTP:  get("DEV_EXPOSE_OTP", "false") == "true",
	}
	log.Printf("[cfg] port=%s db=%s chain=%s", cfg.Port, cfg.DBPath, cfg.ChainMode)
	return cfg
}
