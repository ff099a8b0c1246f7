package config

import (
	"log"
	"os"
	"strconv"

	"github.com/bozone403/afterhourshvac-sub001/internal/domain/pricing"
)

const (
	defaultPort            = "8080"
	defaultMultipliersPath = "./config/multipliers.json"
	defaultCatalogPath     = "./config/catalog.json"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Port            string
	MultipliersPath string
	CatalogPath     string
	DefaultRates    pricing.Rates
}

// Load reads environment variables and returns a populated Config. Local dev
// values come from .env via the godotenv autoload import in main.
func Load() Config {
	cfg := Config{
		Port:            getenvDefault("PORT", defaultPort),
		MultipliersPath: getenvDefault("PRICING_MULTIPLIERS_PATH", defaultMultipliersPath),
		CatalogPath:     getenvDefault("PRICING_CATALOG_PATH", defaultCatalogPath),
		DefaultRates: pricing.Rates{
			OverheadPercent: getenvFloat("DEFAULT_OVERHEAD_PERCENT", 10),
			MarkupPercent:   getenvFloat("DEFAULT_MARKUP_PERCENT", 40),
			DiscountPercent: getenvFloat("DEFAULT_DISCOUNT_PERCENT", 0),
			TaxPercent:      getenvFloat("DEFAULT_TAX_PERCENT", 5),
		},
	}
	return cfg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[config] %s=%q is not a number; using %v", key, v, def)
		return def
	}
	return f
}
