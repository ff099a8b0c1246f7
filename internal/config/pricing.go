package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bozone403/afterhourshvac-sub001/internal/domain/catalog"
	"github.com/bozone403/afterhourshvac-sub001/internal/domain/pricing"
)

// PricingConfig is the process-wide pricing configuration: the category
// multiplier table and the material catalog. Both are loaded once at startup,
// validated, and treated as immutable for the process lifetime; changes ship
// via config reload/redeploy, never at request time.
type PricingConfig struct {
	Table   pricing.MultiplierTable
	Catalog *catalog.Catalog
}

// LoadPricing parses and validates the two pricing files. Validation is
// strict: a multiplier outside (0,1], a negative unit cost, or a catalog
// entry in a category the table does not know all fail the load.
func LoadPricing(multipliersPath, catalogPath string) (*PricingConfig, error) {
	table, err := loadMultipliers(multipliersPath)
	if err != nil {
		return nil, fmt.Errorf("multipliers %s: %w", multipliersPath, err)
	}
	cat, err := loadCatalog(catalogPath, table)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", catalogPath, err)
	}
	return &PricingConfig{Table: table, Catalog: cat}, nil
}

func loadMultipliers(path string) (pricing.MultiplierTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries map[string]float64
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	return pricing.NewMultiplierTable(entries)
}

func loadCatalog(path string, table pricing.MultiplierTable) (*catalog.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []catalog.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	return catalog.New(entries, table)
}
