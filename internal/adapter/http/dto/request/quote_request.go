package request

import (
	"errors"
	"strings"

	"github.com/bozone403/afterhourshvac-sub001/internal/domain/pricing"
)

var (
	ErrInvalidItemType = errors.New("invalid item type")
	ErrMissingRate     = errors.New("all four rates are required")
)

// QuoteCreateRequest opens a new quote for a customer.
type QuoteCreateRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	JobAddress    string `json:"job_address"`
}

// QuoteItemRequest adds one item to a quote. Type selects which fields apply:
//   - catalog: category, description, quantity, optional override_multiplier
//   - labor:   description, hours, rate
//   - custom:  description, unit_price, quantity
type QuoteItemRequest struct {
	Type               string   `json:"type" binding:"required"`
	Category           string   `json:"category"`
	Description        string   `json:"description"`
	Quantity           float64  `json:"quantity"`
	OverrideMultiplier *float64 `json:"override_multiplier"`
	Hours              float64  `json:"hours"`
	Rate               float64  `json:"rate"`
	UnitPrice          float64  `json:"unit_price"`
}

const (
	ItemTypeCatalog = "catalog"
	ItemTypeLabor   = "labor"
	ItemTypeCustom  = "custom"
)

func (r QuoteItemRequest) ResolveType() (string, error) {
	switch t := strings.ToLower(strings.TrimSpace(r.Type)); t {
	case ItemTypeCatalog, ItemTypeLabor, ItemTypeCustom:
		return t, nil
	default:
		return "", ErrInvalidItemType
	}
}

// QuoteItemUpdateRequest changes a line/custom item's quantity or a labor
// item's hours.
type QuoteItemUpdateRequest struct {
	Quantity *float64 `json:"quantity"`
	Hours    *float64 `json:"hours"`
}

// QuoteRatesRequest replaces all four percentage parameters at once. Every
// field is required so a partial payload cannot silently zero a rate.
type QuoteRatesRequest struct {
	OverheadPercent *float64 `json:"overhead_percent"`
	MarkupPercent   *float64 `json:"markup_percent"`
	DiscountPercent *float64 `json:"discount_percent"`
	TaxPercent      *float64 `json:"tax_percent"`
}

func (r QuoteRatesRequest) ResolveRates() (pricing.Rates, error) {
	if r.OverheadPercent == nil || r.MarkupPercent == nil || r.DiscountPercent == nil || r.TaxPercent == nil {
		return pricing.Rates{}, ErrMissingRate
	}
	return pricing.Rates{
		OverheadPercent: *r.OverheadPercent,
		MarkupPercent:   *r.MarkupPercent,
		DiscountPercent: *r.DiscountPercent,
		TaxPercent:      *r.TaxPercent,
	}, nil
}
