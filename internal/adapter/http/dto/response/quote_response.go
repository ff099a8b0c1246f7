package response

import (
	"time"

	"github.com/bozone403/afterhourshvac-sub001/internal/domain/entities"
	"github.com/bozone403/afterhourshvac-sub001/internal/domain/pricing"
)

// Monetary amounts are rendered as fixed two-decimal strings; this is the
// only place engine values are rounded.

type LineItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Unit        string  `json:"unit"`
	UnitCost    float64 `json:"unit_cost"`
	Multiplier  float64 `json:"multiplier"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   string  `json:"unit_price"`
	LineTotal   string  `json:"line_total"`
}

type LaborItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	Rate        float64 `json:"rate"`
	Cost        string  `json:"cost"`
}

type CustomItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    float64 `json:"quantity"`
	Total       string  `json:"total"`
}

type RatesResponse struct {
	OverheadPercent float64 `json:"overhead_percent"`
	MarkupPercent   float64 `json:"markup_percent"`
	DiscountPercent float64 `json:"discount_percent"`
	TaxPercent      float64 `json:"tax_percent"`
}

type TotalsResponse struct {
	MaterialsSubtotal string `json:"materials_subtotal"`
	LaborSubtotal     string `json:"labor_subtotal"`
	CustomSubtotal    string `json:"custom_subtotal"`
	Subtotal          string `json:"subtotal"`
	OverheadAmount    string `json:"overhead_amount"`
	MarkupAmount      string `json:"markup_amount"`
	DiscountAmount    string `json:"discount_amount"`
	TaxAmount         string `json:"tax_amount"`
	Total             string `json:"total"`
}

type QuoteResponse struct {
	ID            string               `json:"id"`
	CustomerName  string               `json:"customer_name"`
	CustomerEmail string               `json:"customer_email,omitempty"`
	JobAddress    string               `json:"job_address,omitempty"`
	Status        string               `json:"status"`
	Rates         RatesResponse        `json:"rates"`
	LineItems     []LineItemResponse   `json:"line_items"`
	LaborItems    []LaborItemResponse  `json:"labor_items"`
	CustomItems   []CustomItemResponse `json:"custom_items"`
	Totals        TotalsResponse       `json:"totals"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	resp := QuoteResponse{
		ID:            q.ID,
		CustomerName:  q.CustomerName,
		CustomerEmail: q.CustomerEmail,
		JobAddress:    q.JobAddress,
		Status:        string(q.Status),
		LineItems:     []LineItemResponse{},
		LaborItems:    []LaborItemResponse{},
		CustomItems:   []CustomItemResponse{},
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
	if q.Estimate == nil {
		return resp
	}

	resp.Rates = RatesResponse{
		OverheadPercent: q.Estimate.Rates.OverheadPercent,
		MarkupPercent:   q.Estimate.Rates.MarkupPercent,
		DiscountPercent: q.Estimate.Rates.DiscountPercent,
		TaxPercent:      q.Estimate.Rates.TaxPercent,
	}
	for _, it := range q.Estimate.LineItems {
		resp.LineItems = append(resp.LineItems, LineItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Category:    it.Category,
			Unit:        it.Unit,
			UnitCost:    it.UnitCost,
			Multiplier:  it.Multiplier,
			Quantity:    it.Quantity,
			UnitPrice:   money(it.UnitPrice),
			LineTotal:   money(it.LineTotal),
		})
	}
	for _, it := range q.Estimate.LaborItems {
		resp.LaborItems = append(resp.LaborItems, LaborItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Hours:       it.Hours,
			Rate:        it.Rate,
			Cost:        money(it.Cost),
		})
	}
	for _, it := range q.Estimate.CustomItems {
		resp.CustomItems = append(resp.CustomItems, CustomItemResponse{
			ID:          it.ID,
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Total:       money(it.Total),
		})
	}
	resp.Totals = TotalsResponse{
		MaterialsSubtotal: money(q.Estimate.Totals.MaterialsSubtotal),
		LaborSubtotal:     money(q.Estimate.Totals.LaborSubtotal),
		CustomSubtotal:    money(q.Estimate.Totals.CustomSubtotal),
		Subtotal:          money(q.Estimate.Totals.Subtotal),
		OverheadAmount:    money(q.Estimate.Totals.OverheadAmount),
		MarkupAmount:      money(q.Estimate.Totals.MarkupAmount),
		DiscountAmount:    money(q.Estimate.Totals.DiscountAmount),
		TaxAmount:         money(q.Estimate.Totals.TaxAmount),
		Total:             money(q.Estimate.Totals.Total),
	}
	return resp
}

func money(m pricing.Money) string {
	return m.StringFixed(2)
}
