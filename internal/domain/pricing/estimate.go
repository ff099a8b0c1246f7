package pricing

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ItemSource is a catalog entry as the engine sees it: the engine does not
// validate catalog contents beyond a non-negative unit cost.
type ItemSource struct {
	Description string
	Category    string
	Unit        string
	UnitCost    float64
}

// LineItem is a catalog-sourced material entry on an estimate. UnitPrice is
// resolved through the multiplier table (or an override) at insertion time
// and frozen; LineTotal is recomputed on every quantity change.
type LineItem struct {
	ID          string
	Description string
	Category    string
	Unit        string
	UnitCost    float64
	Multiplier  float64
	Quantity    float64
	UnitPrice   Money
	LineTotal   Money
}

// LaborItem is a time-based charge.
type LaborItem struct {
	ID          string
	Description string
	Hours       float64
	Rate        float64
	Cost        Money
}

// CustomItem is a free-form charge not drawn from the catalog.
type CustomItem struct {
	ID          string
	Description string
	UnitPrice   float64
	Quantity    float64
	Total       Money
}

type state int

const (
	stateConsistent state = iota
	stateStale
)

// Estimate is the aggregate the calculators operate on. Every mutation
// validates its inputs, applies atomically, and synchronously recomputes all
// derived fields before returning, so callers never observe stale totals.
//
// The engine holds no locks and performs no I/O; embedders with concurrent
// access must serialize mutations themselves.
type Estimate struct {
	LineItems   []LineItem
	LaborItems  []LaborItem
	CustomItems []CustomItem
	Rates       Rates
	Totals      Totals

	table MultiplierTable
	state state
}

// NewEstimate creates an empty, consistent estimate using the given
// multiplier table and starting rates.
func NewEstimate(table MultiplierTable, rates Rates) (*Estimate, error) {
	if err := rates.validate(); err != nil {
		return nil, err
	}
	e := &Estimate{Rates: rates, table: table}
	e.recompute()
	return e, nil
}

// Rehydrate rebuilds an estimate from persisted inputs. Stored items carry
// the multiplier frozen at insertion time, so unit prices are re-derived from
// cost and multiplier and every derived field is recomputed from scratch.
func Rehydrate(table MultiplierTable, rates Rates, lineItems []LineItem, laborItems []LaborItem, customItems []CustomItem) (*Estimate, error) {
	if err := rates.validate(); err != nil {
		return nil, err
	}
	e := &Estimate{
		LineItems:   append([]LineItem(nil), lineItems...),
		LaborItems:  append([]LaborItem(nil), laborItems...),
		CustomItems: append([]CustomItem(nil), customItems...),
		Rates:       rates,
		table:       table,
		state:       stateStale,
	}
	for i := range e.LineItems {
		it := &e.LineItems[i]
		if it.Multiplier <= 0 || it.Multiplier > 1 {
			return nil, fmt.Errorf("item %s: multiplier %v out of range (0,1]: %w", it.ID, it.Multiplier, ErrInvalidMultiplier)
		}
		it.UnitPrice = MoneyFromFloat(it.UnitCost).DivFloat(it.Multiplier)
	}
	e.recompute()
	return e, nil
}

// Consistent reports whether derived fields reflect the current inputs.
// Under normal operation this is always true outside a mutation.
func (e *Estimate) Consistent() bool {
	return e.state == stateConsistent
}

// AddLineItem prices src through the multiplier table (or override) and
// appends it with a fresh id. Quantity must be positive.
func (e *Estimate) AddLineItem(src ItemSource, quantity float64, override *float64) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, fmt.Errorf("quantity %v: %w", quantity, ErrInvalidQuantity)
	}
	unitPrice, multiplier, err := e.table.Resolve(src.Category, src.UnitCost, override)
	if err != nil {
		return LineItem{}, err
	}

	it := LineItem{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(src.Description),
		Category:    src.Category,
		Unit:        src.Unit,
		UnitCost:    src.UnitCost,
		Multiplier:  multiplier,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}
	e.state = stateStale
	e.LineItems = append(e.LineItems, it)
	e.recompute()
	return e.LineItems[len(e.LineItems)-1], nil
}

// AddLaborItem appends an hours-times-rate charge. Zero hours is allowed
// (a placeholder row); negative hours or rate is not.
func (e *Estimate) AddLaborItem(description string, hours, rate float64) (LaborItem, error) {
	if hours < 0 {
		return LaborItem{}, fmt.Errorf("hours %v: %w", hours, ErrInvalidQuantity)
	}
	if rate < 0 {
		return LaborItem{}, fmt.Errorf("rate %v: %w", rate, ErrInvalidUnitCost)
	}

	it := LaborItem{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(description),
		Hours:       hours,
		Rate:        rate,
	}
	e.state = stateStale
	e.LaborItems = append(e.LaborItems, it)
	e.recompute()
	return e.LaborItems[len(e.LaborItems)-1], nil
}

// AddCustomItem appends a free-form charge. Quantity must be positive and
// the unit price non-negative.
func (e *Estimate) AddCustomItem(description string, unitPrice, quantity float64) (CustomItem, error) {
	if quantity <= 0 {
		return CustomItem{}, fmt.Errorf("quantity %v: %w", quantity, ErrInvalidQuantity)
	}
	if unitPrice < 0 {
		return CustomItem{}, fmt.Errorf("unit price %v: %w", unitPrice, ErrInvalidUnitCost)
	}

	it := CustomItem{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(description),
		UnitPrice:   unitPrice,
		Quantity:    quantity,
	}
	e.state = stateStale
	e.CustomItems = append(e.CustomItems, it)
	e.recompute()
	return e.CustomItems[len(e.CustomItems)-1], nil
}

// UpdateQuantity replaces the quantity of a line or custom item. Non-positive
// quantities are rejected outright rather than clamped; on any error the
// prior quantity and all totals are left untouched.
func (e *Estimate) UpdateQuantity(id string, quantity float64) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity %v: %w", quantity, ErrInvalidQuantity)
	}
	for i := range e.LineItems {
		if e.LineItems[i].ID == id {
			e.state = stateStale
			e.LineItems[i].Quantity = quantity
			e.recompute()
			return nil
		}
	}
	for i := range e.CustomItems {
		if e.CustomItems[i].ID == id {
			e.state = stateStale
			e.CustomItems[i].Quantity = quantity
			e.recompute()
			return nil
		}
	}
	return fmt.Errorf("item %s: %w", id, ErrItemNotFound)
}

// UpdateLaborHours replaces the hours of a labor item.
func (e *Estimate) UpdateLaborHours(id string, hours float64) error {
	if hours < 0 {
		return fmt.Errorf("hours %v: %w", hours, ErrInvalidQuantity)
	}
	for i := range e.LaborItems {
		if e.LaborItems[i].ID == id {
			e.state = stateStale
			e.LaborItems[i].Hours = hours
			e.recompute()
			return nil
		}
	}
	return fmt.Errorf("item %s: %w", id, ErrItemNotFound)
}

// RemoveItem removes the item with the given id from whichever collection
// holds it. Removing an absent id is an error, not a silent no-op.
func (e *Estimate) RemoveItem(id string) error {
	for i := range e.LineItems {
		if e.LineItems[i].ID == id {
			e.state = stateStale
			e.LineItems = append(e.LineItems[:i], e.LineItems[i+1:]...)
			e.recompute()
			return nil
		}
	}
	for i := range e.LaborItems {
		if e.LaborItems[i].ID == id {
			e.state = stateStale
			e.LaborItems = append(e.LaborItems[:i], e.LaborItems[i+1:]...)
			e.recompute()
			return nil
		}
	}
	for i := range e.CustomItems {
		if e.CustomItems[i].ID == id {
			e.state = stateStale
			e.CustomItems = append(e.CustomItems[:i], e.CustomItems[i+1:]...)
			e.recompute()
			return nil
		}
	}
	return fmt.Errorf("item %s: %w", id, ErrItemNotFound)
}

// SetRates replaces all four percentages at once. Validation happens before
// anything is applied.
func (e *Estimate) SetRates(rates Rates) error {
	if err := rates.validate(); err != nil {
		return err
	}
	e.state = stateStale
	e.Rates = rates
	e.recompute()
	return nil
}

// ItemCount returns the number of items across all three collections.
func (e *Estimate) ItemCount() int {
	return len(e.LineItems) + len(e.LaborItems) + len(e.CustomItems)
}

// recompute rebuilds every derived field from current inputs and returns the
// estimate to the consistent state. It runs inside every mutation; there is
// no deferred or asynchronous recompute path.
func (e *Estimate) recompute() {
	for i := range e.LineItems {
		it := &e.LineItems[i]
		it.LineTotal = it.UnitPrice.MulFloat(it.Quantity)
	}
	for i := range e.LaborItems {
		it := &e.LaborItems[i]
		it.Cost = MoneyFromFloat(it.Rate).MulFloat(it.Hours)
	}
	for i := range e.CustomItems {
		it := &e.CustomItems[i]
		it.Total = MoneyFromFloat(it.UnitPrice).MulFloat(it.Quantity)
	}
	e.Totals = composeTotals(e.LineItems, e.LaborItems, e.CustomItems, e.Rates)
	e.state = stateConsistent
}
