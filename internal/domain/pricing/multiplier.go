package pricing

import "fmt"

// MultiplierTable maps a material category to the cost-to-price multiplier
// used to derive the customer unit price: price = cost / multiplier. A lower
// multiplier means a fatter margin (commodity pipe runs thin, finished
// accessories run fat).
//
// The table is deployment configuration, loaded once at startup and injected.
// A category missing from the table is a configuration gap and surfaces as
// ErrUnknownCategory, never as a silent 1.0 default.

type MultiplierTable map[string]float64

// NewMultiplierTable validates every entry lies in (0, 1].
func NewMultiplierTable(entries map[string]float64) (MultiplierTable, error) {
	t := make(MultiplierTable, len(entries))
	for category, m := range entries {
		if m <= 0 || m > 1 {
			return nil, fmt.Errorf("category %q: multiplier %v out of range (0,1]: %w", category, m, ErrInvalidMultiplier)
		}
		t[category] = m
	}
	return t, nil
}

// Categories returns the known category names.
func (t MultiplierTable) Categories() []string {
	out := make([]string, 0, len(t))
	for c := range t {
		out = append(out, c)
	}
	return out
}

func (t MultiplierTable) Has(category string) bool {
	_, ok := t[category]
	return ok
}

// Resolve derives the customer-facing unit price for a catalog item.
//
// When override is non-nil it replaces the table lookup entirely for this
// item; overrides are validated to the same (0,1] range, so a price below
// cost is unrepresentable. Returns the price and the multiplier applied.
func (t MultiplierTable) Resolve(category string, unitCost float64, override *float64) (Money, float64, error) {
	if unitCost < 0 {
		return Money{}, 0, fmt.Errorf("unit cost %v: %w", unitCost, ErrInvalidUnitCost)
	}

	var m float64
	if override != nil {
		m = *override
	} else {
		var ok bool
		m, ok = t[category]
		if !ok {
			return Money{}, 0, fmt.Errorf("category %q: %w", category, ErrUnknownCategory)
		}
	}
	if m <= 0 || m > 1 {
		return Money{}, 0, fmt.Errorf("multiplier %v out of range (0,1]: %w", m, ErrInvalidMultiplier)
	}

	return MoneyFromFloat(unitCost).DivFloat(m), m, nil
}
