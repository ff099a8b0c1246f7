package pricing

// Rates are the four independent percentage parameters of an estimate. Each
// is a plain percentage (10 means 10%). Negative values are rejected; there
// is no upper bound, callers may impose domain limits.
type Rates struct {
	OverheadPercent float64
	MarkupPercent   float64
	DiscountPercent float64
	TaxPercent      float64
}

func (r Rates) validate() error {
	for _, p := range []float64{r.OverheadPercent, r.MarkupPercent, r.DiscountPercent, r.TaxPercent} {
		if p < 0 {
			return ErrInvalidPercentage
		}
	}
	return nil
}

// Totals is the fully itemized result of charge composition. All fields are
// derived; they are recomputed from scratch on every mutation.
type Totals struct {
	MaterialsSubtotal Money
	LaborSubtotal     Money
	CustomSubtotal    Money
	Subtotal          Money
	OverheadAmount    Money
	MarkupAmount      Money
	DiscountAmount    Money
	TaxAmount         Money
	Total             Money
}

// composeTotals applies the charge pipeline in its fixed, auditable order:
// overhead on the raw subtotal, markup on cost-plus-overhead, discount off
// the marked-up price, tax last on the post-discount price. Reordering any
// step changes the result, so nothing here may be rearranged.
func composeTotals(lineItems []LineItem, laborItems []LaborItem, customItems []CustomItem, rates Rates) Totals {
	materials := MoneyZero()
	for _, it := range lineItems {
		materials = materials.Add(it.LineTotal)
	}
	labor := MoneyZero()
	for _, it := range laborItems {
		labor = labor.Add(it.Cost)
	}
	custom := MoneyZero()
	for _, it := range customItems {
		custom = custom.Add(it.Total)
	}

	subtotal := materials.Add(labor).Add(custom)
	overhead := subtotal.Percent(rates.OverheadPercent)
	markupBase := subtotal.Add(overhead)
	markup := markupBase.Percent(rates.MarkupPercent)
	preDiscount := markupBase.Add(markup)
	discount := preDiscount.Percent(rates.DiscountPercent)
	afterDiscount := preDiscount.Sub(discount)
	tax := afterDiscount.Percent(rates.TaxPercent)
	total := afterDiscount.Add(tax)

	return Totals{
		MaterialsSubtotal: materials,
		LaborSubtotal:     labor,
		CustomSubtotal:    custom,
		Subtotal:          subtotal,
		OverheadAmount:    overhead,
		MarkupAmount:      markup,
		DiscountAmount:    discount,
		TaxAmount:         tax,
		Total:             total,
	}
}
