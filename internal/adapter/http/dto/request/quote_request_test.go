package request

import (
	"errors"
	"testing"
)

func TestQuoteItemRequest_ResolveType(t *testing.T) {
	cases := []struct {
		in   string
		want string
		err  bool
	}{
		{in: "catalog", want: ItemTypeCatalog},
		{in: " Labor ", want: ItemTypeLabor},
		{in: "CUSTOM", want: ItemTypeCustom},
		{in: "material", err: true},
		{in: "", err: true},
	}
	for _, tc := range cases {
		got, err := QuoteItemRequest{Type: tc.in}.ResolveType()
		if tc.err {
			if !errors.Is(err, ErrInvalidItemType) {
				t.Fatalf("%q: expected ErrInvalidItemType, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestQuoteRatesRequest_ResolveRates(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	t.Run("all four present", func(t *testing.T) {
		r, err := QuoteRatesRequest{
			OverheadPercent: f(10),
			MarkupPercent:   f(40),
			DiscountPercent: f(0),
			TaxPercent:      f(5),
		}.ResolveRates()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.MarkupPercent != 40 || r.DiscountPercent != 0 {
			t.Fatalf("unexpected rates: %+v", r)
		}
	})

	t.Run("missing field rejected", func(t *testing.T) {
		_, err := QuoteRatesRequest{
			OverheadPercent: f(10),
			MarkupPercent:   f(40),
			TaxPercent:      f(5),
		}.ResolveRates()
		if !errors.Is(err, ErrMissingRate) {
			t.Fatalf("expected ErrMissingRate, got %v", err)
		}
	})
}
