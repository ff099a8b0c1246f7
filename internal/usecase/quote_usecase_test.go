package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/bozone403/afterhourshvac-sub001/internal/domain/catalog"
	"github.com/bozone403/afterhourshvac-sub001/internal/domain/entities"
	"github.com/bozone403/afterhourshvac-sub001/internal/domain/pricing"
	mock_interfaces "github.com/bozone403/afterhourshvac-sub001/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testPricingConfig(t *testing.T) (pricing.MultiplierTable, *catalog.Catalog) {
	t.Helper()
	table, err := pricing.NewMultiplierTable(map[string]float64{
		"piping":    0.75,
		"equipment": 0.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cat, err := catalog.New([]catalog.Entry{
		{Description: "1/2in copper pipe", Category: "piping", Unit: "ft", UnitCost: 3},
		{Description: "2-ton condensing unit", Category: "equipment", Unit: "ea", UnitCost: 1450},
	}, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return table, cat
}

func newQuoteUseCase(t *testing.T, repo *mock_interfaces.MockIQuoteRepository) *QuoteUseCase {
	t.Helper()
	table, cat := testPricingConfig(t)
	return NewQuoteUseCase(repo, cat, table, pricing.Rates{OverheadPercent: 10, MarkupPercent: 40, TaxPercent: 5})
}

func pendingQuote(t *testing.T, id string) entities.Quote {
	t.Helper()
	table, _ := testPricingConfig(t)
	est, err := pricing.NewEstimate(table, pricing.Rates{OverheadPercent: 10, MarkupPercent: 40, TaxPercent: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return entities.Quote{ID: id, CustomerName: "Pat", Status: entities.QuoteStatusPending, Estimate: est}
}

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	t.Run("invalid customer name", func(t *testing.T) {
		uc := newQuoteUseCase(t, nil)
		_, err := uc.CreateQuote(context.Background(), "   ", "", "")
		if !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUseCase(t, repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.CustomerName != "Pat" || q.Status != entities.QuoteStatusPending {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.Estimate == nil || !q.Estimate.Consistent() || q.Estimate.ItemCount() != 0 {
					t.Fatalf("expected empty consistent estimate")
				}
				if q.Estimate.Rates.MarkupPercent != 40 {
					t.Fatalf("expected default markup 40, got %v", q.Estimate.Rates.MarkupPercent)
				}
				return q, nil
			},
		)

		q, err := uc.CreateQuote(context.Background(), " Pat ", "pat@example.com", "12 Main St")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.CustomerEmail != "pat@example.com" {
			t.Fatalf("unexpected email: %s", q.CustomerEmail)
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := newQuoteUseCase(t, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUseCase(t, repo)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.GetByID(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUseCase(t, repo)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "q-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_AddCatalogItem(t *testing.T) {
	t.Run("unknown catalog entry", func(t *testing.T) {
		uc := newQuoteUseCase(t, nil)
		_, err := uc.AddCatalogItem(context.Background(), "q-1", "piping", "unobtainium pipe", 1, nil)
		if !errors.Is(err, ErrCatalogItemNotFound) {
			t.Fatalf("expected ErrCatalogItemNotFound, got %v", err)
		}
	})

	t.Run("quote not mutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUseCase(t, repo)

		q := pendingQuote(t, "q-1")
		q.Status = entities.QuoteStatusApproved
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.AddCatalogItem(context.Background(), "q-1", "piping", "1/2in copper pipe", 10, nil)
		if !errors.Is(err, ErrQuoteNotMutable) {
			t.Fatalf("expected ErrQuoteNotMutable, got %v", err)
		}
	})

	t.Run("invalid quantity does not save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUseCase(t, repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote(t, "q-1"), nil)

		_, err := uc.AddCatalogItem(context.Background(), "q-1", "piping", "1/2in copper pipe", 0, nil)
		if !errors.Is(err, pricing.ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("success recomputes and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUseCase(t, repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote(t, "q-1"), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Estimate.ItemCount() != 1 {
					t.Fatalf("expected 1 item, got %d", q.Estimate.ItemCount())
				}
				// 10ft at 3/0.75 = 4/ft => 40; +10% overhead => 44;
				// +40% markup => 61.60; +5% tax => 64.68
				if got := q.Estimate.Totals.Total.StringFixed(2); got != "64.68" {
					t.Fatalf("expected 64.68, got %s", got)
				}
				if !q.Estimate.Consistent() {
					t.Fatalf("expected consistent estimate")
				}
				return q, nil
			},
		)

		if _, err := uc.AddCatalogItem(context.Background(), "q-1", "piping", "1/2in copper pipe", 10, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_ItemMutations(t *testing.T) {
	t.Run("update quantity of unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUseCase(t, repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote(t, "q-1"), nil)

		_, err := uc.UpdateItemQuantity(context.Background(), "q-1", "item-x", 2)
		if !errors.Is(err, pricing.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("remove then totals drop to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUseCase(t, repo)

		q := pendingQuote(t, "q-1")
		it, err := q.Estimate.AddCustomItem("permit", 150, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, saved entities.Quote) (entities.Quote, error) {
				if saved.Estimate.ItemCount() != 0 {
					t.Fatalf("expected empty estimate")
				}
				if got := saved.Estimate.Totals.Total.StringFixed(2); got != "0.00" {
					t.Fatalf("expected 0.00, got %s", got)
				}
				return saved, nil
			},
		)

		if _, err := uc.RemoveItem(context.Background(), "q-1", it.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("update rates rejects negatives", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUseCase(t, repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote(t, "q-1"), nil)

		_, err := uc.UpdateRates(context.Background(), "q-1", pricing.Rates{TaxPercent: -1})
		if !errors.Is(err, pricing.ErrInvalidPercentage) {
			t.Fatalf("expected ErrInvalidPercentage, got %v", err)
		}
	})
}

func TestQuoteUseCase_Transitions(t *testing.T) {
	t.Run("approve pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUseCase(t, repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote(t, "q-1"), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Status != entities.QuoteStatusApproved {
					t.Fatalf("expected approved, got %s", q.Status)
				}
				return q, nil
			},
		)

		if _, err := uc.Approve(context.Background(), "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approve non-pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUseCase(t, repo)

		q := pendingQuote(t, "q-1")
		q.Status = entities.QuoteStatusCancelled
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.Approve(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotPending) {
			t.Fatalf("expected ErrQuoteNotPending, got %v", err)
		}
	})

	t.Run("cancel approved quote allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUseCase(t, repo)

		q := pendingQuote(t, "q-1")
		q.Status = entities.QuoteStatusApproved
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, saved entities.Quote) (entities.Quote, error) { return saved, nil },
		)

		res, err := uc.Cancel(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.QuoteStatusCancelled {
			t.Fatalf("expected cancelled, got %s", res.Status)
		}
	})
}
