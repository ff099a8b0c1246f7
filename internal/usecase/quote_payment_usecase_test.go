package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/bozone403/afterhourshvac-sub001/internal/domain/entities"
	mock_interfaces "github.com/bozone403/afterhourshvac-sub001/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func approvedQuote(t *testing.T, id string) entities.Quote {
	t.Helper()
	q := pendingQuote(t, id)
	if _, err := q.Estimate.AddCustomItem("service call", 100, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q.Status = entities.QuoteStatusApproved
	return q
}

func TestQuotePaymentUseCase_CreateAndApprove(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"pat@example.com"}}`)

	t.Run("invalid quote id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewQuotePaymentUseCase(nil, nil, mock_interfaces.NewMockIPaymentGateway(ctrl))
		_, err := uc.CreateAndApprove(context.Background(), "  ", payload)
		if !errors.Is(err, ErrInvalidPaymentQuoteID) {
			t.Fatalf("expected ErrInvalidPaymentQuoteID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewQuotePaymentUseCase(nil, nil, mock_interfaces.NewMockIPaymentGateway(ctrl))
		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuotePaymentUseCase(nil, quoteRepo, mock_interfaces.NewMockIPaymentGateway(ctrl))
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "q-1", payload)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("quote not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuotePaymentUseCase(nil, quoteRepo, mock_interfaces.NewMockIPaymentGateway(ctrl))
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote(t, "q-1"), nil)

		_, err := uc.CreateAndApprove(context.Background(), "q-1", payload)
		if !errors.Is(err, ErrQuoteNotApproved) {
			t.Fatalf("expected ErrQuoteNotApproved, got %v", err)
		}
	})

	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuotePaymentUseCase(nil, quoteRepo, mock_interfaces.NewMockIPaymentGateway(ctrl))
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuote(t, "q-1"), nil)

		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("amount comes from the quote total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(repo, quoteRepo, gateway)

		// custom 100, +10% overhead, +40% markup, +5% tax = 161.70
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuote(t, "q-1"), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, reqPayload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(reqPayload, &m); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if m["transaction_amount"] != 161.7 {
					t.Fatalf("expected amount 161.7, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "q-1" {
					t.Fatalf("expected external_reference q-1, got %v", m["external_reference"])
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuotePayment{})).DoAndReturn(
			func(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
				if p.ID != "mp-1" || p.QuoteID != "q-1" || p.Status != entities.PaymentStatusApproved {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)

		created, err := uc.CreateAndApprove(context.Background(), "q-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "mp-1" {
			t.Fatalf("unexpected id: %s", created.ID)
		}
	})

	t.Run("gateway unauthorized is classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(nil, quoteRepo, gateway)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuote(t, "q-1"), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.CreateAndApprove(context.Background(), "q-1", payload)
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})
}

func TestQuotePaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		uc := NewQuotePaymentUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.QuotePayment{}, nil)

		_, err := uc.GetByID(context.Background(), "p-1")
		if !errors.Is(err, ErrQuotePaymentNotFound) {
			t.Fatalf("expected ErrQuotePaymentNotFound, got %v", err)
		}
	})

	t.Run("ListByQuoteID invalid id", func(t *testing.T) {
		uc := NewQuotePaymentUseCase(nil, nil, nil)
		_, err := uc.ListByQuoteID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentQuoteID) {
			t.Fatalf("expected ErrInvalidPaymentQuoteID, got %v", err)
		}
	})

	t.Run("ListByQuoteID passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		uc := NewQuotePaymentUseCase(repo, nil, nil)
		repo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.QuotePayment{{ID: "p-1"}}, nil)

		got, err := uc.ListByQuoteID(context.Background(), " q-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "p-1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
