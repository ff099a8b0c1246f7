package interfaces

import (
	"context"

	"github.com/bozone403/afterhourshvac-sub001/internal/domain/entities"
)

// IQuotePaymentRepository abstracts DynamoDB persistence for QuotePayment.

//go:generate mockgen -source=quote_payment_repository_interface.go -destination=mocks/quote_payment_repository_mock.go -package=mock_interfaces

type IQuotePaymentRepository interface {
	Create(ctx context.Context, p entities.QuotePayment) (entities.QuotePayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
}
