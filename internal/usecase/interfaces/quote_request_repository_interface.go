package interfaces

import (
	"context"

	"github.com/bozone403/afterhourshvac-sub001/internal/domain/entities"
)

// IQuoteRequestRepository abstracts DynamoDB persistence for QuoteRequest.

//go:generate mockgen -source=quote_request_repository_interface.go -destination=mocks/quote_request_repository_mock.go -package=mock_interfaces

type IQuoteRequestRepository interface {
	Create(ctx context.Context, r entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	List(ctx context.Context) ([]entities.QuoteRequest, error)
}
