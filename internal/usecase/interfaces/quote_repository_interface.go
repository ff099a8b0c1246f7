package interfaces

import (
	"context"

	"github.com/bozone403/afterhourshvac-sub001/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Save rewrites the full pricing payload (items and rates). The engine
// recomputes derived totals on load, so the repository never stores them as
// authoritative values.

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_mock.go -package=mock_interfaces

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Save(ctx context.Context, q entities.Quote) (entities.Quote, error)
}
