package entities

import (
	"time"

	"github.com/bozone403/afterhourshvac-sub001/internal/domain/pricing"
)

// QuoteStatus represents the lifecycle of a customer quote.
//
// Domain notes:
//   - Only pending quotes accept pricing mutations.
//   - Deposits can only be taken against approved quotes.

type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusApproved  QuoteStatus = "approved"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// Quote is the persisted customer quote wrapping a pricing estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Only pricing inputs (items and rates) are stored; derived totals are
// recomputed from scratch whenever the quote is loaded, so a persisted quote
// can never disagree with the engine.
type Quote struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	JobAddress    string
	Status        QuoteStatus
	Estimate      *pricing.Estimate
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Mutable reports whether pricing mutations are still allowed.
func (q Quote) Mutable() bool {
	return q.Status == QuoteStatusPending
}
