package pricing

import "errors"

// Engine validation failures. All are local and synchronous; none is
// retryable. Handlers translate them into user-facing messages.
var (
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInvalidMultiplier = errors.New("invalid multiplier")
	ErrInvalidPercentage = errors.New("invalid percentage")
	ErrInvalidUnitCost   = errors.New("invalid unit cost")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrItemNotFound      = errors.New("item not found")
)
