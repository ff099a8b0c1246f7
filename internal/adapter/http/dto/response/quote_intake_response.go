package response

import (
	"time"

	"github.com/bozone403/afterhourshvac-sub001/internal/domain/entities"
)

type QuoteIntakeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	ServiceType string    `json:"service_type,omitempty"`
	Message     string    `json:"message,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromQuoteRequest(r entities.QuoteRequest) QuoteIntakeResponse {
	return QuoteIntakeResponse{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		ServiceType: r.ServiceType,
		Message:     r.Message,
		CreatedAt:   r.CreatedAt,
	}
}

func FromQuoteRequests(rs []entities.QuoteRequest) []QuoteIntakeResponse {
	out := make([]QuoteIntakeResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromQuoteRequest(r))
	}
	return out
}
