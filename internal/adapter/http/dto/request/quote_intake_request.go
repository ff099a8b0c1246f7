package request

import (
	"github.com/bozone403/afterhourshvac-sub001/internal/domain/entities"
)

// QuoteIntakeRequest is the public "request a quote" lead form payload.
type QuoteIntakeRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceType string `json:"service_type"`
	Message     string `json:"message"`
}

func (r QuoteIntakeRequest) ToEntity() entities.QuoteRequest {
	return entities.QuoteRequest{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		ServiceType: r.ServiceType,
		Message:     r.Message,
	}
}
