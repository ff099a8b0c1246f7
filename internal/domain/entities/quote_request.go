package entities

import "time"

// QuoteRequest is a lead captured from the public site: a customer asking to
// be contacted about a job. It carries no pricing; an estimator turns it into
// a Quote later.
//
// Storage model (DynamoDB):
//   - PK: id

type QuoteRequest struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ServiceType string    `json:"service_type"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}
