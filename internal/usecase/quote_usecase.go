package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bozone403/afterhourshvac-sub001/internal/domain/catalog"
	"github.com/bozone403/afterhourshvac-sub001/internal/domain/entities"
	"github.com/bozone403/afterhourshvac-sub001/internal/domain/pricing"
	"github.com/bozone403/afterhourshvac-sub001/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrInvalidQuoteID      = errors.New("invalid quote id")
	ErrInvalidCustomerName = errors.New("invalid customer name")
	ErrQuoteNotMutable     = errors.New("quote not mutable")
	ErrQuoteNotPending     = errors.New("quote not pending")
	ErrCatalogItemNotFound = errors.New("catalog item not found")
)

// IQuoteUseCase exposes quote building and lifecycle operations.
//
// Every pricing mutation loads the quote, applies the change through the
// estimate engine (which recomputes all totals synchronously), and saves the
// result, so a persisted quote is always consistent.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, customerName, customerEmail, jobAddress string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	AddCatalogItem(ctx context.Context, quoteID, category, description string, quantity float64, overrideMultiplier *float64) (entities.Quote, error)
	AddLaborItem(ctx context.Context, quoteID, description string, hours, rate float64) (entities.Quote, error)
	AddCustomItem(ctx context.Context, quoteID, description string, unitPrice, quantity float64) (entities.Quote, error)
	UpdateItemQuantity(ctx context.Context, quoteID, itemID string, quantity float64) (entities.Quote, error)
	UpdateLaborHours(ctx context.Context, quoteID, itemID string, hours float64) (entities.Quote, error)
	RemoveItem(ctx context.Context, quoteID, itemID string) (entities.Quote, error)
	UpdateRates(ctx context.Context, quoteID string, rates pricing.Rates) (entities.Quote, error)
	Approve(ctx context.Context, quoteID string) (entities.Quote, error)
	Reject(ctx context.Context, quoteID string) (entities.Quote, error)
	Cancel(ctx context.Context, quoteID string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo         interfaces.IQuoteRepository
	catalog      *catalog.Catalog
	table        pricing.MultiplierTable
	defaultRates pricing.Rates
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, cat *catalog.Catalog, table pricing.MultiplierTable, defaultRates pricing.Rates) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, catalog: cat, table: table, defaultRates: defaultRates}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, customerName, customerEmail, jobAddress string) (entities.Quote, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return entities.Quote{}, ErrInvalidCustomerName
	}

	est, err := pricing.NewEstimate(u.table, u.defaultRates)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:            uuid.NewString(),
		CustomerName:  customerName,
		CustomerEmail: strings.TrimSpace(customerEmail),
		JobAddress:    strings.TrimSpace(jobAddress),
		Status:        entities.QuoteStatusPending,
		Estimate:      est,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) AddCatalogItem(ctx context.Context, quoteID, category, description string, quantity float64, overrideMultiplier *float64) (entities.Quote, error) {
	entry, ok := u.catalog.Find(category, description)
	if !ok {
		return entities.Quote{}, ErrCatalogItemNotFound
	}
	return u.mutate(ctx, quoteID, func(e *pricing.Estimate) error {
		_, err := e.AddLineItem(entry.Source(), quantity, overrideMultiplier)
		return err
	})
}

func (u *QuoteUseCase) AddLaborItem(ctx context.Context, quoteID, description string, hours, rate float64) (entities.Quote, error) {
	return u.mutate(ctx, quoteID, func(e *pricing.Estimate) error {
		_, err := e.AddLaborItem(description, hours, rate)
		return err
	})
}

func (u *QuoteUseCase) AddCustomItem(ctx context.Context, quoteID, description string, unitPrice, quantity float64) (entities.Quote, error) {
	return u.mutate(ctx, quoteID, func(e *pricing.Estimate) error {
		_, err := e.AddCustomItem(description, unitPrice, quantity)
		return err
	})
}

func (u *QuoteUseCase) UpdateItemQuantity(ctx context.Context, quoteID, itemID string, quantity float64) (entities.Quote, error) {
	return u.mutate(ctx, quoteID, func(e *pricing.Estimate) error {
		return e.UpdateQuantity(itemID, quantity)
	})
}

func (u *QuoteUseCase) UpdateLaborHours(ctx context.Context, quoteID, itemID string, hours float64) (entities.Quote, error) {
	return u.mutate(ctx, quoteID, func(e *pricing.Estimate) error {
		return e.UpdateLaborHours(itemID, hours)
	})
}

func (u *QuoteUseCase) RemoveItem(ctx context.Context, quoteID, itemID string) (entities.Quote, error) {
	return u.mutate(ctx, quoteID, func(e *pricing.Estimate) error {
		return e.RemoveItem(itemID)
	})
}

func (u *QuoteUseCase) UpdateRates(ctx context.Context, quoteID string, rates pricing.Rates) (entities.Quote, error) {
	return u.mutate(ctx, quoteID, func(e *pricing.Estimate) error {
		return e.SetRates(rates)
	})
}

func (u *QuoteUseCase) Approve(ctx context.Context, quoteID string) (entities.Quote, error) {
	return u.transition(ctx, quoteID, entities.QuoteStatusApproved)
}

func (u *QuoteUseCase) Reject(ctx context.Context, quoteID string) (entities.Quote, error) {
	return u.transition(ctx, quoteID, entities.QuoteStatusRejected)
}

func (u *QuoteUseCase) Cancel(ctx context.Context, quoteID string) (entities.Quote, error) {
	return u.transition(ctx, quoteID, entities.QuoteStatusCancelled)
}

// mutate applies a single pricing mutation atomically: load, guard, apply,
// save. A failed mutation leaves the stored quote untouched.
func (u *QuoteUseCase) mutate(ctx context.Context, quoteID string, apply func(e *pricing.Estimate) error) (entities.Quote, error) {
	q, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if !q.Mutable() {
		return entities.Quote{}, ErrQuoteNotMutable
	}

	if err := apply(q.Estimate); err != nil {
		return entities.Quote{}, err
	}

	q.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, q)
}

func (u *QuoteUseCase) transition(ctx context.Context, quoteID string, status entities.QuoteStatus) (entities.Quote, error) {
	q, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	switch status {
	case entities.QuoteStatusApproved, entities.QuoteStatusRejected:
		if q.Status != entities.QuoteStatusPending {
			return entities.Quote{}, ErrQuoteNotPending
		}
	case entities.QuoteStatusCancelled:
		if q.Status != entities.QuoteStatusPending && q.Status != entities.QuoteStatusApproved {
			return entities.Quote{}, ErrQuoteNotPending
		}
	}

	q.Status = status
	q.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, q)
}
