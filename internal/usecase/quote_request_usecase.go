package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bozone403/afterhourshvac-sub001/internal/domain/entities"
	"github.com/bozone403/afterhourshvac-sub001/internal/usecase/interfaces"
)

var (
	ErrQuoteRequestNotFound   = errors.New("quote request not found")
	ErrInvalidQuoteRequestID  = errors.New("invalid quote request id")
	ErrInvalidQuoteRequestVal = errors.New("invalid quote request")
)

// IQuoteRequestUseCase handles lead intake from the public site.

type IQuoteRequestUseCase interface {
	Submit(ctx context.Context, r entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	List(ctx context.Context) ([]entities.QuoteRequest, error)
}

type QuoteRequestUseCase struct {
	repo interfaces.IQuoteRequestRepository
}

var _ IQuoteRequestUseCase = (*QuoteRequestUseCase)(nil)

func NewQuoteRequestUseCase(repo interfaces.IQuoteRequestRepository) *QuoteRequestUseCase {
	return &QuoteRequestUseCase{repo: repo}
}

func (u *QuoteRequestUseCase) Submit(ctx context.Context, r entities.QuoteRequest) (entities.QuoteRequest, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.ServiceType = strings.TrimSpace(r.ServiceType)
	r.Message = strings.TrimSpace(r.Message)

	if r.Name == "" || (r.Email == "" && r.Phone == "") {
		return entities.QuoteRequest{}, ErrInvalidQuoteRequestVal
	}

	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, r)
}

func (u *QuoteRequestUseCase) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteRequestID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if r.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteRequestNotFound
	}
	return r, nil
}

func (u *QuoteRequestUseCase) List(ctx context.Context) ([]entities.QuoteRequest, error) {
	return u.repo.List(ctx)
}
