package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/bozone403/afterhourshvac-sub001/internal/adapter/http/dto/request"
	response "github.com/bozone403/afterhourshvac-sub001/internal/adapter/http/dto/response"
	"github.com/bozone403/afterhourshvac-sub001/internal/domain/entities"
	"github.com/bozone403/afterhourshvac-sub001/internal/domain/pricing"
	"github.com/bozone403/afterhourshvac-sub001/internal/usecase"
	"github.com/bozone403/afterhourshvac-sub001/pkg"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quote building and lifecycle.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote opens an empty quote priced with the configured default rates.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.CreateQuote(c.Request.Context(), payload.CustomerName, payload.CustomerEmail, payload.JobAddress)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(q))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// AddItem appends a catalog, labor, or custom item to a pending quote.
func (h *QuoteHandler) AddItem(c *gin.Context) {
	quoteID := c.Param("quote_id")

	var payload request.QuoteItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	itemType, err := payload.ResolveType()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	var q entities.Quote
	switch itemType {
	case request.ItemTypeCatalog:
		q, err = h.usecase.AddCatalogItem(c.Request.Context(), quoteID, payload.Category, payload.Description, payload.Quantity, payload.OverrideMultiplier)
	case request.ItemTypeLabor:
		q, err = h.usecase.AddLaborItem(c.Request.Context(), quoteID, payload.Description, payload.Hours, payload.Rate)
	case request.ItemTypeCustom:
		q, err = h.usecase.AddCustomItem(c.Request.Context(), quoteID, payload.Description, payload.UnitPrice, payload.Quantity)
	}
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// UpdateItem changes a line/custom item quantity or labor hours.
func (h *QuoteHandler) UpdateItem(c *gin.Context) {
	quoteID := c.Param("quote_id")
	itemID := c.Param("item_id")

	var payload request.QuoteItemUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	var err error
	var q entities.Quote
	switch {
	case payload.Quantity != nil:
		q, err = h.usecase.UpdateItemQuantity(c.Request.Context(), quoteID, itemID, *payload.Quantity)
	case payload.Hours != nil:
		q, err = h.usecase.UpdateLaborHours(c.Request.Context(), quoteID, itemID, *payload.Hours)
	default:
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) RemoveItem(c *gin.Context) {
	q, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("quote_id"), c.Param("item_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// UpdateRates replaces the overhead/markup/discount/tax percentages.
func (h *QuoteHandler) UpdateRates(c *gin.Context) {
	quoteID := c.Param("quote_id")

	var payload request.QuoteRatesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	rates, err := payload.ResolveRates()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.UpdateRates(c.Request.Context(), quoteID, rates)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.patchStatus(c, h.usecase.Approve)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchStatus(c, h.usecase.Reject)
}

func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	h.patchStatus(c, h.usecase.Cancel)
}

func (h *QuoteHandler) patchStatus(c *gin.Context, updater func(ctx context.Context, quoteID string) (entities.Quote, error)) {
	q, err := updater(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, pricing.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantity must be positive", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidMultiplier):
		return pkg.NewDomainErrorSimple("INVALID_MULTIPLIER", "Multiplier must lie in (0,1]", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidPercentage):
		return pkg.NewDomainErrorSimple("INVALID_PERCENTAGE", "Percentages must be non-negative", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidUnitCost):
		return pkg.NewDomainErrorSimple("INVALID_UNIT_COST", "Unit cost must be non-negative", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrUnknownCategory):
		return pkg.NewDomainErrorSimple("UNKNOWN_CATEGORY", "Category has no configured multiplier", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidCustomerName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotMutable), errors.Is(err, usecase.ErrQuoteNotPending):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_MUTABLE", "Quote no longer accepts this operation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
