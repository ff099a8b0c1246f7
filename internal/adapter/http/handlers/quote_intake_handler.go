package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/bozone403/afterhourshvac-sub001/internal/adapter/http/dto/request"
	response "github.com/bozone403/afterhourshvac-sub001/internal/adapter/http/dto/response"
	"github.com/bozone403/afterhourshvac-sub001/internal/usecase"
	"github.com/bozone403/afterhourshvac-sub001/pkg"
)

// QuoteIntakeHandler handles the public "request a quote" lead form.

type QuoteIntakeHandler struct {
	usecase usecase.IQuoteRequestUseCase
}

func NewQuoteIntakeHandler(uc usecase.IQuoteRequestUseCase) *QuoteIntakeHandler {
	return &QuoteIntakeHandler{usecase: uc}
}

func (h *QuoteIntakeHandler) Submit(c *gin.Context) {
	var payload request.QuoteIntakeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapQuoteIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteRequest(created))
}

func (h *QuoteIntakeHandler) GetByID(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapQuoteIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRequest(r))
}

func (h *QuoteIntakeHandler) List(c *gin.Context) {
	rs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapQuoteIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRequests(rs))
}

func mapQuoteIntakeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteRequestID), errors.Is(err, usecase.ErrInvalidQuoteRequestVal):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteRequestNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
