package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bozone403/afterhourshvac-sub001/internal/adapter/http/handlers"
)

const (
	PathQuotes        = "/quotes"
	PathCatalog       = "/catalog"
	PathPayments      = "/payments"
	PathQuoteRequests = "/quote-requests"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, catalogHandler *handlers.CatalogHandler, paymentHandler *handlers.QuotePaymentHandler, intakeHandler *handlers.QuoteIntakeHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.POST("/:quote_id/items", quoteHandler.AddItem)
		quotes.PATCH("/:quote_id/items/:item_id", quoteHandler.UpdateItem)
		quotes.DELETE("/:quote_id/items/:item_id", quoteHandler.RemoveItem)
		quotes.PATCH("/:quote_id/rates", quoteHandler.UpdateRates)
		quotes.PATCH("/:quote_id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:quote_id/reject", quoteHandler.RejectQuote)
		quotes.PATCH("/:quote_id/cancel", quoteHandler.CancelQuote)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", catalogHandler.Lookup)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quote_id", paymentHandler.CreatePaymentByQuoteID)
		payments.GET("/:quote_id", paymentHandler.GetPaymentByQuoteID)
	}

	requests := rg.Group(PathQuoteRequests)
	{
		requests.POST("", intakeHandler.Submit)
		requests.GET("", intakeHandler.List)
		requests.GET("/:request_id", intakeHandler.GetByID)
	}
}
