package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bozone403/afterhourshvac-sub001/internal/adapter/http/handlers/mocks"
	"github.com/bozone403/afterhourshvac-sub001/internal/domain/entities"
	"github.com/bozone403/afterhourshvac-sub001/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuotePaymentHandler_CreatePaymentByQuoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/qt-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("envelope payload unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "qt-1", json.RawMessage(`{"payment_method_id":"pix"}`)).Return(entities.QuotePayment{ID: "pay-1", QuoteID: "qt-1", Status: entities.PaymentStatusApproved, Date: time.Now().UTC()}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/qt-1", bytes.NewBufferString(`{"provider_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pay-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("bare payload forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "qt-1", json.RawMessage(`{"payment_method_id":"pix","installments":1}`)).Return(entities.QuotePayment{ID: "pay-1", QuoteID: "qt-1", Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/qt-1", bytes.NewBufferString(`{"payment_method_id":"pix","installments":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mock mode falls back to empty payload", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "qt-1", json.RawMessage("{}")).Return(entities.QuotePayment{ID: "pay-1", QuoteID: "qt-1", Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/qt-1", bytes.NewBufferString("not-json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("quote not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "qt-1", gomock.Any()).Return(entities.QuotePayment{}, usecase.ErrQuoteNotApproved)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/qt-1", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "qt-1", gomock.Any()).Return(entities.QuotePayment{}, usecase.ErrPaymentGatewayUnauthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/qt-1", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestQuotePaymentHandler_GetPaymentByQuoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns latest payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:quote_id", h.GetPaymentByQuoteID)

		older := time.Now().UTC().Add(-time.Hour)
		newer := time.Now().UTC()
		uc.EXPECT().ListByQuoteID(gomock.Any(), "qt-1").Return([]entities.QuotePayment{
			{ID: "pay-1", QuoteID: "qt-1", Date: older, Status: entities.PaymentStatusApproved},
			{ID: "pay-2", QuoteID: "qt-1", Date: newer, Status: entities.PaymentStatusApproved},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/qt-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pay-2" {
			t.Fatalf("expected latest payment, got: %s", w.Body.String())
		}
	})

	t.Run("no payments yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:quote_id", h.GetPaymentByQuoteID)

		uc.EXPECT().ListByQuoteID(gomock.Any(), "qt-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/qt-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:quote_id", h.GetPaymentByQuoteID)

		uc.EXPECT().ListByQuoteID(gomock.Any(), "qt-404").Return(nil, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/qt-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapQuotePaymentError(t *testing.T) {
	if got := mapQuotePaymentError(usecase.ErrInvalidPaymentQuoteID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuotePaymentError(usecase.ErrInvalidProviderPayload); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuotePaymentError(usecase.ErrPaymentGatewayUnauthorized); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapQuotePaymentError(usecase.ErrQuoteNotApproved); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapQuotePaymentError(usecase.ErrQuotePaymentNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuotePaymentError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
