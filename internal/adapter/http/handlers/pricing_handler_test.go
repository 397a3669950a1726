package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wastebazaar/internal/adapter/http/handlers/mocks"
	"wastebazaar/internal/domain/entities"
	"wastebazaar/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPricingHandler_CalculatePrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validBody := `{"material_type":"plastic","condition":"clean","weight":25,"location":{"state":"Lagos","city":"Ikeja"}}`

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/prices/calculate", h.CalculatePrice)

		req := httptest.NewRequest(http.MethodPost, "/v1/prices/calculate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid weight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/prices/calculate", h.CalculatePrice)

		req := httptest.NewRequest(http.MethodPost, "/v1/prices/calculate", bytes.NewBufferString(`{"material_type":"plastic","condition":"clean","weight":0,"location":{"state":"Lagos"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("calculation failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/prices/calculate", h.CalculatePrice)

		uc.EXPECT().CalculatePrice(gomock.Any(), gomock.Any()).Return(entities.PriceCalculationResult{}, usecase.ErrPriceCalculation)

		req := httptest.NewRequest(http.MethodPost, "/v1/prices/calculate", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PRICE_CALCULATION_FAILED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/prices/calculate", h.CalculatePrice)

		now := time.Now().UTC()
		uc.EXPECT().CalculatePrice(gomock.Any(), gomock.AssignableToTypeOf(entities.PriceRequest{})).DoAndReturn(
			func(_ context.Context, req entities.PriceRequest) (entities.PriceCalculationResult, error) {
				if req.MaterialType != entities.MaterialTypePlastic || req.Weight != 25 {
					t.Fatalf("unexpected request: %+v", req)
				}
				return entities.PriceCalculationResult{
					BasePrice:    120,
					AppliedRules: []entities.AppliedRule{{RuleID: "r1", RuleName: "Plastic base", BasePrice: 120, FinalPrice: 132}},
					FinalPrice:   132,
					Currency:     "NGN",
					ValidUntil:   now.Add(24 * time.Hour),
					CalculatedAt: now,
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/prices/calculate", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["final_price"] != 132.0 || body["currency"] != "NGN" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPricingHandler_MarketPrices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown material type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/v1/prices/market/:material_type", h.MarketPrices)

		req := httptest.NewRequest(http.MethodGet, "/v1/prices/market/glass", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/v1/prices/market/:material_type", h.MarketPrices)

		uc.EXPECT().MarketPrices(gomock.Any(), entities.MaterialTypeMetal).Return([]entities.MarketQuote{
			{Source: "Lagos Scrap", Price: 350, Currency: "NGN", Unit: "per_kg"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/prices/market/metal", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["source"] != "Lagos Scrap" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapPricingError(t *testing.T) {
	if got := mapPricingError(usecase.ErrInvalidWeight); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPricingError(usecase.ErrInvalidMaterialType); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPricingError(usecase.ErrPriceCalculation); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
	if got := mapPricingError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
