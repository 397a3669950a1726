package handlers

import (
	"errors"
	"net/http"
	request "wastebazaar/internal/adapter/http/dto/request"
	response "wastebazaar/internal/adapter/http/dto/response"
	"wastebazaar/internal/domain/entities"
	"wastebazaar/internal/infrastructure/metrics"
	"wastebazaar/internal/usecase"
	"wastebazaar/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPricePayload = pkg.NewDomainErrorSimple("INVALID_PRICE_INPUT", "Invalid price calculation payload", http.StatusBadRequest)

// PricingHandler handles HTTP requests for price quotes and market data.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// CalculatePrice runs the pricing engine for a material listing.
func (h *PricingHandler) CalculatePrice(c *gin.Context) {
	var payload request.PriceCalculationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricePayload.HTTPStatus, errInvalidPricePayload.ToHTTPError())
		return
	}

	req, err := payload.ToEntity()
	if err != nil {
		appErr := mapPriceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.CalculatePrice(c.Request.Context(), req)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	metrics.CalculationsTotal.WithLabelValues(string(req.MaterialType)).Inc()
	if len(result.AppliedRules) == 0 {
		metrics.DefaultFallbackTotal.Inc()
	}
	if req.Weight > 0 {
		metrics.FinalPricePerKg.Observe(result.FinalPrice / req.Weight)
	}

	c.JSON(http.StatusOK, response.FromPriceResult(result))
}

// MarketPrices lists current market quotes for a material type.
func (h *PricingHandler) MarketPrices(c *gin.Context) {
	materialType := entities.MaterialType(c.Param("material_type"))
	if !materialType.Valid() {
		appErr := pkg.NewDomainErrorSimple("UNKNOWN_MATERIAL_TYPE", "Unknown material type", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quotes, err := h.usecase.MarketPrices(c.Request.Context(), materialType)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMarketQuotes(quotes))
}

func mapPriceRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidWeight):
		return pkg.NewDomainErrorSimple("INVALID_WEIGHT", "Weight must be positive", http.StatusBadRequest)
	case errors.Is(err, request.ErrUnknownMaterialType):
		return pkg.NewDomainErrorSimple("UNKNOWN_MATERIAL_TYPE", "Unknown material type", http.StatusBadRequest)
	case errors.Is(err, request.ErrUnknownCondition):
		return pkg.NewDomainErrorSimple("UNKNOWN_CONDITION", "Unknown material condition", http.StatusBadRequest)
	case errors.Is(err, request.ErrUnknownUrgency):
		return pkg.NewDomainErrorSimple("UNKNOWN_URGENCY", "Unknown urgency", http.StatusBadRequest)
	default:
		return errInvalidPricePayload
	}
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWeight),
		errors.Is(err, usecase.ErrInvalidMaterialType),
		errors.Is(err, usecase.ErrInvalidCondition),
		errors.Is(err, usecase.ErrInvalidUrgency):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPriceCalculation):
		return pkg.NewDomainError("PRICE_CALCULATION_FAILED", "Price calculation failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
