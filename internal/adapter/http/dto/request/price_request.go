package request

import (
	"errors"
	"time"

	"wastebazaar/internal/domain/entities"
)

var (
	ErrInvalidWeight       = errors.New("weight must be positive")
	ErrUnknownMaterialType = errors.New("unknown material type")
	ErrUnknownCondition    = errors.New("unknown material condition")
	ErrUnknownUrgency      = errors.New("unknown urgency")
)

type LocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	State     string  `json:"state" binding:"required"`
	City      string  `json:"city"`
}

// PriceCalculationRequest is the payload of POST /v1/prices/calculate.
type PriceCalculationRequest struct {
	MaterialType       string          `json:"material_type" binding:"required"`
	SubType            string          `json:"sub_type"`
	Condition          string          `json:"condition" binding:"required"`
	Weight             float64         `json:"weight"`
	Location           LocationRequest `json:"location" binding:"required"`
	QualityGrade       string          `json:"quality_grade"`
	TreatmentsRequired []string        `json:"treatments_required"`
	Urgency            string          `json:"urgency"`
	RequestedAt        *time.Time      `json:"requested_at"`
}

// ToEntity validates the payload and converts it to the engine's input.
// Urgency defaults to low, RequestedAt to now.
func (r PriceCalculationRequest) ToEntity() (entities.PriceRequest, error) {
	if r.Weight <= 0 {
		return entities.PriceRequest{}, ErrInvalidWeight
	}

	materialType := entities.MaterialType(r.MaterialType)
	if !materialType.Valid() {
		return entities.PriceRequest{}, ErrUnknownMaterialType
	}

	condition := entities.MaterialCondition(r.Condition)
	if !condition.Valid() {
		return entities.PriceRequest{}, ErrUnknownCondition
	}

	urgency := entities.UrgencyLow
	if r.Urgency != "" {
		urgency = entities.Urgency(r.Urgency)
		if !urgency.Valid() {
			return entities.PriceRequest{}, ErrUnknownUrgency
		}
	}

	requestedAt := time.Now().UTC()
	if r.RequestedAt != nil {
		requestedAt = *r.RequestedAt
	}

	return entities.PriceRequest{
		MaterialType: materialType,
		SubType:      r.SubType,
		Condition:    condition,
		Weight:       r.Weight,
		Location: entities.Location{
			Latitude:  r.Location.Latitude,
			Longitude: r.Location.Longitude,
			State:     r.Location.State,
			City:      r.Location.City,
		},
		QualityGrade:       r.QualityGrade,
		TreatmentsRequired: r.TreatmentsRequired,
		Urgency:            urgency,
		RequestedAt:        requestedAt,
	}, nil
}
