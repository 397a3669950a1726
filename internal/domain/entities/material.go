package entities

import "time"

// MaterialType classifies a recyclable batch submitted for pricing.
type MaterialType string

const (
	MaterialTypePlastic   MaterialType = "plastic"
	MaterialTypeMetal     MaterialType = "metal"
	MaterialTypeHousehold MaterialType = "household"
)

func (m MaterialType) Valid() bool {
	switch m {
	case MaterialTypePlastic, MaterialTypeMetal, MaterialTypeHousehold:
		return true
	}
	return false
}

// MaterialCondition describes the physical state of a batch. The condition
// drives a fixed multiplier table inside the pricing engine.
type MaterialCondition string

const (
	ConditionClean     MaterialCondition = "clean"
	ConditionDirty     MaterialCondition = "dirty"
	ConditionTreated   MaterialCondition = "treated"
	ConditionUntreated MaterialCondition = "untreated"
	ConditionDamaged   MaterialCondition = "damaged"
	ConditionExcellent MaterialCondition = "excellent"
	ConditionGood      MaterialCondition = "good"
	ConditionPoor      MaterialCondition = "poor"
)

func (c MaterialCondition) Valid() bool {
	switch c {
	case ConditionClean, ConditionDirty, ConditionTreated, ConditionUntreated,
		ConditionDamaged, ConditionExcellent, ConditionGood, ConditionPoor:
		return true
	}
	return false
}

// Urgency is the caller-declared priority of a price request. An absent
// urgency is treated as UrgencyLow and applies no multiplier.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyUrgent:
		return true
	}
	return false
}

// Location of the submitting branch. State is what rule location filters and
// the high-cost-state adjustment key on.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	State     string  `json:"state"`
	City      string  `json:"city"`
}

// PriceRequest is the immutable input of one pricing computation.
type PriceRequest struct {
	MaterialType       MaterialType      `json:"material_type"`
	SubType            string            `json:"sub_type,omitempty"`
	Condition          MaterialCondition `json:"condition"`
	Weight             float64           `json:"weight"`
	Location           Location          `json:"location"`
	QualityGrade       string            `json:"quality_grade,omitempty"`
	TreatmentsRequired []string          `json:"treatments_required,omitempty"`
	Urgency            Urgency           `json:"urgency,omitempty"`
	RequestedAt        time.Time         `json:"requested_at"`
}
