package usecase

import (
	"time"

	"wastebazaar/internal/domain/entities"
)

// BreakdownShares splits a priced batch's total value for presentation.
// Shares must sum to 1.
type BreakdownShares struct {
	MaterialCost   float64
	ProcessingCost float64
	LogisticsCost  float64
	PlatformFee    float64
	Profit         float64
}

// Tables holds the constant lookup data the pricing engine consults. They are
// injected rather than hard-coded so deployments and tests can swap them
// without code edits.
type Tables struct {
	ConditionMultipliers map[entities.MaterialCondition]float64
	UrgencyMultipliers   map[entities.Urgency]float64
	DefaultBasePrices    map[entities.MaterialType]float64
	FallbackBasePrice    float64
	HighCostStates       []string
	Shares               BreakdownShares
	Currency             string
	QuoteValidity        time.Duration
}

// DefaultTables returns the production table set.
func DefaultTables() Tables {
	return Tables{
		ConditionMultipliers: map[entities.MaterialCondition]float64{
			entities.ConditionExcellent: 1.2,
			entities.ConditionGood:      1.1,
			entities.ConditionClean:     1.0,
			entities.ConditionTreated:   1.15,
			entities.ConditionUntreated: 0.9,
			entities.ConditionDirty:     0.8,
			entities.ConditionPoor:      0.7,
			entities.ConditionDamaged:   0.6,
		},
		UrgencyMultipliers: map[entities.Urgency]float64{
			entities.UrgencyLow:    1.0,
			entities.UrgencyMedium: 1.1,
			entities.UrgencyHigh:   1.2,
			entities.UrgencyUrgent: 1.3,
		},
		DefaultBasePrices: map[entities.MaterialType]float64{
			entities.MaterialTypePlastic:   120,
			entities.MaterialTypeMetal:     300,
			entities.MaterialTypeHousehold: 60,
		},
		FallbackBasePrice: 50,
		HighCostStates:    []string{"Lagos", "Abuja", "Rivers", "Delta"},
		Shares: BreakdownShares{
			MaterialCost:   0.70,
			ProcessingCost: 0.15,
			LogisticsCost:  0.08,
			PlatformFee:    0.05,
			Profit:         0.02,
		},
		Currency:      "NGN",
		QuoteValidity: 24 * time.Hour,
	}
}

func (t Tables) conditionMultiplier(c entities.MaterialCondition) float64 {
	if m, ok := t.ConditionMultipliers[c]; ok {
		return m
	}
	return 1.0
}

func (t Tables) urgencyMultiplier(u entities.Urgency) float64 {
	if m, ok := t.UrgencyMultipliers[u]; ok {
		return m
	}
	return 1.0
}

func (t Tables) defaultBasePrice(m entities.MaterialType) float64 {
	if p, ok := t.DefaultBasePrices[m]; ok {
		return p
	}
	return t.FallbackBasePrice
}

func (t Tables) isHighCostState(state string) bool {
	for _, s := range t.HighCostStates {
		if s == state {
			return true
		}
	}
	return false
}

func (t Tables) breakdown(pricePerKg, weight float64) entities.Breakdown {
	total := pricePerKg * weight
	return entities.Breakdown{
		MaterialCost:   total * t.Shares.MaterialCost,
		ProcessingCost: total * t.Shares.ProcessingCost,
		LogisticsCost:  total * t.Shares.LogisticsCost,
		PlatformFee:    total * t.Shares.PlatformFee,
		Profit:         total * t.Shares.Profit,
	}
}
