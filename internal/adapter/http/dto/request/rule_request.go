package request

import (
	"time"

	"wastebazaar/internal/domain/entities"
	"wastebazaar/internal/usecase"
)

type PriceFactorRequest struct {
	Type         string  `json:"type" binding:"required"`
	Value        float64 `json:"value"`
	IsPercentage bool    `json:"is_percentage"`
	Description  string  `json:"description"`
}

type QuantityTierRequest struct {
	MinQuantity        float64  `json:"min_quantity"`
	MaxQuantity        *float64 `json:"max_quantity"`
	DiscountPercentage float64  `json:"discount_percentage"`
	Description        string   `json:"description"`
}

type TimeOfDayRuleRequest struct {
	StartHour   int     `json:"start_hour"`
	EndHour     int     `json:"end_hour"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

type SeasonalAdjustmentRequest struct {
	StartMonth  int     `json:"start_month"`
	EndMonth    int     `json:"end_month"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

type TreatmentPricingRequest struct {
	TreatmentType    string  `json:"treatment_type" binding:"required"`
	AdditionalCost   float64 `json:"additional_cost"`
	PriceImprovement float64 `json:"price_improvement"`
	Description      string  `json:"description"`
}

// CreateRuleRequest is the payload of POST /v1/rules. The created rule always
// starts in pending approval.
type CreateRuleRequest struct {
	Name                string                      `json:"name" binding:"required"`
	Description         string                      `json:"description"`
	IsActive            *bool                       `json:"is_active"`
	Priority            int                         `json:"priority"`
	MaterialType        string                      `json:"material_type" binding:"required"`
	SubTypes            []string                    `json:"sub_types"`
	Conditions          []string                    `json:"conditions"`
	Locations           []string                    `json:"locations"`
	Strategy            string                      `json:"strategy"`
	BasePrice           float64                     `json:"base_price"`
	Currency            string                      `json:"currency"`
	PriceFactors        []PriceFactorRequest        `json:"price_factors"`
	MarketPriceWeight   float64                     `json:"market_price_weight"`
	QuantityTiers       []QuantityTierRequest       `json:"quantity_tiers"`
	ValidFrom           *time.Time                  `json:"valid_from"`
	ValidUntil          *time.Time                  `json:"valid_until"`
	TimeOfDayRules      []TimeOfDayRuleRequest      `json:"time_of_day_rules"`
	SeasonalAdjustments []SeasonalAdjustmentRequest `json:"seasonal_adjustments"`
	TreatmentPricing    []TreatmentPricingRequest   `json:"treatment_pricing"`
	CreatedBy           string                      `json:"created_by"`
}

func (r CreateRuleRequest) ToEntity() entities.PricingRule {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	rule := entities.PricingRule{
		Name:              r.Name,
		Description:       r.Description,
		IsActive:          isActive,
		Priority:          r.Priority,
		MaterialType:      entities.MaterialType(r.MaterialType),
		SubTypes:          r.SubTypes,
		Locations:         r.Locations,
		Strategy:          entities.PricingStrategy(r.Strategy),
		BasePrice:         r.BasePrice,
		Currency:          r.Currency,
		MarketPriceWeight: r.MarketPriceWeight,
		ValidUntil:        r.ValidUntil,
		CreatedBy:         r.CreatedBy,
	}
	if r.ValidFrom != nil {
		rule.ValidFrom = *r.ValidFrom
	}
	for _, c := range r.Conditions {
		rule.Conditions = append(rule.Conditions, entities.MaterialCondition(c))
	}
	for _, f := range r.PriceFactors {
		rule.PriceFactors = append(rule.PriceFactors, entities.PriceFactor{
			Type:         entities.PriceFactorType(f.Type),
			Value:        f.Value,
			IsPercentage: f.IsPercentage,
			Description:  f.Description,
		})
	}
	for _, t := range r.QuantityTiers {
		rule.QuantityTiers = append(rule.QuantityTiers, entities.QuantityTier{
			MinQuantity:        t.MinQuantity,
			MaxQuantity:        t.MaxQuantity,
			DiscountPercentage: t.DiscountPercentage,
			Description:        t.Description,
		})
	}
	for _, tr := range r.TimeOfDayRules {
		rule.TimeOfDayRules = append(rule.TimeOfDayRules, entities.TimeOfDayRule{
			StartHour:   tr.StartHour,
			EndHour:     tr.EndHour,
			Multiplier:  tr.Multiplier,
			Description: tr.Description,
		})
	}
	for _, sa := range r.SeasonalAdjustments {
		rule.SeasonalAdjustments = append(rule.SeasonalAdjustments, entities.SeasonalAdjustment{
			StartMonth:  sa.StartMonth,
			EndMonth:    sa.EndMonth,
			Multiplier:  sa.Multiplier,
			Description: sa.Description,
		})
	}
	for _, tp := range r.TreatmentPricing {
		rule.TreatmentPricing = append(rule.TreatmentPricing, entities.TreatmentPricing{
			TreatmentType:    tp.TreatmentType,
			AdditionalCost:   tp.AdditionalCost,
			PriceImprovement: tp.PriceImprovement,
			Description:      tp.Description,
		})
	}
	return rule
}

// UpdateRuleRequest is the payload of PATCH /v1/rules/:id. Absent fields are
// left untouched.
type UpdateRuleRequest struct {
	Name                *string                     `json:"name"`
	Description         *string                     `json:"description"`
	IsActive            *bool                       `json:"is_active"`
	Priority            *int                        `json:"priority"`
	SubTypes            []string                    `json:"sub_types"`
	Conditions          []string                    `json:"conditions"`
	Locations           []string                    `json:"locations"`
	Strategy            *string                     `json:"strategy"`
	BasePrice           *float64                    `json:"base_price"`
	MarketPriceWeight   *float64                    `json:"market_price_weight"`
	PriceFactors        []PriceFactorRequest        `json:"price_factors"`
	QuantityTiers       []QuantityTierRequest       `json:"quantity_tiers"`
	ValidUntil          *time.Time                  `json:"valid_until"`
	TimeOfDayRules      []TimeOfDayRuleRequest      `json:"time_of_day_rules"`
	SeasonalAdjustments []SeasonalAdjustmentRequest `json:"seasonal_adjustments"`
	TreatmentPricing    []TreatmentPricingRequest   `json:"treatment_pricing"`
}

func (r UpdateRuleRequest) ToUpdate() usecase.RuleUpdate {
	update := usecase.RuleUpdate{
		Name:              r.Name,
		Description:       r.Description,
		IsActive:          r.IsActive,
		Priority:          r.Priority,
		SubTypes:          r.SubTypes,
		Locations:         r.Locations,
		BasePrice:         r.BasePrice,
		MarketPriceWeight: r.MarketPriceWeight,
		ValidUntil:        r.ValidUntil,
	}
	if r.Strategy != nil {
		strategy := entities.PricingStrategy(*r.Strategy)
		update.Strategy = &strategy
	}
	if r.Conditions != nil {
		update.Conditions = make([]entities.MaterialCondition, 0, len(r.Conditions))
		for _, c := range r.Conditions {
			update.Conditions = append(update.Conditions, entities.MaterialCondition(c))
		}
	}
	if r.PriceFactors != nil {
		update.PriceFactors = make([]entities.PriceFactor, 0, len(r.PriceFactors))
		for _, f := range r.PriceFactors {
			update.PriceFactors = append(update.PriceFactors, entities.PriceFactor{
				Type:         entities.PriceFactorType(f.Type),
				Value:        f.Value,
				IsPercentage: f.IsPercentage,
				Description:  f.Description,
			})
		}
	}
	if r.QuantityTiers != nil {
		update.QuantityTiers = make([]entities.QuantityTier, 0, len(r.QuantityTiers))
		for _, t := range r.QuantityTiers {
			update.QuantityTiers = append(update.QuantityTiers, entities.QuantityTier{
				MinQuantity:        t.MinQuantity,
				MaxQuantity:        t.MaxQuantity,
				DiscountPercentage: t.DiscountPercentage,
				Description:        t.Description,
			})
		}
	}
	if r.TimeOfDayRules != nil {
		update.TimeOfDayRules = make([]entities.TimeOfDayRule, 0, len(r.TimeOfDayRules))
		for _, tr := range r.TimeOfDayRules {
			update.TimeOfDayRules = append(update.TimeOfDayRules, entities.TimeOfDayRule{
				StartHour:   tr.StartHour,
				EndHour:     tr.EndHour,
				Multiplier:  tr.Multiplier,
				Description: tr.Description,
			})
		}
	}
	if r.SeasonalAdjustments != nil {
		update.SeasonalAdjustments = make([]entities.SeasonalAdjustment, 0, len(r.SeasonalAdjustments))
		for _, sa := range r.SeasonalAdjustments {
			update.SeasonalAdjustments = append(update.SeasonalAdjustments, entities.SeasonalAdjustment{
				StartMonth:  sa.StartMonth,
				EndMonth:    sa.EndMonth,
				Multiplier:  sa.Multiplier,
				Description: sa.Description,
			})
		}
	}
	if r.TreatmentPricing != nil {
		update.TreatmentPricing = make([]entities.TreatmentPricing, 0, len(r.TreatmentPricing))
		for _, tp := range r.TreatmentPricing {
			update.TreatmentPricing = append(update.TreatmentPricing, entities.TreatmentPricing{
				TreatmentType:    tp.TreatmentType,
				AdditionalCost:   tp.AdditionalCost,
				PriceImprovement: tp.PriceImprovement,
				Description:      tp.Description,
			})
		}
	}
	return update
}

type ApproveRuleRequest struct {
	ApprovedBy string `json:"approved_by" binding:"required"`
}

type RejectRuleRequest struct {
	Notes string `json:"notes"`
}
