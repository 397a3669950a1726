package entities

import "time"

// PricingStrategy tags how a rule prices a material and how its output is
// folded into the running total when several rules match the same request.

type PricingStrategy string

const (
	StrategyFixed       PricingStrategy = "fixed"
	StrategyMarketBased PricingStrategy = "market_based"
	StrategyDynamic     PricingStrategy = "dynamic"
	StrategyAuction     PricingStrategy = "auction"
)

func (s PricingStrategy) Valid() bool {
	switch s {
	case StrategyFixed, StrategyMarketBased, StrategyDynamic, StrategyAuction:
		return true
	}
	return false
}

// combiners maps each strategy to its cross-rule combination function. A
// strategy without an entry leaves the running total untouched, so an
// unrecognized (or auction) rule can never silently lower the price.
var combiners = map[PricingStrategy]func(current, next float64) float64{
	StrategyFixed: maxPrice,
	StrategyMarketBased: func(current, next float64) float64 {
		return (current + next) / 2
	},
	StrategyDynamic: maxPrice,
}

func maxPrice(current, next float64) float64 {
	if next > current {
		return next
	}
	return current
}

// Combine folds this rule's computed price into the running total produced by
// higher-priority rules.
func (s PricingStrategy) Combine(current, next float64) float64 {
	if combine, ok := combiners[s]; ok {
		return combine(current, next)
	}
	return current
}

// PriceFactorType identifies an adjustment a rule may declare.
type PriceFactorType string

const (
	FactorBasePrice           PriceFactorType = "base_price"
	FactorConditionMultiplier PriceFactorType = "condition_multiplier"
	FactorQualityMultiplier   PriceFactorType = "quality_multiplier"
	FactorQuantityDiscount    PriceFactorType = "quantity_discount"
	FactorSeasonalAdjustment  PriceFactorType = "seasonal_adjustment"
	FactorLocationAdjustment  PriceFactorType = "location_adjustment"
	FactorUrgencyPremium      PriceFactorType = "urgency_premium"
)

type PriceFactor struct {
	Type         PriceFactorType `json:"type"`
	Value        float64         `json:"value"`
	IsPercentage bool            `json:"is_percentage"`
	Description  string          `json:"description"`
}

// QuantityTier grants a discount once a submission's weight falls inside the
// tier's range. MaxQuantity nil means open-ended.
type QuantityTier struct {
	MinQuantity        float64  `json:"min_quantity"`
	MaxQuantity        *float64 `json:"max_quantity,omitempty"`
	DiscountPercentage float64  `json:"discount_percentage"`
	Description        string   `json:"description,omitempty"`
}

// Matches reports whether weight falls inside the tier.
func (t QuantityTier) Matches(weight float64) bool {
	if weight < t.MinQuantity {
		return false
	}
	return t.MaxQuantity == nil || weight <= *t.MaxQuantity
}

type TimeOfDayRule struct {
	StartHour   int     `json:"start_hour"`
	EndHour     int     `json:"end_hour"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description,omitempty"`
}

type SeasonalAdjustment struct {
	StartMonth  int     `json:"start_month"`
	EndMonth    int     `json:"end_month"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description,omitempty"`
}

// TreatmentPricing prices an optional pre-processing step: what it costs and
// how much it lifts the sale price.
type TreatmentPricing struct {
	TreatmentType    string  `json:"treatment_type"`
	AdditionalCost   float64 `json:"additional_cost"`
	PriceImprovement float64 `json:"price_improvement"`
	Description      string  `json:"description,omitempty"`
}

// RuleUsage tracks how often a rule was applied and the value it priced.
type RuleUsage struct {
	TimesApplied int        `json:"times_applied"`
	TotalValue   float64    `json:"total_value"`
	AveragePrice float64    `json:"average_price"`
	LastUsed     *time.Time `json:"last_used,omitempty"`
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// PricingRule is a prioritized pricing policy persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//
// Applicability filters (SubTypes, Conditions, Locations) that are empty mean
// "applies to all".
type PricingRule struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	Priority    int    `json:"priority"`

	MaterialType MaterialType        `json:"material_type"`
	SubTypes     []string            `json:"sub_types,omitempty"`
	Conditions   []MaterialCondition `json:"conditions,omitempty"`
	Locations    []string            `json:"locations,omitempty"`

	Strategy PricingStrategy `json:"strategy"`

	BasePrice    float64       `json:"base_price"`
	Currency     string        `json:"currency"`
	PriceFactors []PriceFactor `json:"price_factors,omitempty"`

	MarketPriceWeight float64 `json:"market_price_weight"`

	QuantityTiers []QuantityTier `json:"quantity_tiers,omitempty"`

	ValidFrom  time.Time  `json:"valid_from"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`

	TimeOfDayRules      []TimeOfDayRule      `json:"time_of_day_rules,omitempty"`
	SeasonalAdjustments []SeasonalAdjustment `json:"seasonal_adjustments,omitempty"`
	TreatmentPricing    []TreatmentPricing   `json:"treatment_pricing,omitempty"`

	Usage RuleUsage `json:"usage"`

	CreatedBy      string         `json:"created_by,omitempty"`
	ApprovedBy     string         `json:"approved_by,omitempty"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	ApprovalNotes  string         `json:"approval_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Factor returns the first declared factor of the given type.
func (r PricingRule) Factor(t PriceFactorType) (PriceFactor, bool) {
	for _, f := range r.PriceFactors {
		if f.Type == t {
			return f, true
		}
	}
	return PriceFactor{}, false
}

// TreatmentEntry returns the first treatment pricing entry for the given
// treatment type.
func (r PricingRule) TreatmentEntry(treatmentType string) (TreatmentPricing, bool) {
	for _, tp := range r.TreatmentPricing {
		if tp.TreatmentType == treatmentType {
			return tp, true
		}
	}
	return TreatmentPricing{}, false
}

// AppliesAt reports whether the rule's validity window contains the instant.
func (r PricingRule) AppliesAt(at time.Time) bool {
	if at.Before(r.ValidFrom) {
		return false
	}
	return r.ValidUntil == nil || !at.After(*r.ValidUntil)
}
