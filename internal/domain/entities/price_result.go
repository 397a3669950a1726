package entities

import "time"

// MarketQuote is one comparison price from the market data oracle.
type MarketQuote struct {
	Source   string  `json:"source"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Unit     string  `json:"unit"`
}

// AppliedRule summarizes one rule's contribution to a price calculation.
type AppliedRule struct {
	RuleID         string        `json:"rule_id"`
	RuleName       string        `json:"rule_name"`
	BasePrice      float64       `json:"base_price"`
	FinalPrice     float64       `json:"final_price"`
	FactorsApplied []PriceFactor `json:"factors_applied"`
}

type Adjustment struct {
	Factor       string  `json:"factor"`
	Value        float64 `json:"value"`
	IsPercentage bool    `json:"is_percentage"`
	Description  string  `json:"description"`
}

// Breakdown splits the total value of a priced batch into presentation
// shares. It is not a cost model.
type Breakdown struct {
	MaterialCost   float64 `json:"material_cost"`
	ProcessingCost float64 `json:"processing_cost"`
	LogisticsCost  float64 `json:"logistics_cost"`
	PlatformFee    float64 `json:"platform_fee"`
	Profit         float64 `json:"profit"`
}

type TreatmentRecommendation string

const (
	RecommendTreat    TreatmentRecommendation = "treat"
	RecommendSellAsIs TreatmentRecommendation = "sell_as_is"
)

// TreatmentAnalysis compares selling a batch as-is against treating it first.
type TreatmentAnalysis struct {
	CurrentPrice   float64                 `json:"current_price"`
	TreatedPrice   float64                 `json:"treated_price"`
	TreatmentCost  float64                 `json:"treatment_cost"`
	NetBenefit     float64                 `json:"net_benefit"`
	Recommendation TreatmentRecommendation `json:"recommendation"`
}

// UsageDelta is a pending usage-counter increment for one matched rule. The
// engine returns these alongside the result; committing them is a separate,
// fire-and-forget step.
type UsageDelta struct {
	RuleID string
	Value  float64
}

// PriceCalculationResult is the fully itemized outcome of one calculation.
// It is built fresh per call and never persisted by the engine.
type PriceCalculationResult struct {
	BasePrice    float64       `json:"base_price"`
	AppliedRules []AppliedRule `json:"applied_rules"`
	Adjustments  []Adjustment  `json:"adjustments"`
	FinalPrice   float64       `json:"final_price"`
	Currency     string        `json:"currency"`

	MarketAverage        float64 `json:"market_average,omitempty"`
	CompetitiveAdvantage float64 `json:"competitive_advantage,omitempty"`

	Breakdown Breakdown `json:"breakdown"`

	TreatmentAnalysis *TreatmentAnalysis `json:"treatment_analysis,omitempty"`

	ValidUntil   time.Time `json:"valid_until"`
	CalculatedAt time.Time `json:"calculated_at"`
}
