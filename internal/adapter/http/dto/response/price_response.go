package response

import (
	"time"

	"wastebazaar/internal/domain/entities"
)

type PriceFactorResponse struct {
	Type         string  `json:"type"`
	Value        float64 `json:"value"`
	IsPercentage bool    `json:"is_percentage"`
	Description  string  `json:"description,omitempty"`
}

type AppliedRuleResponse struct {
	RuleID         string                `json:"rule_id"`
	RuleName       string                `json:"rule_name"`
	BasePrice      float64               `json:"base_price"`
	FinalPrice     float64               `json:"final_price"`
	FactorsApplied []PriceFactorResponse `json:"factors_applied"`
}

type AdjustmentResponse struct {
	Factor       string  `json:"factor"`
	Value        float64 `json:"value"`
	IsPercentage bool    `json:"is_percentage"`
	Description  string  `json:"description"`
}

type BreakdownResponse struct {
	MaterialCost   float64 `json:"material_cost"`
	ProcessingCost float64 `json:"processing_cost"`
	LogisticsCost  float64 `json:"logistics_cost"`
	PlatformFee    float64 `json:"platform_fee"`
	Profit         float64 `json:"profit"`
}

type TreatmentAnalysisResponse struct {
	CurrentPrice   float64 `json:"current_price"`
	TreatedPrice   float64 `json:"treated_price"`
	TreatmentCost  float64 `json:"treatment_cost"`
	NetBenefit     float64 `json:"net_benefit"`
	Recommendation string  `json:"recommendation"`
}

type PriceCalculationResponse struct {
	BasePrice            float64                    `json:"base_price"`
	AppliedRules         []AppliedRuleResponse      `json:"applied_rules"`
	Adjustments          []AdjustmentResponse       `json:"adjustments"`
	FinalPrice           float64                    `json:"final_price"`
	Currency             string                     `json:"currency"`
	MarketAverage        float64                    `json:"market_average,omitempty"`
	CompetitiveAdvantage float64                    `json:"competitive_advantage,omitempty"`
	Breakdown            BreakdownResponse          `json:"breakdown"`
	TreatmentAnalysis    *TreatmentAnalysisResponse `json:"treatment_analysis,omitempty"`
	ValidUntil           time.Time                  `json:"valid_until"`
	CalculatedAt         time.Time                  `json:"calculated_at"`
}

func FromPriceResult(res entities.PriceCalculationResult) PriceCalculationResponse {
	out := PriceCalculationResponse{
		BasePrice:            res.BasePrice,
		AppliedRules:         make([]AppliedRuleResponse, 0, len(res.AppliedRules)),
		Adjustments:          make([]AdjustmentResponse, 0, len(res.Adjustments)),
		FinalPrice:           res.FinalPrice,
		Currency:             res.Currency,
		MarketAverage:        res.MarketAverage,
		CompetitiveAdvantage: res.CompetitiveAdvantage,
		Breakdown: BreakdownResponse{
			MaterialCost:   res.Breakdown.MaterialCost,
			ProcessingCost: res.Breakdown.ProcessingCost,
			LogisticsCost:  res.Breakdown.LogisticsCost,
			PlatformFee:    res.Breakdown.PlatformFee,
			Profit:         res.Breakdown.Profit,
		},
		ValidUntil:   res.ValidUntil,
		CalculatedAt: res.CalculatedAt,
	}
	for _, ar := range res.AppliedRules {
		out.AppliedRules = append(out.AppliedRules, AppliedRuleResponse{
			RuleID:         ar.RuleID,
			RuleName:       ar.RuleName,
			BasePrice:      ar.BasePrice,
			FinalPrice:     ar.FinalPrice,
			FactorsApplied: fromFactors(ar.FactorsApplied),
		})
	}
	for _, adj := range res.Adjustments {
		out.Adjustments = append(out.Adjustments, AdjustmentResponse{
			Factor:       adj.Factor,
			Value:        adj.Value,
			IsPercentage: adj.IsPercentage,
			Description:  adj.Description,
		})
	}
	if res.TreatmentAnalysis != nil {
		out.TreatmentAnalysis = &TreatmentAnalysisResponse{
			CurrentPrice:   res.TreatmentAnalysis.CurrentPrice,
			TreatedPrice:   res.TreatmentAnalysis.TreatedPrice,
			TreatmentCost:  res.TreatmentAnalysis.TreatmentCost,
			NetBenefit:     res.TreatmentAnalysis.NetBenefit,
			Recommendation: string(res.TreatmentAnalysis.Recommendation),
		}
	}
	return out
}

func fromFactors(factors []entities.PriceFactor) []PriceFactorResponse {
	out := make([]PriceFactorResponse, 0, len(factors))
	for _, f := range factors {
		out = append(out, PriceFactorResponse{
			Type:         string(f.Type),
			Value:        f.Value,
			IsPercentage: f.IsPercentage,
			Description:  f.Description,
		})
	}
	return out
}

type MarketQuoteResponse struct {
	Source   string  `json:"source"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Unit     string  `json:"unit"`
}

func FromMarketQuotes(quotes []entities.MarketQuote) []MarketQuoteResponse {
	out := make([]MarketQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, MarketQuoteResponse{
			Source:   q.Source,
			Price:    q.Price,
			Currency: q.Currency,
			Unit:     q.Unit,
		})
	}
	return out
}
