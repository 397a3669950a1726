package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wastebazaar/internal/domain/entities"
	"wastebazaar/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidWeight       = errors.New("invalid weight")
	ErrInvalidMaterialType = errors.New("invalid material type")
	ErrInvalidCondition    = errors.New("invalid material condition")
	ErrInvalidUrgency      = errors.New("invalid urgency")
	ErrPriceCalculation    = errors.New("price calculation failed")
)

// IPricingUseCase exposes the dynamic pricing engine.
//
//   - CalculatePrice evaluates the active rule set against one material
//     submission and returns a fully itemized per-kg price.
//   - MarketPrices returns the raw oracle quotes for a material type.

type IPricingUseCase interface {
	CalculatePrice(ctx context.Context, req entities.PriceRequest) (entities.PriceCalculationResult, error)
	MarketPrices(ctx context.Context, materialType entities.MaterialType) ([]entities.MarketQuote, error)
}

type PricingUseCase struct {
	rules  interfaces.IPricingRuleRepository
	oracle interfaces.IMarketOracle
	tables Tables
	log    *zap.Logger
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(rules interfaces.IPricingRuleRepository, oracle interfaces.IMarketOracle, tables Tables, log *zap.Logger) *PricingUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &PricingUseCase{rules: rules, oracle: oracle, tables: tables, log: log}
}

// CalculatePrice runs the pure quote computation, then commits the rule usage
// deltas it produced. Usage commits are fire-and-forget: a failed counter
// update is logged and never invalidates the returned price.
func (u *PricingUseCase) CalculatePrice(ctx context.Context, req entities.PriceRequest) (entities.PriceCalculationResult, error) {
	if req.Weight <= 0 {
		return entities.PriceCalculationResult{}, ErrInvalidWeight
	}
	if !req.MaterialType.Valid() {
		return entities.PriceCalculationResult{}, ErrInvalidMaterialType
	}
	if !req.Condition.Valid() {
		return entities.PriceCalculationResult{}, ErrInvalidCondition
	}
	if req.Urgency != "" && !req.Urgency.Valid() {
		return entities.PriceCalculationResult{}, ErrInvalidUrgency
	}
	if req.RequestedAt.IsZero() {
		req.RequestedAt = time.Now().UTC()
	}

	result, usages, err := u.quote(ctx, req)
	if err != nil {
		u.log.Error("price calculation failed",
			zap.String("material_type", string(req.MaterialType)),
			zap.Error(err))
		return entities.PriceCalculationResult{}, fmt.Errorf("%w: %v", ErrPriceCalculation, err)
	}

	for _, d := range usages {
		if err := u.rules.RecordUsage(ctx, d.RuleID, d.Value); err != nil {
			u.log.Warn("rule usage update failed",
				zap.String("rule_id", d.RuleID),
				zap.Error(err))
		}
	}

	u.log.Info("price calculated",
		zap.String("material_type", string(req.MaterialType)),
		zap.Float64("final_price", result.FinalPrice),
		zap.Int("rules_applied", len(result.AppliedRules)))
	return result, nil
}

func (u *PricingUseCase) MarketPrices(ctx context.Context, materialType entities.MaterialType) ([]entities.MarketQuote, error) {
	if !materialType.Valid() {
		return nil, ErrInvalidMaterialType
	}
	return u.oracle.GetMarketPrices(ctx, materialType)
}

// quote is the pure pricing computation: one request in, one result plus the
// list of pending usage increments out. It performs no writes.
func (u *PricingUseCase) quote(ctx context.Context, req entities.PriceRequest) (entities.PriceCalculationResult, []entities.UsageDelta, error) {
	matched, err := u.rules.FindApplicableRules(ctx, req.MaterialType, req.SubType, req.Condition, req.Location.State)
	if err != nil {
		return entities.PriceCalculationResult{}, nil, fmt.Errorf("find applicable rules: %w", err)
	}

	if len(matched) == 0 {
		return u.defaultPricing(req), nil, nil
	}

	var (
		applied    []entities.AppliedRule
		usages     []entities.UsageDelta
		basePrice  float64
		finalPrice float64
	)
	for i, rule := range matched {
		contribution, err := u.applyRule(ctx, rule, req)
		if err != nil {
			return entities.PriceCalculationResult{}, nil, fmt.Errorf("apply rule %s: %w", rule.ID, err)
		}
		applied = append(applied, contribution)

		if i == 0 {
			// Highest-priority rule anchors the price.
			basePrice = contribution.BasePrice
			finalPrice = contribution.FinalPrice
		} else {
			finalPrice = rule.Strategy.Combine(finalPrice, contribution.FinalPrice)
		}

		usages = append(usages, entities.UsageDelta{RuleID: rule.ID, Value: contribution.FinalPrice * req.Weight})
	}

	finalPrice = applyQuantityTiers(finalPrice, req.Weight, matched)
	finalPrice = applyTimeOfDay(finalPrice, req.RequestedAt, matched)
	finalPrice = applySeasonal(finalPrice, req.RequestedAt, matched)
	if req.Urgency != "" && req.Urgency != entities.UrgencyLow {
		finalPrice *= u.tables.urgencyMultiplier(req.Urgency)
	}
	if finalPrice < 0 {
		finalPrice = 0
	}

	marketAverage, err := u.averageMarketPrice(ctx, req.MaterialType)
	if err != nil {
		return entities.PriceCalculationResult{}, nil, err
	}

	analysis, err := u.treatmentAnalysis(ctx, req, finalPrice)
	if err != nil {
		return entities.PriceCalculationResult{}, nil, err
	}

	now := time.Now().UTC()
	result := entities.PriceCalculationResult{
		BasePrice:     basePrice,
		AppliedRules:  applied,
		Adjustments:   totalAdjustment(basePrice, finalPrice),
		FinalPrice:    finalPrice,
		Currency:      u.tables.Currency,
		MarketAverage: marketAverage,
		// TODO: derive competitive advantage from final price vs market
		// average once product defines the formula.
		CompetitiveAdvantage: 0,
		Breakdown:            u.tables.breakdown(finalPrice, req.Weight),
		TreatmentAnalysis:    analysis,
		ValidUntil:           now.Add(u.tables.QuoteValidity),
		CalculatedAt:         now,
	}
	return result, usages, nil
}

// applyRule computes one rule's per-kg contribution: base price, condition
// multiplier, location adjustment, and (for market-based rules) the blend
// with the oracle average.
func (u *PricingUseCase) applyRule(ctx context.Context, rule entities.PricingRule, req entities.PriceRequest) (entities.AppliedRule, error) {
	basePrice := rule.BasePrice
	finalPrice := basePrice
	var factorsApplied []entities.PriceFactor

	if factor, ok := rule.Factor(entities.FactorConditionMultiplier); ok {
		multiplier := u.tables.conditionMultiplier(req.Condition)
		finalPrice *= multiplier
		factor.Value = multiplier
		factorsApplied = append(factorsApplied, factor)
	}

	if factor, ok := rule.Factor(entities.FactorLocationAdjustment); ok && u.tables.isHighCostState(req.Location.State) {
		if factor.IsPercentage {
			finalPrice += finalPrice * factor.Value / 100
		} else {
			finalPrice += factor.Value
		}
		factorsApplied = append(factorsApplied, factor)
	}

	if rule.Strategy == entities.StrategyMarketBased {
		marketPrice, err := u.averageMarketPrice(ctx, req.MaterialType)
		if err != nil {
			return entities.AppliedRule{}, err
		}
		if marketPrice > 0 {
			finalPrice = finalPrice*(1-rule.MarketPriceWeight) + marketPrice*rule.MarketPriceWeight
		}
	}

	return entities.AppliedRule{
		RuleID:         rule.ID,
		RuleName:       rule.Name,
		BasePrice:      basePrice,
		FinalPrice:     finalPrice,
		FactorsApplied: factorsApplied,
	}, nil
}

// defaultPricing is the fallback when no rule matches: a fixed per-material
// base price scaled by the condition multiplier.
func (u *PricingUseCase) defaultPricing(req entities.PriceRequest) entities.PriceCalculationResult {
	basePrice := u.tables.defaultBasePrice(req.MaterialType)
	multiplier := u.tables.conditionMultiplier(req.Condition)
	finalPrice := basePrice * multiplier

	now := time.Now().UTC()
	return entities.PriceCalculationResult{
		BasePrice:    basePrice,
		AppliedRules: []entities.AppliedRule{},
		Adjustments: []entities.Adjustment{
			{
				Factor:       "condition",
				Value:        multiplier,
				IsPercentage: false,
				Description:  fmt.Sprintf("Condition adjustment for %s", req.Condition),
			},
		},
		FinalPrice:   finalPrice,
		Currency:     u.tables.Currency,
		Breakdown:    u.tables.breakdown(finalPrice, req.Weight),
		ValidUntil:   now.Add(u.tables.QuoteValidity),
		CalculatedAt: now,
	}
}

// applyQuantityTiers applies the tier discount of the first matched rule that
// declares tiers; later rules' tiers never stack a second discount.
func applyQuantityTiers(price, weight float64, rules []entities.PricingRule) float64 {
	for _, rule := range rules {
		if len(rule.QuantityTiers) == 0 {
			continue
		}
		for _, tier := range rule.QuantityTiers {
			if tier.Matches(weight) {
				price *= 1 - tier.DiscountPercentage/100
				break
			}
		}
		break
	}
	return price
}

// applyTimeOfDay compounds the first matching hour window of every rule that
// declares time-of-day rules.
func applyTimeOfDay(price float64, at time.Time, rules []entities.PricingRule) float64 {
	hour := at.Hour()
	for _, rule := range rules {
		for _, tr := range rule.TimeOfDayRules {
			if hour >= tr.StartHour && hour <= tr.EndHour {
				price *= tr.Multiplier
				break
			}
		}
	}
	return price
}

// applySeasonal is the month-keyed counterpart of applyTimeOfDay.
func applySeasonal(price float64, at time.Time, rules []entities.PricingRule) float64 {
	month := int(at.Month())
	for _, rule := range rules {
		for _, sa := range rule.SeasonalAdjustments {
			if month >= sa.StartMonth && month <= sa.EndMonth {
				price *= sa.Multiplier
				break
			}
		}
	}
	return price
}

// treatmentAnalysis sums treatment costs and price improvements across all
// requested treatments and all matching rules. A treatment priced by several
// rules contributes once per rule; the sums intentionally stack.
func (u *PricingUseCase) treatmentAnalysis(ctx context.Context, req entities.PriceRequest, currentPrice float64) (*entities.TreatmentAnalysis, error) {
	if len(req.TreatmentsRequired) == 0 {
		return nil, nil
	}

	rulesWithTreatment, err := u.rules.FindRulesWithTreatment(ctx, req.MaterialType, req.TreatmentsRequired)
	if err != nil {
		return nil, fmt.Errorf("find treatment rules: %w", err)
	}
	if len(rulesWithTreatment) == 0 {
		return nil, nil
	}

	var totalCost, totalImprovement float64
	for _, treatment := range req.TreatmentsRequired {
		for _, rule := range rulesWithTreatment {
			if entry, ok := rule.TreatmentEntry(treatment); ok {
				totalCost += entry.AdditionalCost
				totalImprovement += entry.PriceImprovement
			}
		}
	}

	netBenefit := totalImprovement - totalCost
	recommendation := entities.RecommendSellAsIs
	if netBenefit > 0 {
		recommendation = entities.RecommendTreat
	}

	return &entities.TreatmentAnalysis{
		CurrentPrice:   currentPrice,
		TreatedPrice:   currentPrice + totalImprovement,
		TreatmentCost:  totalCost,
		NetBenefit:     netBenefit,
		Recommendation: recommendation,
	}, nil
}

func (u *PricingUseCase) averageMarketPrice(ctx context.Context, materialType entities.MaterialType) (float64, error) {
	quotes, err := u.oracle.GetMarketPrices(ctx, materialType)
	if err != nil {
		return 0, fmt.Errorf("market prices: %w", err)
	}
	if len(quotes) == 0 {
		return 0, nil
	}
	var sum float64
	for _, q := range quotes {
		sum += q.Price
	}
	return sum / float64(len(quotes)), nil
}

func totalAdjustment(basePrice, finalPrice float64) []entities.Adjustment {
	percentage := 0.0
	if basePrice > 0 {
		percentage = (finalPrice - basePrice) / basePrice * 100
	}
	return []entities.Adjustment{
		{
			Factor:       "total_adjustment",
			Value:        percentage,
			IsPercentage: true,
			Description:  fmt.Sprintf("Total price adjustment: %+.2f%%", percentage),
		},
	}
}
