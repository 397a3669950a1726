package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"wastebazaar/internal/domain/entities"
	mock_interfaces "wastebazaar/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newPricingUseCase(t *testing.T) (*PricingUseCase, *mock_interfaces.MockIPricingRuleRepository, *mock_interfaces.MockIMarketOracle) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_interfaces.NewMockIPricingRuleRepository(ctrl)
	oracle := mock_interfaces.NewMockIMarketOracle(ctrl)
	return NewPricingUseCase(repo, oracle, DefaultTables(), nil), repo, oracle
}

func plasticRequest() entities.PriceRequest {
	return entities.PriceRequest{
		MaterialType: entities.MaterialTypePlastic,
		Condition:    entities.ConditionClean,
		Weight:       10,
		Location:     entities.Location{State: "Kano", City: "Kano"},
		RequestedAt:  time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC),
	}
}

func plasticQuotes() []entities.MarketQuote {
	return []entities.MarketQuote{
		{Source: "Lagos Market", Price: 150, Currency: "NGN", Unit: "per_kg"},
		{Source: "Kano Market", Price: 140, Currency: "NGN", Unit: "per_kg"},
		{Source: "Port Harcourt", Price: 160, Currency: "NGN", Unit: "per_kg"},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPricingUseCase_CalculatePrice_Validation(t *testing.T) {
	uc := NewPricingUseCase(nil, nil, DefaultTables(), nil)

	t.Run("invalid weight", func(t *testing.T) {
		req := plasticRequest()
		req.Weight = 0
		_, err := uc.CalculatePrice(context.Background(), req)
		if !errors.Is(err, ErrInvalidWeight) {
			t.Fatalf("expected ErrInvalidWeight, got %v", err)
		}
	})

	t.Run("invalid material type", func(t *testing.T) {
		req := plasticRequest()
		req.MaterialType = "glass"
		_, err := uc.CalculatePrice(context.Background(), req)
		if !errors.Is(err, ErrInvalidMaterialType) {
			t.Fatalf("expected ErrInvalidMaterialType, got %v", err)
		}
	})

	t.Run("invalid condition", func(t *testing.T) {
		req := plasticRequest()
		req.Condition = "pristine"
		_, err := uc.CalculatePrice(context.Background(), req)
		if !errors.Is(err, ErrInvalidCondition) {
			t.Fatalf("expected ErrInvalidCondition, got %v", err)
		}
	})

	t.Run("invalid urgency", func(t *testing.T) {
		req := plasticRequest()
		req.Urgency = "asap"
		_, err := uc.CalculatePrice(context.Background(), req)
		if !errors.Is(err, ErrInvalidUrgency) {
			t.Fatalf("expected ErrInvalidUrgency, got %v", err)
		}
	})
}

func TestPricingUseCase_CalculatePrice_DefaultPricing(t *testing.T) {
	uc, repo, _ := newPricingUseCase(t)

	repo.EXPECT().FindApplicableRules(gomock.Any(), entities.MaterialTypePlastic, "", entities.ConditionClean, "Kano").Return(nil, nil)

	res, err := uc.CalculatePrice(context.Background(), plasticRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.BasePrice, 120) || !almostEqual(res.FinalPrice, 120) {
		t.Fatalf("expected default plastic price 120, got base=%v final=%v", res.BasePrice, res.FinalPrice)
	}
	if len(res.AppliedRules) != 0 {
		t.Fatalf("expected no applied rules, got %d", len(res.AppliedRules))
	}
	if res.Currency != "NGN" {
		t.Fatalf("expected NGN, got %s", res.Currency)
	}
	if !almostEqual(res.Breakdown.MaterialCost, 840) {
		t.Fatalf("expected material cost 840, got %v", res.Breakdown.MaterialCost)
	}
	if !res.ValidUntil.After(res.CalculatedAt) {
		t.Fatalf("expected quote validity window")
	}
}

func TestPricingUseCase_CalculatePrice_DefaultPricingConditionAndFallback(t *testing.T) {
	uc, repo, _ := newPricingUseCase(t)

	req := plasticRequest()
	req.Condition = entities.ConditionExcellent
	repo.EXPECT().FindApplicableRules(gomock.Any(), entities.MaterialTypePlastic, "", entities.ConditionExcellent, "Kano").Return([]entities.PricingRule{}, nil)

	res, err := uc.CalculatePrice(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.FinalPrice, 144) {
		t.Fatalf("expected 120*1.2=144, got %v", res.FinalPrice)
	}
}

func TestPricingUseCase_CalculatePrice_SingleRuleConditionMultiplier(t *testing.T) {
	uc, repo, oracle := newPricingUseCase(t)

	rule := entities.PricingRule{
		ID:           "rule-1",
		Name:         "Plastic base",
		Strategy:     entities.StrategyFixed,
		MaterialType: entities.MaterialTypePlastic,
		BasePrice:    100,
		PriceFactors: []entities.PriceFactor{
			{Type: entities.FactorConditionMultiplier, Value: 1, IsPercentage: false},
		},
	}

	req := plasticRequest()
	req.Condition = entities.ConditionExcellent

	repo.EXPECT().FindApplicableRules(gomock.Any(), entities.MaterialTypePlastic, "", entities.ConditionExcellent, "Kano").Return([]entities.PricingRule{rule}, nil)
	oracle.EXPECT().GetMarketPrices(gomock.Any(), entities.MaterialTypePlastic).Return(plasticQuotes(), nil)
	repo.EXPECT().RecordUsage(gomock.Any(), "rule-1", gomock.Any()).Return(nil)

	res, err := uc.CalculatePrice(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.BasePrice, 100) {
		t.Fatalf("expected base 100, got %v", res.BasePrice)
	}
	if !almostEqual(res.FinalPrice, 120) {
		t.Fatalf("expected 100*1.2=120, got %v", res.FinalPrice)
	}
	if !almostEqual(res.MarketAverage, 150) {
		t.Fatalf("expected market average 150, got %v", res.MarketAverage)
	}
	if len(res.AppliedRules) != 1 || res.AppliedRules[0].RuleID != "rule-1" {
		t.Fatalf("unexpected applied rules: %+v", res.AppliedRules)
	}
	if len(res.AppliedRules[0].FactorsApplied) != 1 || !almostEqual(res.AppliedRules[0].FactorsApplied[0].Value, 1.2) {
		t.Fatalf("expected resolved condition factor 1.2, got %+v", res.AppliedRules[0].FactorsApplied)
	}
}

func TestPricingUseCase_CalculatePrice_LocationAdjustment(t *testing.T) {
	uc, repo, oracle := newPricingUseCase(t)

	rule := entities.PricingRule{
		ID:           "rule-1",
		Name:         "Lagos premium",
		Strategy:     entities.StrategyFixed,
		MaterialType: entities.MaterialTypePlastic,
		BasePrice:    100,
		PriceFactors: []entities.PriceFactor{
			{Type: entities.FactorLocationAdjustment, Value: 10, IsPercentage: true},
		},
	}

	t.Run("high cost state", func(t *testing.T) {
		req := plasticRequest()
		req.Location.State = "Lagos"

		repo.EXPECT().FindApplicableRules(gomock.Any(), entities.MaterialTypePlastic, "", entities.ConditionClean, "Lagos").Return([]entities.PricingRule{rule}, nil)
		oracle.EXPECT().GetMarketPrices(gomock.Any(), entities.MaterialTypePlastic).Return(plasticQuotes(), nil)
		repo.EXPECT().RecordUsage(gomock.Any(), "rule-1", gomock.Any()).Return(nil)

		res, err := uc.CalculatePrice(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(res.FinalPrice, 110) {
			t.Fatalf("expected 100+10%%=110, got %v", res.FinalPrice)
		}
	})

	t.Run("other state untouched", func(t *testing.T) {
		req := plasticRequest()

		repo.EXPECT().FindApplicableRules(gomock.Any(), entities.MaterialTypePlastic, "", entities.ConditionClean, "Kano").Return([]entities.PricingRule{rule}, nil)
		oracle.EXPECT().GetMarketPrices(gomock.Any(), entities.MaterialTypePlastic).Return(plasticQuotes(), nil)
		repo.EXPECT().RecordUsage(gomock.Any(), "rule-1", gomock.Any()).Return(nil)

		res, err := uc.CalculatePrice(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(res.FinalPrice, 100) {
			t.Fatalf("expected 100, got %v", res.FinalPrice)
		}
	})
}

func TestPricingUseCase_CalculatePrice_MarketBlendAndCombination(t *testing.T) {
	uc, repo, oracle := newPricingUseCase(t)

	fixed := entities.PricingRule{
		ID:           "rule-fixed",
		Name:         "Fixed anchor",
		Strategy:     entities.StrategyFixed,
		MaterialType: entities.MaterialTypePlastic,
		Priority:     90,
		BasePrice:    100,
	}
	market := entities.PricingRule{
		ID:                "rule-market",
		Name:              "Market follower",
		Strategy:          entities.StrategyMarketBased,
		MaterialType:      entities.MaterialTypePlastic,
		Priority:          50,
		BasePrice:         100,
		MarketPriceWeight: 0.5,
	}

	repo.EXPECT().FindApplicableRules(gomock.Any(), entities.MaterialTypePlastic, "", entities.ConditionClean, "Kano").Return([]entities.PricingRule{fixed, market}, nil)
	// Once for the market-based rule's blend, once for the result's market average.
	oracle.EXPECT().GetMarketPrices(gomock.Any(), entities.MaterialTypePlastic).Return(plasticQuotes(), nil).Times(2)
	repo.EXPECT().RecordUsage(gomock.Any(), "rule-fixed", gomock.Any()).Return(nil)
	repo.EXPECT().RecordUsage(gomock.Any(), "rule-market", gomock.Any()).Return(nil)

	res, err := uc.CalculatePrice(context.Background(), plasticRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Market rule prices 100*0.5 + 150*0.5 = 125; market_based combines by mean:
	// (100 + 125) / 2 = 112.5.
	if !almostEqual(res.FinalPrice, 112.5) {
		t.Fatalf("expected 112.5, got %v", res.FinalPrice)
	}
	if !almostEqual(res.BasePrice, 100) {
		t.Fatalf("expected anchor base 100, got %v", res.BasePrice)
	}
	if len(res.AppliedRules) != 2 {
		t.Fatalf("expected both rules applied, got %d", len(res.AppliedRules))
	}
}

func TestPricingUseCase_CalculatePrice_DynamicCombineTakesMax(t *testing.T) {
	uc, repo, oracle := newPricingUseCase(t)

	first := entities.PricingRule{ID: "r1", Name: "low", Strategy: entities.StrategyFixed, MaterialType: entities.MaterialTypePlastic, BasePrice: 80}
	second := entities.PricingRule{ID: "r2", Name: "high", Strategy: entities.StrategyDynamic, MaterialType: entities.MaterialTypePlastic, BasePrice: 95}

	repo.EXPECT().FindApplicableRules(gomock.Any(), entities.MaterialTypePlastic, "", entities.ConditionClean, "Kano").Return([]entities.PricingRule{first, second}, nil)
	oracle.EXPECT().GetMarketPrices(gomock.Any(), entities.MaterialTypePlastic).Return(plasticQuotes(), nil)
	repo.EXPECT().RecordUsage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	res, err := uc.CalculatePrice(context.Background(), plasticRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.FinalPrice, 95) {
		t.Fatalf("expected max(80,95)=95, got %v", res.FinalPrice)
	}
}

func TestPricingUseCase_CalculatePrice_QuantityTiers(t *testing.T) {
	uc, repo, oracle := newPricingUseCase(t)

	tierMax := 500.0
	first := entities.PricingRule{
		ID: "r1", Name: "tiered", Strategy: entities.StrategyFixed,
		MaterialType: entities.MaterialTypePlastic, BasePrice: 100,
		QuantityTiers: []entities.QuantityTier{
			{MinQuantity: 50, MaxQuantity: &tierMax, DiscountPercentage: 10},
		},
	}
	second := entities.PricingRule{
		ID: "r2", Name: "also tiered", Strategy: entities.StrategyFixed,
		MaterialType: entities.MaterialTypePlastic, BasePrice: 100,
		QuantityTiers: []entities.QuantityTier{
			{MinQuantity: 0, DiscountPercentage: 50},
		},
	}

	req := plasticRequest()
	req.Weight = 100

	repo.EXPECT().FindApplicableRules(gomock.Any(), entities.MaterialTypePlastic, "", entities.ConditionClean, "Kano").Return([]entities.PricingRule{first, second}, nil)
	oracle.EXPECT().GetMarketPrices(gomock.Any(), entities.MaterialTypePlastic).Return(plasticQuotes(), nil)
	repo.EXPECT().RecordUsage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	res, err := uc.CalculatePrice(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Only the first tier-carrying rule discounts: 100 * 0.9. The second rule's
	// 50% tier must not stack.
	if !almostEqual(res.FinalPrice, 90) {
		t.Fatalf("expected 90, got %v", res.FinalPrice)
	}
}

func TestPricingUseCase_CalculatePrice_TimeAndSeasonCompound(t *testing.T) {
	uc, repo, oracle := newPricingUseCase(t)

	rule := entities.PricingRule{
		ID: "r1", Name: "timed", Strategy: entities.StrategyFixed,
		MaterialType: entities.MaterialTypePlastic, BasePrice: 100,
		TimeOfDayRules: []entities.TimeOfDayRule{
			{StartHour: 8, EndHour: 12, Multiplier: 1.1},
			{StartHour: 9, EndHour: 11, Multiplier: 2.0}, // only first match applies
		},
		SeasonalAdjustments: []entities.SeasonalAdjustment{
			{StartMonth: 5, EndMonth: 7, Multiplier: 1.2},
		},
	}

	repo.EXPECT().FindApplicableRules(gomock.Any(), entities.MaterialTypePlastic, "", entities.ConditionClean, "Kano").Return([]entities.PricingRule{rule}, nil)
	oracle.EXPECT().GetMarketPrices(gomock.Any(), entities.MaterialTypePlastic).Return(plasticQuotes(), nil)
	repo.EXPECT().RecordUsage(gomock.Any(), "r1", gomock.Any()).Return(nil)

	// RequestedAt is 10:00 on June 15th: hour window and season both match.
	res, err := uc.CalculatePrice(context.Background(), plasticRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.FinalPrice, 132) {
		t.Fatalf("expected 100*1.1*1.2=132, got %v", res.FinalPrice)
	}
}

func TestPricingUseCase_CalculatePrice_Urgency(t *testing.T) {
	rule := entities.PricingRule{ID: "r1", Name: "base", Strategy: entities.StrategyFixed, MaterialType: entities.MaterialTypePlastic, BasePrice: 100}

	cases := []struct {
		urgency entities.Urgency
		want    float64
	}{
		{entities.Urgency(""), 100},
		{entities.UrgencyLow, 100},
		{entities.UrgencyMedium, 110},
		{entities.UrgencyHigh, 120},
		{entities.UrgencyUrgent, 130},
	}

	for _, tc := range cases {
		t.Run(string(tc.urgency), func(t *testing.T) {
			uc, repo, oracle := newPricingUseCase(t)
			req := plasticRequest()
			req.Urgency = tc.urgency

			repo.EXPECT().FindApplicableRules(gomock.Any(), entities.MaterialTypePlastic, "", entities.ConditionClean, "Kano").Return([]entities.PricingRule{rule}, nil)
			oracle.EXPECT().GetMarketPrices(gomock.Any(), entities.MaterialTypePlastic).Return(plasticQuotes(), nil)
			repo.EXPECT().RecordUsage(gomock.Any(), "r1", gomock.Any()).Return(nil)

			res, err := uc.CalculatePrice(context.Background(), req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(res.FinalPrice, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, res.FinalPrice)
			}
		})
	}
}

func TestPricingUseCase_CalculatePrice_NeverNegative(t *testing.T) {
	uc, repo, oracle := newPricingUseCase(t)

	rule := entities.PricingRule{
		ID: "r1", Name: "broken discount", Strategy: entities.StrategyFixed,
		MaterialType: entities.MaterialTypePlastic, BasePrice: 10,
		PriceFactors: []entities.PriceFactor{
			{Type: entities.FactorLocationAdjustment, Value: -100, IsPercentage: false},
		},
	}

	req := plasticRequest()
	req.Location.State = "Lagos"

	repo.EXPECT().FindApplicableRules(gomock.Any(), entities.MaterialTypePlastic, "", entities.ConditionClean, "Lagos").Return([]entities.PricingRule{rule}, nil)
	oracle.EXPECT().GetMarketPrices(gomock.Any(), entities.MaterialTypePlastic).Return(plasticQuotes(), nil)
	repo.EXPECT().RecordUsage(gomock.Any(), "r1", gomock.Any()).Return(nil)

	res, err := uc.CalculatePrice(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FinalPrice != 0 {
		t.Fatalf("expected clamp to 0, got %v", res.FinalPrice)
	}
}

func TestPricingUseCase_CalculatePrice_TreatmentAnalysis(t *testing.T) {
	rule := entities.PricingRule{ID: "r1", Name: "base", Strategy: entities.StrategyFixed, MaterialType: entities.MaterialTypePlastic, BasePrice: 100}

	t.Run("recommend treat when net benefit positive", func(t *testing.T) {
		uc, repo, oracle := newPricingUseCase(t)
		req := plasticRequest()
		req.TreatmentsRequired = []string{"washing"}

		treatmentRule := rule
		treatmentRule.TreatmentPricing = []entities.TreatmentPricing{
			{TreatmentType: "washing", AdditionalCost: 20, PriceImprovement: 30},
		}

		repo.EXPECT().FindApplicableRules(gomock.Any(), entities.MaterialTypePlastic, "", entities.ConditionClean, "Kano").Return([]entities.PricingRule{rule}, nil)
		oracle.EXPECT().GetMarketPrices(gomock.Any(), entities.MaterialTypePlastic).Return(plasticQuotes(), nil)
		repo.EXPECT().FindRulesWithTreatment(gomock.Any(), entities.MaterialTypePlastic, []string{"washing"}).Return([]entities.PricingRule{treatmentRule}, nil)
		repo.EXPECT().RecordUsage(gomock.Any(), "r1", gomock.Any()).Return(nil)

		res, err := uc.CalculatePrice(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TreatmentAnalysis == nil {
			t.Fatalf("expected treatment analysis")
		}
		ta := res.TreatmentAnalysis
		if !almostEqual(ta.NetBenefit, 10) || ta.Recommendation != entities.RecommendTreat {
			t.Fatalf("unexpected analysis: %+v", ta)
		}
		if !almostEqual(ta.TreatedPrice, res.FinalPrice+30) {
			t.Fatalf("expected treated price %v, got %v", res.FinalPrice+30, ta.TreatedPrice)
		}
	})

	t.Run("recommend sell as is when break even", func(t *testing.T) {
		uc, repo, oracle := newPricingUseCase(t)
		req := plasticRequest()
		req.TreatmentsRequired = []string{"washing"}

		treatmentRule := rule
		treatmentRule.TreatmentPricing = []entities.TreatmentPricing{
			{TreatmentType: "washing", AdditionalCost: 30, PriceImprovement: 30},
		}

		repo.EXPECT().FindApplicableRules(gomock.Any(), entities.MaterialTypePlastic, "", entities.ConditionClean, "Kano").Return([]entities.PricingRule{rule}, nil)
		oracle.EXPECT().GetMarketPrices(gomock.Any(), entities.MaterialTypePlastic).Return(plasticQuotes(), nil)
		repo.EXPECT().FindRulesWithTreatment(gomock.Any(), entities.MaterialTypePlastic, []string{"washing"}).Return([]entities.PricingRule{treatmentRule}, nil)
		repo.EXPECT().RecordUsage(gomock.Any(), "r1", gomock.Any()).Return(nil)

		res, err := uc.CalculatePrice(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TreatmentAnalysis == nil || res.TreatmentAnalysis.Recommendation != entities.RecommendSellAsIs {
			t.Fatalf("expected sell_as_is, got %+v", res.TreatmentAnalysis)
		}
	})

	t.Run("no pricing entries means no analysis", func(t *testing.T) {
		uc, repo, oracle := newPricingUseCase(t)
		req := plasticRequest()
		req.TreatmentsRequired = []string{"shredding"}

		repo.EXPECT().FindApplicableRules(gomock.Any(), entities.MaterialTypePlastic, "", entities.ConditionClean, "Kano").Return([]entities.PricingRule{rule}, nil)
		oracle.EXPECT().GetMarketPrices(gomock.Any(), entities.MaterialTypePlastic).Return(plasticQuotes(), nil)
		repo.EXPECT().FindRulesWithTreatment(gomock.Any(), entities.MaterialTypePlastic, []string{"shredding"}).Return(nil, nil)
		repo.EXPECT().RecordUsage(gomock.Any(), "r1", gomock.Any()).Return(nil)

		res, err := uc.CalculatePrice(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TreatmentAnalysis != nil {
			t.Fatalf("expected nil analysis, got %+v", res.TreatmentAnalysis)
		}
	})
}

func TestPricingUseCase_CalculatePrice_UsageRecording(t *testing.T) {
	t.Run("delta carries batch value", func(t *testing.T) {
		uc, repo, oracle := newPricingUseCase(t)
		rule := entities.PricingRule{ID: "r1", Name: "base", Strategy: entities.StrategyFixed, MaterialType: entities.MaterialTypePlastic, BasePrice: 100}

		repo.EXPECT().FindApplicableRules(gomock.Any(), entities.MaterialTypePlastic, "", entities.ConditionClean, "Kano").Return([]entities.PricingRule{rule}, nil)
		oracle.EXPECT().GetMarketPrices(gomock.Any(), entities.MaterialTypePlastic).Return(plasticQuotes(), nil)
		repo.EXPECT().RecordUsage(gomock.Any(), "r1", 1000.0).Return(nil)

		if _, err := uc.CalculatePrice(context.Background(), plasticRequest()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("usage failure does not fail the quote", func(t *testing.T) {
		uc, repo, oracle := newPricingUseCase(t)
		rule := entities.PricingRule{ID: "r1", Name: "base", Strategy: entities.StrategyFixed, MaterialType: entities.MaterialTypePlastic, BasePrice: 100}

		repo.EXPECT().FindApplicableRules(gomock.Any(), entities.MaterialTypePlastic, "", entities.ConditionClean, "Kano").Return([]entities.PricingRule{rule}, nil)
		oracle.EXPECT().GetMarketPrices(gomock.Any(), entities.MaterialTypePlastic).Return(plasticQuotes(), nil)
		repo.EXPECT().RecordUsage(gomock.Any(), "r1", gomock.Any()).Return(errors.New("dynamodb down"))

		res, err := uc.CalculatePrice(context.Background(), plasticRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(res.FinalPrice, 100) {
			t.Fatalf("expected 100, got %v", res.FinalPrice)
		}
	})
}

func TestPricingUseCase_CalculatePrice_DependencyErrors(t *testing.T) {
	t.Run("repository error", func(t *testing.T) {
		uc, repo, _ := newPricingUseCase(t)
		repo.EXPECT().FindApplicableRules(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.CalculatePrice(context.Background(), plasticRequest())
		if !errors.Is(err, ErrPriceCalculation) {
			t.Fatalf("expected ErrPriceCalculation, got %v", err)
		}
	})

	t.Run("oracle error", func(t *testing.T) {
		uc, repo, oracle := newPricingUseCase(t)
		rule := entities.PricingRule{ID: "r1", Name: "base", Strategy: entities.StrategyFixed, MaterialType: entities.MaterialTypePlastic, BasePrice: 100}

		repo.EXPECT().FindApplicableRules(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.PricingRule{rule}, nil)
		oracle.EXPECT().GetMarketPrices(gomock.Any(), entities.MaterialTypePlastic).Return(nil, errors.New("feed down"))

		_, err := uc.CalculatePrice(context.Background(), plasticRequest())
		if !errors.Is(err, ErrPriceCalculation) {
			t.Fatalf("expected ErrPriceCalculation, got %v", err)
		}
	})
}

func TestPricingUseCase_CalculatePrice_EmptyMarketSkipsBlend(t *testing.T) {
	uc, repo, oracle := newPricingUseCase(t)

	rule := entities.PricingRule{
		ID: "r1", Name: "market", Strategy: entities.StrategyMarketBased,
		MaterialType: entities.MaterialTypePlastic, BasePrice: 100, MarketPriceWeight: 0.9,
	}

	repo.EXPECT().FindApplicableRules(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.PricingRule{rule}, nil)
	oracle.EXPECT().GetMarketPrices(gomock.Any(), entities.MaterialTypePlastic).Return(nil, nil).Times(2)
	repo.EXPECT().RecordUsage(gomock.Any(), "r1", gomock.Any()).Return(nil)

	res, err := uc.CalculatePrice(context.Background(), plasticRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.FinalPrice, 100) {
		t.Fatalf("expected unblended 100, got %v", res.FinalPrice)
	}
	if res.MarketAverage != 0 {
		t.Fatalf("expected zero market average, got %v", res.MarketAverage)
	}
}

func TestPricingUseCase_MarketPrices(t *testing.T) {
	t.Run("invalid material type", func(t *testing.T) {
		uc := NewPricingUseCase(nil, nil, DefaultTables(), nil)
		_, err := uc.MarketPrices(context.Background(), "glass")
		if !errors.Is(err, ErrInvalidMaterialType) {
			t.Fatalf("expected ErrInvalidMaterialType, got %v", err)
		}
	})

	t.Run("passthrough", func(t *testing.T) {
		uc, _, oracle := newPricingUseCase(t)
		oracle.EXPECT().GetMarketPrices(gomock.Any(), entities.MaterialTypeMetal).Return([]entities.MarketQuote{{Source: "Lagos Scrap", Price: 350}}, nil)

		quotes, err := uc.MarketPrices(context.Background(), entities.MaterialTypeMetal)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 1 || quotes[0].Source != "Lagos Scrap" {
			t.Fatalf("unexpected quotes: %+v", quotes)
		}
	})
}
