package repository

import (
	"sort"
	"strconv"
	"time"

	"wastebazaar/internal/domain/entities"
)

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func intToString(v int) string {
	return strconv.Itoa(v)
}

// filterAccepts implements the "empty filter means applies to all" rule.
func filterAccepts(filter []string, value string) bool {
	if len(filter) == 0 || value == "" {
		return true
	}
	for _, f := range filter {
		if f == value {
			return true
		}
	}
	return false
}

func conditionFilterAccepts(filter []entities.MaterialCondition, condition entities.MaterialCondition) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		if f == condition {
			return true
		}
	}
	return false
}

func ruleHasAnyTreatment(rule entities.PricingRule, treatments []string) bool {
	for _, t := range treatments {
		if _, ok := rule.TreatmentEntry(t); ok {
			return true
		}
	}
	return false
}

func sortByPriorityDesc(rules []entities.PricingRule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
}

func toRuleItem(rule entities.PricingRule) ruleItem {
	it := ruleItem{
		ID:                rule.ID,
		Name:              rule.Name,
		Description:       rule.Description,
		IsActive:          rule.IsActive,
		Priority:          rule.Priority,
		MaterialType:      string(rule.MaterialType),
		SubTypes:          rule.SubTypes,
		Conditions:        conditionsToStrings(rule.Conditions),
		Locations:         rule.Locations,
		Strategy:          string(rule.Strategy),
		BasePrice:         rule.BasePrice,
		Currency:          rule.Currency,
		MarketPriceWeight: rule.MarketPriceWeight,
		ValidFrom:         rule.ValidFrom.UTC().Format(time.RFC3339Nano),
		UsageTimesApplied: rule.Usage.TimesApplied,
		UsageTotalValue:   rule.Usage.TotalValue,
		UsageAveragePrice: rule.Usage.AveragePrice,
		CreatedBy:         rule.CreatedBy,
		ApprovedBy:        rule.ApprovedBy,
		ApprovalStatus:    string(rule.ApprovalStatus),
		ApprovalNotes:     rule.ApprovalNotes,
		CreatedAt:         rule.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         rule.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if rule.ValidUntil != nil {
		it.ValidUntil = rule.ValidUntil.UTC().Format(time.RFC3339Nano)
	}
	if rule.Usage.LastUsed != nil {
		it.UsageLastUsed = rule.Usage.LastUsed.UTC().Format(time.RFC3339Nano)
	}
	for _, f := range rule.PriceFactors {
		it.PriceFactors = append(it.PriceFactors, factorItem{
			Type:         string(f.Type),
			Value:        f.Value,
			IsPercentage: f.IsPercentage,
			Description:  f.Description,
		})
	}
	for _, t := range rule.QuantityTiers {
		it.QuantityTiers = append(it.QuantityTiers, tierItem{
			MinQuantity:        t.MinQuantity,
			MaxQuantity:        t.MaxQuantity,
			DiscountPercentage: t.DiscountPercentage,
			Description:        t.Description,
		})
	}
	for _, tr := range rule.TimeOfDayRules {
		it.TimeOfDayRules = append(it.TimeOfDayRules, timeRuleItem{
			StartHour:   tr.StartHour,
			EndHour:     tr.EndHour,
			Multiplier:  tr.Multiplier,
			Description: tr.Description,
		})
	}
	for _, sa := range rule.SeasonalAdjustments {
		it.SeasonalAdjustments = append(it.SeasonalAdjustments, seasonItem{
			StartMonth:  sa.StartMonth,
			EndMonth:    sa.EndMonth,
			Multiplier:  sa.Multiplier,
			Description: sa.Description,
		})
	}
	for _, tp := range rule.TreatmentPricing {
		it.TreatmentPricing = append(it.TreatmentPricing, treatmentItem{
			TreatmentType:    tp.TreatmentType,
			AdditionalCost:   tp.AdditionalCost,
			PriceImprovement: tp.PriceImprovement,
			Description:      tp.Description,
		})
	}
	return it
}

func fromRuleItem(it ruleItem) entities.PricingRule {
	validFrom, _ := time.Parse(time.RFC3339Nano, it.ValidFrom)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	rule := entities.PricingRule{
		ID:                it.ID,
		Name:              it.Name,
		Description:       it.Description,
		IsActive:          it.IsActive,
		Priority:          it.Priority,
		MaterialType:      entities.MaterialType(it.MaterialType),
		SubTypes:          it.SubTypes,
		Conditions:        stringsToConditions(it.Conditions),
		Locations:         it.Locations,
		Strategy:          entities.PricingStrategy(it.Strategy),
		BasePrice:         it.BasePrice,
		Currency:          it.Currency,
		MarketPriceWeight: it.MarketPriceWeight,
		ValidFrom:         validFrom,
		Usage: entities.RuleUsage{
			TimesApplied: it.UsageTimesApplied,
			TotalValue:   it.UsageTotalValue,
			AveragePrice: it.UsageAveragePrice,
		},
		CreatedBy:      it.CreatedBy,
		ApprovedBy:     it.ApprovedBy,
		ApprovalStatus: entities.ApprovalStatus(it.ApprovalStatus),
		ApprovalNotes:  it.ApprovalNotes,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	if it.ValidUntil != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ValidUntil); err == nil {
			rule.ValidUntil = &t
		}
	}
	if it.UsageLastUsed != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.UsageLastUsed); err == nil {
			rule.Usage.LastUsed = &t
		}
	}
	for _, f := range it.PriceFactors {
		rule.PriceFactors = append(rule.PriceFactors, entities.PriceFactor{
			Type:         entities.PriceFactorType(f.Type),
			Value:        f.Value,
			IsPercentage: f.IsPercentage,
			Description:  f.Description,
		})
	}
	for _, t := range it.QuantityTiers {
		rule.QuantityTiers = append(rule.QuantityTiers, entities.QuantityTier{
			MinQuantity:        t.MinQuantity,
			MaxQuantity:        t.MaxQuantity,
			DiscountPercentage: t.DiscountPercentage,
			Description:        t.Description,
		})
	}
	for _, tr := range it.TimeOfDayRules {
		rule.TimeOfDayRules = append(rule.TimeOfDayRules, entities.TimeOfDayRule{
			StartHour:   tr.StartHour,
			EndHour:     tr.EndHour,
			Multiplier:  tr.Multiplier,
			Description: tr.Description,
		})
	}
	for _, sa := range it.SeasonalAdjustments {
		rule.SeasonalAdjustments = append(rule.SeasonalAdjustments, entities.SeasonalAdjustment{
			StartMonth:  sa.StartMonth,
			EndMonth:    sa.EndMonth,
			Multiplier:  sa.Multiplier,
			Description: sa.Description,
		})
	}
	for _, tp := range it.TreatmentPricing {
		rule.TreatmentPricing = append(rule.TreatmentPricing, entities.TreatmentPricing{
			TreatmentType:    tp.TreatmentType,
			AdditionalCost:   tp.AdditionalCost,
			PriceImprovement: tp.PriceImprovement,
			Description:      tp.Description,
		})
	}
	return rule
}

func conditionsToStrings(conditions []entities.MaterialCondition) []string {
	if len(conditions) == 0 {
		return nil
	}
	out := make([]string, len(conditions))
	for i, c := range conditions {
		out[i] = string(c)
	}
	return out
}

func stringsToConditions(values []string) []entities.MaterialCondition {
	if len(values) == 0 {
		return nil
	}
	out := make([]entities.MaterialCondition, len(values))
	for i, v := range values {
		out[i] = entities.MaterialCondition(v)
	}
	return out
}
