package response

import (
	"time"

	"wastebazaar/internal/domain/entities"
)

type RuleUsageResponse struct {
	TimesApplied int        `json:"times_applied"`
	TotalValue   float64    `json:"total_value"`
	AveragePrice float64    `json:"average_price"`
	LastUsed     *time.Time `json:"last_used,omitempty"`
}

type RuleResponse struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	Description       string                `json:"description,omitempty"`
	IsActive          bool                  `json:"is_active"`
	Priority          int                   `json:"priority"`
	MaterialType      string                `json:"material_type"`
	SubTypes          []string              `json:"sub_types,omitempty"`
	Conditions        []string              `json:"conditions,omitempty"`
	Locations         []string              `json:"locations,omitempty"`
	Strategy          string                `json:"strategy"`
	BasePrice         float64               `json:"base_price"`
	Currency          string                `json:"currency"`
	PriceFactors      []PriceFactorResponse `json:"price_factors,omitempty"`
	MarketPriceWeight float64               `json:"market_price_weight"`
	ValidFrom         time.Time             `json:"valid_from"`
	ValidUntil        *time.Time            `json:"valid_until,omitempty"`
	Usage             RuleUsageResponse     `json:"usage"`
	ApprovalStatus    string                `json:"approval_status"`
	ApprovedBy        string                `json:"approved_by,omitempty"`
	ApprovalNotes     string                `json:"approval_notes,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

func FromRule(rule entities.PricingRule) RuleResponse {
	conditions := make([]string, 0, len(rule.Conditions))
	for _, c := range rule.Conditions {
		conditions = append(conditions, string(c))
	}

	return RuleResponse{
		ID:                rule.ID,
		Name:              rule.Name,
		Description:       rule.Description,
		IsActive:          rule.IsActive,
		Priority:          rule.Priority,
		MaterialType:      string(rule.MaterialType),
		SubTypes:          rule.SubTypes,
		Conditions:        conditions,
		Locations:         rule.Locations,
		Strategy:          string(rule.Strategy),
		BasePrice:         rule.BasePrice,
		Currency:          rule.Currency,
		PriceFactors:      fromFactors(rule.PriceFactors),
		MarketPriceWeight: rule.MarketPriceWeight,
		ValidFrom:         rule.ValidFrom,
		ValidUntil:        rule.ValidUntil,
		Usage: RuleUsageResponse{
			TimesApplied: rule.Usage.TimesApplied,
			TotalValue:   rule.Usage.TotalValue,
			AveragePrice: rule.Usage.AveragePrice,
			LastUsed:     rule.Usage.LastUsed,
		},
		ApprovalStatus: string(rule.ApprovalStatus),
		ApprovedBy:     rule.ApprovedBy,
		ApprovalNotes:  rule.ApprovalNotes,
		CreatedAt:      rule.CreatedAt,
		UpdatedAt:      rule.UpdatedAt,
	}
}

func FromRules(rules []entities.PricingRule) []RuleResponse {
	out := make([]RuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, FromRule(r))
	}
	return out
}
