package interfaces

import (
	"context"

	"wastebazaar/internal/domain/entities"
)

// IPricingRuleRepository abstracts DynamoDB persistence for PricingRule.
//
// The pricing engine needs:
//   - FindApplicableRules: active + approved rules inside their validity
//     window whose filters accept the request, ordered by descending priority
//     (ties keep repository order).
//   - FindRulesWithTreatment: active rules of the material type pricing at
//     least one of the requested treatments.
//   - RecordUsage: increment a rule's usage counters by one application of
//     the given value.
//
// The rule-admin workflow additionally needs plain CRUD.

type IPricingRuleRepository interface {
	Create(ctx context.Context, rule entities.PricingRule) (entities.PricingRule, error)
	GetByID(ctx context.Context, id string) (entities.PricingRule, error)
	Update(ctx context.Context, rule entities.PricingRule) (entities.PricingRule, error)
	ListByMaterialType(ctx context.Context, materialType entities.MaterialType) ([]entities.PricingRule, error)
	FindApplicableRules(ctx context.Context, materialType entities.MaterialType, subType string, condition entities.MaterialCondition, state string) ([]entities.PricingRule, error)
	FindRulesWithTreatment(ctx context.Context, materialType entities.MaterialType, treatments []string) ([]entities.PricingRule, error)
	RecordUsage(ctx context.Context, ruleID string, value float64) error
}
