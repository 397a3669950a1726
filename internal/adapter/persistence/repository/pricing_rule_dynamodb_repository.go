package repository

import (
	"context"
	"errors"
	"time"

	"wastebazaar/internal/domain/entities"
	"wastebazaar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRulesTableName = "pricing_rules"

type factorItem struct {
	Type         string  `dynamodbav:"type"`
	Value        float64 `dynamodbav:"value"`
	IsPercentage bool    `dynamodbav:"is_percentage"`
	Description  string  `dynamodbav:"description,omitempty"`
}

type tierItem struct {
	MinQuantity        float64  `dynamodbav:"min_quantity"`
	MaxQuantity        *float64 `dynamodbav:"max_quantity,omitempty"`
	DiscountPercentage float64  `dynamodbav:"discount_percentage"`
	Description        string   `dynamodbav:"description,omitempty"`
}

type timeRuleItem struct {
	StartHour   int     `dynamodbav:"start_hour"`
	EndHour     int     `dynamodbav:"end_hour"`
	Multiplier  float64 `dynamodbav:"multiplier"`
	Description string  `dynamodbav:"description,omitempty"`
}

type seasonItem struct {
	StartMonth  int     `dynamodbav:"start_month"`
	EndMonth    int     `dynamodbav:"end_month"`
	Multiplier  float64 `dynamodbav:"multiplier"`
	Description string  `dynamodbav:"description,omitempty"`
}

type treatmentItem struct {
	TreatmentType    string  `dynamodbav:"treatment_type"`
	AdditionalCost   float64 `dynamodbav:"additional_cost"`
	PriceImprovement float64 `dynamodbav:"price_improvement"`
	Description      string  `dynamodbav:"description,omitempty"`
}

type ruleItem struct {
	ID                  string          `dynamodbav:"id"`
	Name                string          `dynamodbav:"name"`
	Description         string          `dynamodbav:"description,omitempty"`
	IsActive            bool            `dynamodbav:"is_active"`
	Priority            int             `dynamodbav:"priority"`
	MaterialType        string          `dynamodbav:"material_type"`
	SubTypes            []string        `dynamodbav:"sub_types,omitempty"`
	Conditions          []string        `dynamodbav:"conditions,omitempty"`
	Locations           []string        `dynamodbav:"locations,omitempty"`
	Strategy            string          `dynamodbav:"strategy"`
	BasePrice           float64         `dynamodbav:"base_price"`
	Currency            string          `dynamodbav:"currency"`
	PriceFactors        []factorItem    `dynamodbav:"price_factors,omitempty"`
	MarketPriceWeight   float64         `dynamodbav:"market_price_weight"`
	QuantityTiers       []tierItem      `dynamodbav:"quantity_tiers,omitempty"`
	ValidFrom           string          `dynamodbav:"valid_from"`
	ValidUntil          string          `dynamodbav:"valid_until,omitempty"`
	TimeOfDayRules      []timeRuleItem  `dynamodbav:"time_of_day_rules,omitempty"`
	SeasonalAdjustments []seasonItem    `dynamodbav:"seasonal_adjustments,omitempty"`
	TreatmentPricing    []treatmentItem `dynamodbav:"treatment_pricing,omitempty"`
	UsageTimesApplied   int             `dynamodbav:"usage_times_applied"`
	UsageTotalValue     float64         `dynamodbav:"usage_total_value"`
	UsageAveragePrice   float64         `dynamodbav:"usage_average_price"`
	UsageLastUsed       string          `dynamodbav:"usage_last_used,omitempty"`
	CreatedBy           string          `dynamodbav:"created_by,omitempty"`
	ApprovedBy          string          `dynamodbav:"approved_by,omitempty"`
	ApprovalStatus      string          `dynamodbav:"approval_status"`
	ApprovalNotes       string          `dynamodbav:"approval_notes,omitempty"`
	CreatedAt           string          `dynamodbav:"created_at"`
	UpdatedAt           string          `dynamodbav:"updated_at"`
}

// PricingRuleDynamoRepository persists PricingRule entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Rule lookups scan with a material-type/active/approval filter and finish
// the validity-window and applicability checks in memory; DynamoDB cannot
// order a filtered scan, so the descending-priority sort happens here too
// (stable, so ties keep scan order).

type PricingRuleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingRuleRepository = (*PricingRuleDynamoRepository)(nil)

func NewPricingRuleDynamoRepository(ddb *dynamodb.Client, tableName string) *PricingRuleDynamoRepository {
	if tableName == "" {
		tableName = defaultRulesTableName
	}
	return &PricingRuleDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PricingRuleDynamoRepository) Create(ctx context.Context, rule entities.PricingRule) (entities.PricingRule, error) {
	av, err := attributevalue.MarshalMap(toRuleItem(rule))
	if err != nil {
		return entities.PricingRule{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PricingRule{}, err
	}
	return rule, nil
}

func (r *PricingRuleDynamoRepository) GetByID(ctx context.Context, id string) (entities.PricingRule, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PricingRule{}, err
	}
	if len(out.Item) == 0 {
		return entities.PricingRule{}, nil
	}

	var it ruleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PricingRule{}, err
	}
	return fromRuleItem(it), nil
}

// Update replaces the whole item. Returns a zero rule when the id does not
// exist, matching GetByID semantics.
func (r *PricingRuleDynamoRepository) Update(ctx context.Context, rule entities.PricingRule) (entities.PricingRule, error) {
	av, err := attributevalue.MarshalMap(toRuleItem(rule))
	if err != nil {
		return entities.PricingRule{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PricingRule{}, nil
		}
		return entities.PricingRule{}, err
	}
	return rule, nil
}

func (r *PricingRuleDynamoRepository) ListByMaterialType(ctx context.Context, materialType entities.MaterialType) ([]entities.PricingRule, error) {
	rules, err := r.scanByMaterialType(ctx, materialType, false)
	if err != nil {
		return nil, err
	}
	sortByPriorityDesc(rules)
	return rules, nil
}

func (r *PricingRuleDynamoRepository) FindApplicableRules(ctx context.Context, materialType entities.MaterialType, subType string, condition entities.MaterialCondition, state string) ([]entities.PricingRule, error) {
	candidates, err := r.scanByMaterialType(ctx, materialType, true)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	applicable := candidates[:0]
	for _, rule := range candidates {
		if rule.ApprovalStatus != entities.ApprovalApproved {
			continue
		}
		if !rule.AppliesAt(now) {
			continue
		}
		if !filterAccepts(rule.SubTypes, subType) {
			continue
		}
		if condition != "" && !conditionFilterAccepts(rule.Conditions, condition) {
			continue
		}
		if !filterAccepts(rule.Locations, state) {
			continue
		}
		applicable = append(applicable, rule)
	}

	sortByPriorityDesc(applicable)
	return applicable, nil
}

func (r *PricingRuleDynamoRepository) FindRulesWithTreatment(ctx context.Context, materialType entities.MaterialType, treatments []string) ([]entities.PricingRule, error) {
	candidates, err := r.scanByMaterialType(ctx, materialType, true)
	if err != nil {
		return nil, err
	}

	matched := candidates[:0]
	for _, rule := range candidates {
		if ruleHasAnyTreatment(rule, treatments) {
			matched = append(matched, rule)
		}
	}
	return matched, nil
}

// RecordUsage increments the rule's usage counters by one application of the
// given value. Read-modify-write; concurrent updates may lose increments,
// which is acceptable for advisory statistics.
func (r *PricingRuleDynamoRepository) RecordUsage(ctx context.Context, ruleID string, value float64) error {
	rule, err := r.GetByID(ctx, ruleID)
	if err != nil {
		return err
	}
	if rule.ID == "" {
		return nil
	}

	now := time.Now().UTC()
	usage := rule.Usage
	usage.TimesApplied++
	usage.TotalValue += value
	usage.AveragePrice = usage.TotalValue / float64(usage.TimesApplied)
	usage.LastUsed = &now

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: ruleID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String(
			"SET #times_applied = :times_applied, #total_value = :total_value, #average_price = :average_price, #last_used = :last_used",
		),
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#times_applied": "usage_times_applied",
			"#total_value":   "usage_total_value",
			"#average_price": "usage_average_price",
			"#last_used":     "usage_last_used",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":times_applied": &types.AttributeValueMemberN{Value: intToString(usage.TimesApplied)},
			":total_value":   &types.AttributeValueMemberN{Value: floatToString(usage.TotalValue)},
			":average_price": &types.AttributeValueMemberN{Value: floatToString(usage.AveragePrice)},
			":last_used":     &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func (r *PricingRuleDynamoRepository) scanByMaterialType(ctx context.Context, materialType entities.MaterialType, activeOnly bool) ([]entities.PricingRule, error) {
	filter := "#material_type = :material_type"
	names := map[string]string{"#material_type": "material_type"}
	values := map[string]types.AttributeValue{
		":material_type": &types.AttributeValueMemberS{Value: string(materialType)},
	}
	if activeOnly {
		filter += " AND #is_active = :is_active"
		names["#is_active"] = "is_active"
		values[":is_active"] = &types.AttributeValueMemberBOOL{Value: true}
	}

	var rules []entities.PricingRule
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []ruleItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			rules = append(rules, fromRuleItem(it))
		}
	}
	return rules, nil
}
