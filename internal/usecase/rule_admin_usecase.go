package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"wastebazaar/internal/domain/entities"
	"wastebazaar/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrRuleNotFound  = errors.New("pricing rule not found")
	ErrInvalidRuleID = errors.New("invalid rule id")
	ErrInvalidRule   = errors.New("invalid pricing rule")
)

// IRuleAdminUseCase owns the pricing-rule lifecycle. Rules are born pending;
// only approved rules participate in price calculations.

type IRuleAdminUseCase interface {
	CreateRule(ctx context.Context, rule entities.PricingRule) (entities.PricingRule, error)
	GetRule(ctx context.Context, id string) (entities.PricingRule, error)
	ListRules(ctx context.Context, materialType entities.MaterialType) ([]entities.PricingRule, error)
	UpdateRule(ctx context.Context, id string, update RuleUpdate) (entities.PricingRule, error)
	ApproveRule(ctx context.Context, id, approvedBy string) (entities.PricingRule, error)
	RejectRule(ctx context.Context, id, notes string) (entities.PricingRule, error)
}

// RuleUpdate is a partial update; nil fields are left untouched. Slice fields
// replace the stored value when non-nil.
type RuleUpdate struct {
	Name                *string
	Description         *string
	IsActive            *bool
	Priority            *int
	SubTypes            []string
	Conditions          []entities.MaterialCondition
	Locations           []string
	Strategy            *entities.PricingStrategy
	BasePrice           *float64
	MarketPriceWeight   *float64
	PriceFactors        []entities.PriceFactor
	QuantityTiers       []entities.QuantityTier
	ValidUntil          *time.Time
	TimeOfDayRules      []entities.TimeOfDayRule
	SeasonalAdjustments []entities.SeasonalAdjustment
	TreatmentPricing    []entities.TreatmentPricing
}

// critical reports whether the update touches a field that must send the rule
// back through approval.
func (ru RuleUpdate) critical() bool {
	return ru.BasePrice != nil || ru.Strategy != nil || ru.PriceFactors != nil || ru.QuantityTiers != nil
}

type RuleAdminUseCase struct {
	repo interfaces.IPricingRuleRepository
	log  *zap.Logger
}

var _ IRuleAdminUseCase = (*RuleAdminUseCase)(nil)

func NewRuleAdminUseCase(repo interfaces.IPricingRuleRepository, log *zap.Logger) *RuleAdminUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &RuleAdminUseCase{repo: repo, log: log}
}

func (u *RuleAdminUseCase) CreateRule(ctx context.Context, rule entities.PricingRule) (entities.PricingRule, error) {
	now := time.Now().UTC()
	if rule.ValidFrom.IsZero() {
		rule.ValidFrom = now
	}
	if rule.Currency == "" {
		rule.Currency = "NGN"
	}
	if rule.Strategy == "" {
		rule.Strategy = entities.StrategyFixed
	}

	if err := validateRule(rule); err != nil {
		return entities.PricingRule{}, err
	}

	rule.ID = uuid.NewString()
	rule.Usage = entities.RuleUsage{}
	rule.ApprovalStatus = entities.ApprovalPending
	rule.ApprovedBy = ""
	rule.CreatedAt = now
	rule.UpdatedAt = now

	created, err := u.repo.Create(ctx, rule)
	if err != nil {
		return entities.PricingRule{}, err
	}
	u.log.Info("pricing rule created",
		zap.String("rule_id", created.ID),
		zap.String("material_type", string(created.MaterialType)))
	return created, nil
}

func (u *RuleAdminUseCase) GetRule(ctx context.Context, id string) (entities.PricingRule, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PricingRule{}, ErrInvalidRuleID
	}

	rule, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PricingRule{}, err
	}
	if rule.ID == "" {
		return entities.PricingRule{}, ErrRuleNotFound
	}
	return rule, nil
}

func (u *RuleAdminUseCase) ListRules(ctx context.Context, materialType entities.MaterialType) ([]entities.PricingRule, error) {
	if !materialType.Valid() {
		return nil, ErrInvalidMaterialType
	}
	return u.repo.ListByMaterialType(ctx, materialType)
}

func (u *RuleAdminUseCase) UpdateRule(ctx context.Context, id string, update RuleUpdate) (entities.PricingRule, error) {
	rule, err := u.GetRule(ctx, id)
	if err != nil {
		return entities.PricingRule{}, err
	}

	if update.Name != nil {
		rule.Name = *update.Name
	}
	if update.Description != nil {
		rule.Description = *update.Description
	}
	if update.IsActive != nil {
		rule.IsActive = *update.IsActive
	}
	if update.Priority != nil {
		rule.Priority = *update.Priority
	}
	if update.SubTypes != nil {
		rule.SubTypes = update.SubTypes
	}
	if update.Conditions != nil {
		rule.Conditions = update.Conditions
	}
	if update.Locations != nil {
		rule.Locations = update.Locations
	}
	if update.Strategy != nil {
		rule.Strategy = *update.Strategy
	}
	if update.BasePrice != nil {
		rule.BasePrice = *update.BasePrice
	}
	if update.MarketPriceWeight != nil {
		rule.MarketPriceWeight = *update.MarketPriceWeight
	}
	if update.PriceFactors != nil {
		rule.PriceFactors = update.PriceFactors
	}
	if update.QuantityTiers != nil {
		rule.QuantityTiers = update.QuantityTiers
	}
	if update.ValidUntil != nil {
		rule.ValidUntil = update.ValidUntil
	}
	if update.TimeOfDayRules != nil {
		rule.TimeOfDayRules = update.TimeOfDayRules
	}
	if update.SeasonalAdjustments != nil {
		rule.SeasonalAdjustments = update.SeasonalAdjustments
	}
	if update.TreatmentPricing != nil {
		rule.TreatmentPricing = update.TreatmentPricing
	}

	if err := validateRule(rule); err != nil {
		return entities.PricingRule{}, err
	}

	// Changing price-setting fields sends the rule back through approval.
	if update.critical() {
		rule.ApprovalStatus = entities.ApprovalPending
		rule.ApprovedBy = ""
	}
	rule.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, rule)
	if err != nil {
		return entities.PricingRule{}, err
	}
	if updated.ID == "" {
		return entities.PricingRule{}, ErrRuleNotFound
	}
	return updated, nil
}

func (u *RuleAdminUseCase) ApproveRule(ctx context.Context, id, approvedBy string) (entities.PricingRule, error) {
	return u.setApproval(ctx, id, entities.ApprovalApproved, approvedBy, "")
}

func (u *RuleAdminUseCase) RejectRule(ctx context.Context, id, notes string) (entities.PricingRule, error) {
	return u.setApproval(ctx, id, entities.ApprovalRejected, "", notes)
}

func (u *RuleAdminUseCase) setApproval(ctx context.Context, id string, status entities.ApprovalStatus, approvedBy, notes string) (entities.PricingRule, error) {
	rule, err := u.GetRule(ctx, id)
	if err != nil {
		return entities.PricingRule{}, err
	}

	rule.ApprovalStatus = status
	// Overwrite unconditionally so a rejection clears the previous approver
	// and an approval clears previous rejection notes.
	rule.ApprovedBy = approvedBy
	rule.ApprovalNotes = notes
	rule.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, rule)
	if err != nil {
		return entities.PricingRule{}, err
	}
	if updated.ID == "" {
		return entities.PricingRule{}, ErrRuleNotFound
	}
	u.log.Info("pricing rule approval changed",
		zap.String("rule_id", id),
		zap.String("status", string(status)))
	return updated, nil
}

func validateRule(rule entities.PricingRule) error {
	if strings.TrimSpace(rule.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRule)
	}
	if !rule.MaterialType.Valid() {
		return fmt.Errorf("%w: unknown material type %q", ErrInvalidRule, rule.MaterialType)
	}
	if rule.Priority < 1 || rule.Priority > 100 {
		return fmt.Errorf("%w: priority must be between 1 and 100", ErrInvalidRule)
	}
	if !rule.Strategy.Valid() {
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidRule, rule.Strategy)
	}
	if rule.BasePrice <= 0 {
		return fmt.Errorf("%w: base price must be positive", ErrInvalidRule)
	}
	if rule.MarketPriceWeight < 0 || rule.MarketPriceWeight > 1 {
		return fmt.Errorf("%w: market price weight must be between 0 and 1", ErrInvalidRule)
	}
	if rule.ValidUntil != nil && !rule.ValidUntil.After(rule.ValidFrom) {
		return fmt.Errorf("%w: valid until must be after valid from", ErrInvalidRule)
	}
	for _, c := range rule.Conditions {
		if !c.Valid() {
			return fmt.Errorf("%w: unknown condition %q", ErrInvalidRule, c)
		}
	}
	if err := validateQuantityTiers(rule.QuantityTiers); err != nil {
		return err
	}
	for _, tr := range rule.TimeOfDayRules {
		if tr.StartHour < 0 || tr.StartHour > 23 || tr.EndHour < 0 || tr.EndHour > 23 || tr.StartHour > tr.EndHour {
			return fmt.Errorf("%w: time of day rule hours out of range", ErrInvalidRule)
		}
	}
	for _, sa := range rule.SeasonalAdjustments {
		if sa.StartMonth < 1 || sa.StartMonth > 12 || sa.EndMonth < 1 || sa.EndMonth > 12 || sa.StartMonth > sa.EndMonth {
			return fmt.Errorf("%w: seasonal adjustment months out of range", ErrInvalidRule)
		}
	}
	return nil
}

// validateQuantityTiers rejects intersecting tiers. Ranges are treated as
// [min, max): an open-ended tier may only be the last one, and a tier's max
// may equal the next tier's min.
func validateQuantityTiers(tiers []entities.QuantityTier) error {
	for _, t := range tiers {
		if t.MinQuantity < 0 {
			return fmt.Errorf("%w: tier min quantity must not be negative", ErrInvalidRule)
		}
		if t.MaxQuantity != nil && *t.MaxQuantity <= t.MinQuantity {
			return fmt.Errorf("%w: tier max quantity must exceed min quantity", ErrInvalidRule)
		}
		if t.DiscountPercentage < 0 || t.DiscountPercentage > 100 {
			return fmt.Errorf("%w: tier discount must be between 0 and 100", ErrInvalidRule)
		}
	}
	if len(tiers) < 2 {
		return nil
	}

	sorted := make([]entities.QuantityTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].MinQuantity < sorted[j].MinQuantity })

	for i := 0; i < len(sorted)-1; i++ {
		current, next := sorted[i], sorted[i+1]
		if current.MaxQuantity == nil || *current.MaxQuantity > next.MinQuantity {
			return fmt.Errorf("%w: quantity tiers cannot overlap", ErrInvalidRule)
		}
	}
	return nil
}
