package pricingrepo

import (
	"context"
	"errors"

	"hubops/internal/core/domain/model/pricing"
	"hubops/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var keyColumns = []clause.Column{
	{Name: "origin_city_id"},
	{Name: "destination_city_id"},
	{Name: "service_id"},
	{Name: "weight_from"},
	{Name: "weight_to"},
}

type GormPricingRuleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormPricingRuleRepository(db *gorm.DB, tracker aggregateTracker) *GormPricingRuleRepository {
	return &GormPricingRuleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert writes the rule with INSERT ... ON CONFLICT (key) DO UPDATE.
func (r *GormPricingRuleRepository) Upsert(ctx context.Context, rule *pricing.Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rule)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   keyColumns,
		DoUpdates: clause.AssignmentColumns([]string{"base_rate", "additional_charges", "updated_at"}),
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(rule.Key().String(), rule)
	return nil
}

func (r *GormPricingRuleRepository) Get(ctx context.Context, key pricing.Key) (*pricing.Rule, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	var dto RuleDTO
	err := r.db.WithContext(ctx).
		Where("origin_city_id = ? AND destination_city_id = ? AND service_id = ? AND weight_from = ? AND weight_to = ?",
			key.OriginCityID, key.DestinationCityID, key.ServiceID, key.Band.From(), key.Band.To()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pricing rule", key.String())
		}
		return nil, err
	}
	return toDomain(dto)
}
