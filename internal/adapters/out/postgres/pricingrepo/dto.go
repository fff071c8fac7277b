// Package pricingrepo persists directed pricing rules keyed by route,
// service and weight band.
package pricingrepo

import (
	"time"

	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

type RuleDTO struct {
	OriginCityID      string          `gorm:"type:varchar(64);primaryKey"`
	DestinationCityID string          `gorm:"type:varchar(64);primaryKey"`
	ServiceID         string          `gorm:"type:varchar(64);primaryKey"`
	WeightFrom        decimal.Decimal `gorm:"type:numeric(10,3);primaryKey"`
	WeightTo          decimal.Decimal `gorm:"type:numeric(10,3);primaryKey"`
	BaseRate          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	AdditionalCharges decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

func (RuleDTO) TableName() string {
	return "pricing_rules"
}

func fromDomain(rule *pricing.Rule) RuleDTO {
	key := rule.Key()
	return RuleDTO{
		OriginCityID:      key.OriginCityID,
		DestinationCityID: key.DestinationCityID,
		ServiceID:         key.ServiceID,
		WeightFrom:        key.Band.From(),
		WeightTo:          key.Band.To(),
		BaseRate:          rule.Rates().BaseRate,
		AdditionalCharges: rule.Rates().AdditionalCharges,
		UpdatedAt:         rule.UpdatedAt(),
	}
}

func toDomain(dto RuleDTO) (*pricing.Rule, error) {
	band, err := kernel.NewWeightBand(dto.WeightFrom, dto.WeightTo)
	if err != nil {
		return nil, err
	}
	key, err := pricing.NewKey(dto.OriginCityID, dto.DestinationCityID, dto.ServiceID, band)
	if err != nil {
		return nil, err
	}
	return pricing.RestoreRule(key, pricing.Rates{
		BaseRate:          dto.BaseRate,
		AdditionalCharges: dto.AdditionalCharges,
	}, dto.UpdatedAt)
}
