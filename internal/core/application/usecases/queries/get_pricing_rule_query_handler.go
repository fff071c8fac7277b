package queries

import (
	"context"
	"database/sql"
	"errors"

	"hubops/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetPricingRuleQueryHandler struct {
	db *gorm.DB
}

func NewGetPricingRuleQueryHandler(db *gorm.DB) GetPricingRuleQueryHandler {
	return GetPricingRuleQueryHandler{db: db}
}

func (h GetPricingRuleQueryHandler) Handle(
	ctx context.Context,
	query GetPricingRuleQuery,
) (GetPricingRuleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPricingRuleQueryResponse{}, err
	}
	key := query.Key()

	var resp GetPricingRuleQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT origin_city_id, destination_city_id, service_id, weight_from, weight_to,
			base_rate, additional_charges, updated_at
		FROM pricing_rules
		WHERE origin_city_id = ? AND destination_city_id = ? AND service_id = ?
			AND weight_from = ? AND weight_to = ?
	`, key.OriginCityID, key.DestinationCityID, key.ServiceID, key.Band.From(), key.Band.To()).Row().Scan(
		&resp.OriginCityID, &resp.DestinationCityID, &resp.ServiceID, &resp.WeightFrom, &resp.WeightTo,
		&resp.BaseRate, &resp.AdditionalCharges, &resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPricingRuleQueryResponse{}, errs.NewObjectNotFoundError("pricing rule", key.String())
	}
	if err != nil {
		return GetPricingRuleQueryResponse{}, err
	}
	return resp, nil
}
