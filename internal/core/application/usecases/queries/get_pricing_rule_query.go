package queries

import (
	"errors"
	"time"

	"hubops/internal/core/domain/model/pricing"
	"hubops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPricingRuleQueryIsNotConstructed = errors.New(
	"GetPricingRuleQuery must be created via NewGetPricingRuleQuery constructor",
)

// GetPricingRuleQuery reads one directed rule. Reading B->A after writing
// A->B returns the mirrored rates.
type GetPricingRuleQuery struct {
	key pricing.Key

	guard guard.ConstructorGuard
}

func NewGetPricingRuleQuery(key pricing.Key) (GetPricingRuleQuery, error) {
	if err := key.Validate(); err != nil {
		return GetPricingRuleQuery{}, err
	}
	return GetPricingRuleQuery{key: key, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPricingRuleQuery) Key() pricing.Key {
	return q.key
}

func (q GetPricingRuleQuery) Validate() error {
	return q.guard.Validate(ErrGetPricingRuleQueryIsNotConstructed)
}

type GetPricingRuleQueryResponse struct {
	OriginCityID      string
	DestinationCityID string
	ServiceID         string
	WeightFrom        decimal.Decimal
	WeightTo          decimal.Decimal
	BaseRate          decimal.Decimal
	AdditionalCharges decimal.Decimal
	UpdatedAt         time.Time
}
