package commands

import (
	"errors"

	"hubops/internal/core/domain/model/pricing"
	"hubops/internal/pkg/guard"
)

var ErrUpsertPricingRuleCommandIsNotConstructed = errors.New(
	"UpsertPricingRuleCommand must be created via NewUpsertPricingRuleCommand constructor",
)

type UpsertPricingRuleCommand struct {
	key   pricing.Key
	rates pricing.Rates

	guard guard.ConstructorGuard
}

func NewUpsertPricingRuleCommand(key pricing.Key, rates pricing.Rates) (UpsertPricingRuleCommand, error) {
	if err := errors.Join(key.Validate(), rates.Validate()); err != nil {
		return UpsertPricingRuleCommand{}, err
	}
	return UpsertPricingRuleCommand{
		key:   key,
		rates: rates,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c UpsertPricingRuleCommand) Validate() error {
	return c.guard.Validate(ErrUpsertPricingRuleCommandIsNotConstructed)
}

func (c UpsertPricingRuleCommand) Key() pricing.Key {
	return c.key
}

func (c UpsertPricingRuleCommand) Rates() pricing.Rates {
	return c.rates
}
