package ports

import (
	"context"

	"hubops/internal/core/domain/model/pricing"
)

type PricingRuleRepository interface {
	// Upsert inserts the rule or overwrites the rates of the existing row
	// with the same key.
	Upsert(ctx context.Context, rule *pricing.Rule) error

	Get(ctx context.Context, key pricing.Key) (*pricing.Rule, error)
}
