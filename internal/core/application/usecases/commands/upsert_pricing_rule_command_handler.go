package commands

import (
	"context"
	"time"

	"hubops/internal/core/domain/model/pricing"
	"hubops/internal/pkg/errs"
)

// DefaultMirrorAttempts bounds mirror write retries inside one transaction.
const DefaultMirrorAttempts = 3

const mirrorSavePoint = "pricing_mirror"

type UpsertPricingRuleCommandHandler struct {
	uowFactory     PricingUoWFactory
	mirrorAttempts int
}

func NewUpsertPricingRuleCommandHandler(uowFactory PricingUoWFactory, mirrorAttempts int) UpsertPricingRuleCommandHandler {
	if mirrorAttempts <= 0 {
		mirrorAttempts = DefaultMirrorAttempts
	}
	return UpsertPricingRuleCommandHandler{
		uowFactory:     uowFactory,
		mirrorAttempts: mirrorAttempts,
	}
}

// Handle writes the rule and, for a non-self route, its mirror with the same
// rates in one transaction. Rows are written in canonical key order. A
// failed mirror write is retried from a savepoint; when every attempt fails
// the transaction is rolled back and a SymmetryConflictError is returned.
func (h UpsertPricingRuleCommandHandler) Handle(ctx context.Context, cmd UpsertPricingRuleCommand) (*pricing.Rule, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	rule, err := pricing.NewRule(cmd.Key(), cmd.Rates(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	for _, key := range rule.Key().Pair() {
		if key.IsEqual(rule.Key()) {
			if err = uow.PricingRuleRepository().Upsert(ctx, rule); err != nil {
				return nil, err
			}
			continue
		}

		mirror, _ := rule.Mirror()
		if err = h.writeMirror(ctx, uow, mirror); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return rule, nil
}

func (h UpsertPricingRuleCommandHandler) writeMirror(ctx context.Context, uow PricingUoW, mirror *pricing.Rule) error {
	var lastErr error
	for range h.mirrorAttempts {
		if err := uow.SavePoint(ctx, mirrorSavePoint); err != nil {
			return err
		}

		lastErr = uow.PricingRuleRepository().Upsert(ctx, mirror)
		if lastErr == nil {
			return nil
		}

		if err := uow.RollbackTo(ctx, mirrorSavePoint); err != nil {
			return err
		}
	}

	return errs.NewSymmetryConflictError(mirror.Key().Mirror().String(), h.mirrorAttempts, lastErr)
}
