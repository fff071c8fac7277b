package http

import (
	"net/http"

	"hubops/internal/core/application/usecases/commands"
	"hubops/internal/core/application/usecases/queries"
	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/core/domain/model/pricing"
	"hubops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"
)

// UpsertPricingRule handles PUT /api/v1/pricing/rules. The mirror route is
// written with the same rates in the same transaction.
func (s *Server) UpsertPricingRule(ctx echo.Context) error {
	var req PricingRuleRequest
	if err := bindBody(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	key, err := pricingKey(req.OriginCityID, req.DestinationCityID, req.ServiceID, req.WeightFrom, req.WeightTo)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewUpsertPricingRuleCommand(key, pricing.Rates{
		BaseRate:          req.BaseRate,
		AdditionalCharges: req.AdditionalCharges,
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	rule, err := s.h.UpsertPricingRule.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, pricingRuleFromDomain(rule))
}

// GetPricingRule handles GET /api/v1/pricing/rules?origin=&destination=&service=&weightFrom=&weightTo=.
func (s *Server) GetPricingRule(ctx echo.Context) error {
	var origin, destination, service, from, to string
	params := ctx.QueryParams()
	for name, dest := range map[string]*string{
		"origin":      &origin,
		"destination": &destination,
		"service":     &service,
		"weightFrom":  &from,
		"weightTo":    &to,
	} {
		if err := runtime.BindQueryParameter("form", true, true, name, params, dest); err != nil {
			return badRequest(ctx, err.Error())
		}
	}

	weightFrom, err := decimal.NewFromString(from)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("weightFrom", err))
	}
	weightTo, err := decimal.NewFromString(to)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("weightTo", err))
	}
	key, err := pricingKey(origin, destination, service, weightFrom, weightTo)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetPricingRuleQuery(key)
	if err != nil {
		return s.fail(ctx, err)
	}
	rule, err := s.h.GetPricingRule.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, PricingRule{
		OriginCityID:      rule.OriginCityID,
		DestinationCityID: rule.DestinationCityID,
		ServiceID:         rule.ServiceID,
		WeightFrom:        rule.WeightFrom,
		WeightTo:          rule.WeightTo,
		BaseRate:          rule.BaseRate,
		AdditionalCharges: rule.AdditionalCharges,
	})
}

func pricingKey(origin, destination, service string, from, to decimal.Decimal) (pricing.Key, error) {
	band, err := kernel.NewWeightBand(from, to)
	if err != nil {
		return pricing.Key{}, err
	}
	return pricing.NewKey(origin, destination, service, band)
}

