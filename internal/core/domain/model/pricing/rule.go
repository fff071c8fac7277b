package pricing

import (
	"errors"
	"fmt"
	"time"

	"hubops/internal/pkg/errs"
	"hubops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule or RestoreRule")

// RateScale is the number of decimal places a rate may carry.
const RateScale = 2

// Rates are the price fields shared by both directions of a pair.
type Rates struct {
	BaseRate          decimal.Decimal
	AdditionalCharges decimal.Decimal
}

func (r Rates) Validate() error {
	var errList []error
	if r.BaseRate.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"baseRate", fmt.Errorf("%s is negative", r.BaseRate)))
	}
	if r.AdditionalCharges.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"additionalCharges", fmt.Errorf("%s is negative", r.AdditionalCharges)))
	}
	if !r.BaseRate.Equal(r.BaseRate.Round(RateScale)) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"baseRate", fmt.Errorf("%s has more than %d decimal places", r.BaseRate, RateScale)))
	}
	if !r.AdditionalCharges.Equal(r.AdditionalCharges.Round(RateScale)) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"additionalCharges", fmt.Errorf("%s has more than %d decimal places", r.AdditionalCharges, RateScale)))
	}
	return errors.Join(errList...)
}

// IsEqual compares by value, so 200 and 200.00 are equal.
func (r Rates) IsEqual(other Rates) bool {
	return r.BaseRate.Equal(other.BaseRate) && r.AdditionalCharges.Equal(other.AdditionalCharges)
}

// Rule is one directed rate row.
type Rule struct {
	key       Key
	rates     Rates
	updatedAt time.Time

	guard guard.ConstructorGuard
}

func NewRule(key Key, rates Rates, updatedAt time.Time) (*Rule, error) {
	if err := errors.Join(key.Validate(), rates.Validate()); err != nil {
		return nil, err
	}
	return &Rule{
		key:       key,
		rates:     rates,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreRule rebuilds a rule loaded from storage.
func RestoreRule(key Key, rates Rates, updatedAt time.Time) (*Rule, error) {
	return NewRule(key, rates, updatedAt)
}

func (r *Rule) Validate() error {
	if r == nil {
		return ErrRuleIsNotConstructed
	}
	return r.guard.Validate(ErrRuleIsNotConstructed)
}

func (r *Rule) Key() Key {
	return r.key
}

func (r *Rule) Rates() Rates {
	return r.rates
}

func (r *Rule) UpdatedAt() time.Time {
	return r.updatedAt
}

// Mirror returns the rule for the swapped route with identical rates.
// A self-route rule has no mirror.
func (r *Rule) Mirror() (*Rule, bool) {
	if r.key.IsSelfRoute() {
		return nil, false
	}
	return &Rule{
		key:       r.key.Mirror(),
		rates:     r.rates,
		updatedAt: r.updatedAt,
		guard:     guard.NewConstructorGuard(),
	}, true
}

// IsSymmetricWith reports whether other is r's mirror carrying the same rates.
func (r *Rule) IsSymmetricWith(other *Rule) bool {
	return other != nil && r.key.Mirror().IsEqual(other.key) && r.rates.IsEqual(other.rates)
}
