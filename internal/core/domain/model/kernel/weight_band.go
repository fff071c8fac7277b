package kernel

import (
	"errors"
	"fmt"

	"hubops/internal/pkg/errs"
	"hubops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrWeightBandIsNotConstructed is returned when a zero-value WeightBand is used.
var ErrWeightBandIsNotConstructed = errs.NewValueIsRequiredError("weight band must be created via NewWeightBand")

// WeightScale is the number of decimal places a band bound may carry (grams).
const WeightScale = 3

// WeightBand is the closed weight interval [From, To] in kilograms that a
// pricing rule applies to. From is non-negative and To is strictly greater.
// Both bounds carry at most WeightScale decimal places.
type WeightBand struct {
	from  decimal.Decimal
	to    decimal.Decimal
	guard guard.ConstructorGuard
}

// NewWeightBand validates and builds a band.
//
//	band, err := kernel.NewWeightBand(decimal.Zero, decimal.RequireFromString("0.5"))
func NewWeightBand(from decimal.Decimal, to decimal.Decimal) (WeightBand, error) {
	var errList []error
	if from.IsNegative() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("weightFrom", from.String(), 0, "weightTo"))
	}
	if !from.Equal(from.Round(WeightScale)) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"weightFrom", fmt.Errorf("%s has more than %d decimal places", from, WeightScale)))
	}
	if !to.Equal(to.Round(WeightScale)) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"weightTo", fmt.Errorf("%s has more than %d decimal places", to, WeightScale)))
	}
	if !to.GreaterThan(from) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"weightTo", fmt.Errorf("%s is not greater than %s", to, from)))
	}
	if err := errors.Join(errList...); err != nil {
		return WeightBand{}, err
	}

	return WeightBand{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (w WeightBand) From() decimal.Decimal {
	return w.from
}

func (w WeightBand) To() decimal.Decimal {
	return w.to
}

// Contains reports whether weight falls inside the band, bounds included.
func (w WeightBand) Contains(weight decimal.Decimal) bool {
	return weight.GreaterThanOrEqual(w.from) && weight.LessThanOrEqual(w.to)
}

func (w WeightBand) IsEqual(other WeightBand) bool {
	return w.from.Equal(other.from) && w.to.Equal(other.to)
}

func (w WeightBand) Validate() error {
	return w.guard.Validate(ErrWeightBandIsNotConstructed)
}

// String renders the band as "[from,to]".
func (w WeightBand) String() string {
	return fmt.Sprintf("[%s,%s]", w.from.String(), w.to.String())
}
